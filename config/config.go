// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/helpbot-matrix/helpbot/lib/ref"
)

// Program identity constants; the HTTP user agent is derived from them.
const (
	Name    = "helpbot"
	Version = "0.4.0"
)

const (
	// ConfigDirEnv names the environment variable that overrides the
	// directory the configuration document is loaded from. Unset means
	// the process working directory.
	ConfigDirEnv = "HELPBOT_CONFIG_DIR"

	// ConfigFileName is the fixed name of the configuration document.
	ConfigFileName = "config.yaml"
)

// Config is the fully resolved runtime configuration. A Config only
// exists in valid form: Load either returns a complete one or fails.
// All fields are set at construction and never mutated; accessor
// results (including map payloads) are shared and must be treated as
// read-only.
type Config struct {
	homeserverURL *url.URL
	username      ref.UserID
	password      string

	enableUnitConversions bool

	githubSearch   Feature[GithubSearch]
	linkKeywords   Feature[LinkKeywords]
	textExpansions Feature[map[string]string]
	unitExclusions Feature[map[string]struct{}]
	corrections    Feature[Corrections]
	groupPings     Feature[GroupPings]
	helpRooms      Feature[map[ref.RoomID]struct{}]
	banRooms       Feature[map[ref.RoomID]struct{}]

	admins       map[ref.UserID]struct{}
	userAgent    string
	webhookToken string
}

// Load reads and resolves the configuration document from
// $HELPBOT_CONFIG_DIR/config.yaml (working directory when the variable
// is unset). Any failure is unrecoverable for the process: the caller
// must not continue without a Config.
func Load() (*Config, error) {
	directory := os.Getenv(ConfigDirEnv)
	if directory == "" {
		directory = "."
	}
	return LoadFile(filepath.Join(directory, ConfigFileName))
}

// LoadFile reads and resolves the configuration document at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration document %s: %w", path, err)
	}
	config, err := Resolve(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return config, nil
}

// Resolve parses the document bytes and applies every feature
// resolution rule. The first hard failure aborts the whole resolution;
// no partial Config is ever returned.
func Resolve(data []byte) (*Config, error) {
	raw, err := parseRaw(data)
	if err != nil {
		return nil, err
	}

	homeserverURL, err := url.Parse(raw.MatrixAuthentication.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid homeserver URL %q: %w", raw.MatrixAuthentication.URL, err)
	}
	username, err := ref.ParseUserID(raw.MatrixAuthentication.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid bot username: %w", err)
	}

	githubSearch, err := resolveGithubSearch(raw)
	if err != nil {
		return nil, err
	}
	linkKeywords, err := resolveLinkKeywords(raw)
	if err != nil {
		return nil, err
	}
	corrections, err := resolveCorrections(raw)
	if err != nil {
		return nil, err
	}
	admins, err := resolveAdmins(raw)
	if err != nil {
		return nil, err
	}
	helpRooms, err := resolveHelpRooms(raw)
	if err != nil {
		return nil, err
	}
	banRooms, err := resolveBanRooms(raw)
	if err != nil {
		return nil, err
	}
	groupPings, err := resolveGroupPings(raw.GroupPings)
	if err != nil {
		return nil, err
	}
	userAgent, err := resolveUserAgent()
	if err != nil {
		return nil, err
	}

	return &Config{
		homeserverURL:         homeserverURL,
		username:              username,
		password:              raw.MatrixAuthentication.Password,
		enableUnitConversions: *raw.General.EnableUnitConversions,
		githubSearch:          githubSearch,
		linkKeywords:          linkKeywords,
		textExpansions:        resolveTextExpansions(raw),
		unitExclusions:        resolveUnitExclusions(raw),
		corrections:           corrections,
		groupPings:            groupPings,
		helpRooms:             helpRooms,
		banRooms:              banRooms,
		admins:                admins,
		userAgent:             userAgent,
		webhookToken:          raw.General.WebhookToken,
	}, nil
}

// HomeserverURL returns the Matrix homeserver the bot connects to.
func (c *Config) HomeserverURL() *url.URL { return c.homeserverURL }

// Username returns the bot's Matrix user ID.
func (c *Config) Username() ref.UserID { return c.username }

// Password returns the bot account password.
func (c *Config) Password() string { return c.password }

// UnitConversionsEnabled reports whether plain-text unit conversion is
// on.
func (c *Config) UnitConversionsEnabled() bool { return c.enableUnitConversions }

// GithubSearch returns the repository search feature outcome.
func (c *Config) GithubSearch() Feature[GithubSearch] { return c.githubSearch }

// LinkKeywords returns the URL linking feature outcome.
func (c *Config) LinkKeywords() Feature[LinkKeywords] { return c.linkKeywords }

// TextExpansions returns the text expansion feature outcome.
func (c *Config) TextExpansions() Feature[map[string]string] { return c.textExpansions }

// UnitConversionExclusions returns the excluded-unit feature outcome.
// Each entry carries a leading space to match the
// "<quantity> <unit>" form seen by the conversion matcher.
func (c *Config) UnitConversionExclusions() Feature[map[string]struct{}] { return c.unitExclusions }

// Corrections returns the spellcheck correction feature outcome.
func (c *Config) Corrections() Feature[Corrections] { return c.corrections }

// GroupPings returns the group ping feature outcome.
func (c *Config) GroupPings() Feature[GroupPings] { return c.groupPings }

// HelpRooms returns the rooms the help command is limited to. Disabled
// means no limit: help is allowed everywhere.
func (c *Config) HelpRooms() Feature[map[ref.RoomID]struct{}] { return c.helpRooms }

// BanRooms returns the rooms the ban command applies to. Disabled means
// the ban feature is off.
func (c *Config) BanRooms() Feature[map[ref.RoomID]struct{}] { return c.banRooms }

// Admins returns the users allowed to invite the bot and run
// administrative commands.
func (c *Config) Admins() map[ref.UserID]struct{} { return c.admins }

// UserAgent returns the HTTP user agent derived from the program
// identity.
func (c *Config) UserAgent() string { return c.userAgent }
