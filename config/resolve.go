// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"log/slog"
	"maps"
	"net/url"

	"github.com/helpbot-matrix/helpbot/lib/ref"
)

// GithubSearch is the payload of the repository search feature.
type GithubSearch struct {
	// Repos maps a short repo name to its "org/repo" form.
	Repos map[string]string
	// AccessToken authenticates search requests against the GitHub API.
	AccessToken string
}

// LinkKeywords is the payload of the URL linking feature.
type LinkKeywords struct {
	// Matchers are the words that trigger link expansion.
	Matchers map[string]struct{}
	// Links maps a keyword to its expanded URL.
	Links map[string]*url.URL
}

// Corrections is the payload of the spellcheck correction feature.
type Corrections struct {
	// Spellings is the ordered match sequence: all case-insensitive
	// entries first, then all case-sensitive entries.
	Spellings []SpellCheckKind
	// Text is the correction message template.
	Text string
	// Exclusions are rooms the feature never fires in.
	Exclusions map[ref.RoomID]struct{}
}

// resolveGithubSearch enables repository search only when both the repo
// map and an access token are configured. Repos without a token is a
// misconfiguration; no repos disables the feature regardless of token.
func resolveGithubSearch(raw *rawSchema) (Feature[GithubSearch], error) {
	if raw.SearchableRepos == nil {
		slog.Info("no searchable repos configured, disabling github search")
		return FeatureDisabled[GithubSearch](), nil
	}
	if raw.GithubAuthentication == nil || raw.GithubAuthentication.AccessToken == "" {
		return FeatureDisabled[GithubSearch](), &InconsistentError{
			Feature: "github search",
			Detail:  "searchable_repos is configured but github_authentication.access_token is missing",
		}
	}
	return FeatureEnabled(GithubSearch{
		Repos:       maps.Clone(raw.SearchableRepos),
		AccessToken: raw.GithubAuthentication.AccessToken,
	}), nil
}

// resolveLinkKeywords enables link expansion only when both the URL map
// and the matcher word set are configured. A matcher set pointing at an
// empty URL map is a misconfiguration. Every URL value must parse as an
// absolute URL; a bad value is a validation error, not a program fault.
func resolveLinkKeywords(raw *rawSchema) (Feature[LinkKeywords], error) {
	if raw.LinkableURLs == nil {
		slog.Info("no linkable urls configured, disabling link keywords")
		return FeatureDisabled[LinkKeywords](), nil
	}
	if raw.General.LinkMatchers == nil {
		slog.Info("no link matchers configured, disabling link keywords")
		return FeatureDisabled[LinkKeywords](), nil
	}
	if len(raw.LinkableURLs) == 0 {
		return FeatureDisabled[LinkKeywords](), &InconsistentError{
			Feature: "link keywords",
			Detail:  "link_matchers is configured but linkable_urls is empty",
		}
	}

	links := make(map[string]*url.URL, len(raw.LinkableURLs))
	for keyword, value := range raw.LinkableURLs {
		parsed, err := url.Parse(value)
		if err != nil {
			return FeatureDisabled[LinkKeywords](), &InvalidURLError{Keyword: keyword, Value: value, Err: err}
		}
		if !parsed.IsAbs() {
			return FeatureDisabled[LinkKeywords](), &InvalidURLError{
				Keyword: keyword,
				Value:   value,
				Err:     fmt.Errorf("URL is not absolute"),
			}
		}
		links[keyword] = parsed
	}

	matchers := make(map[string]struct{}, len(raw.General.LinkMatchers))
	for _, matcher := range raw.General.LinkMatchers {
		matchers[matcher] = struct{}{}
	}

	return FeatureEnabled(LinkKeywords{Matchers: matchers, Links: links}), nil
}

// resolveTextExpansions has no cross-validation: the map is used as-is.
func resolveTextExpansions(raw *rawSchema) Feature[map[string]string] {
	if raw.TextExpansion == nil {
		slog.Info("no text expansions configured, disabling feature")
		return FeatureDisabled[map[string]string]()
	}
	return FeatureEnabled(maps.Clone(raw.TextExpansion))
}

// resolveUnitExclusions prefixes each excluded unit with a space so it
// matches the "<quantity> <unit>" form the conversion matcher sees.
func resolveUnitExclusions(raw *rawSchema) Feature[map[string]struct{}] {
	if raw.General.UnitConversionExclusion == nil {
		slog.Info("no unit conversion exclusions configured, disabling feature")
		return FeatureDisabled[map[string]struct{}]()
	}
	exclusions := make(map[string]struct{}, len(raw.General.UnitConversionExclusion))
	for _, unit := range raw.General.UnitConversionExclusion {
		exclusions[" "+unit] = struct{}{}
	}
	return FeatureEnabled(exclusions)
}

// resolveCorrections resolves the spellcheck correction feature. When
// the toggle is off, every other correction field is ignored. When on,
// the insensitive list, sensitive list, and correction text are each
// independently required; the room exclusion set is optional.
func resolveCorrections(raw *rawSchema) (Feature[Corrections], error) {
	if !*raw.General.EnableCorrections {
		slog.Info("corrections disabled by configuration")
		return FeatureDisabled[Corrections](), nil
	}

	if raw.General.InsensitiveCorrections == nil {
		return FeatureDisabled[Corrections](), &InconsistentError{
			Feature: "corrections",
			Detail:  "enable_corrections is true but insensitive_corrections is missing",
		}
	}
	if raw.General.SensitiveCorrections == nil {
		return FeatureDisabled[Corrections](), &InconsistentError{
			Feature: "corrections",
			Detail:  "enable_corrections is true but sensitive_corrections is missing",
		}
	}
	if raw.General.CorrectionText == nil {
		return FeatureDisabled[Corrections](), &InconsistentError{
			Feature: "corrections",
			Detail:  "enable_corrections is true but correction_text is missing",
		}
	}

	spellings := make([]SpellCheckKind, 0, len(raw.General.InsensitiveCorrections)+len(raw.General.SensitiveCorrections))
	for _, spelling := range raw.General.InsensitiveCorrections {
		spellings = append(spellings, InsensitiveSpelling(spelling))
	}
	for _, spelling := range raw.General.SensitiveCorrections {
		spellings = append(spellings, SensitiveSpelling(spelling))
	}

	exclusions, err := parseRoomSet(raw.General.CorrectionExclusion, "general.correction_exclusion")
	if err != nil {
		return FeatureDisabled[Corrections](), err
	}
	if len(exclusions) == 0 {
		slog.Info("no correction exclusions configured, corrections apply to every room")
	}

	return FeatureEnabled(Corrections{
		Spellings:  spellings,
		Text:       *raw.General.CorrectionText,
		Exclusions: exclusions,
	}), nil
}

// resolveAdmins requires the authorized-user set to be present. Beyond
// presence there is no minimum size.
func resolveAdmins(raw *rawSchema) (map[ref.UserID]struct{}, error) {
	if raw.General.AuthorizedUsers == nil {
		return nil, &MissingFieldError{Section: "general", Field: "authorized_users"}
	}
	return parseUserSet(raw.General.AuthorizedUsers, "general.authorized_users")
}

// resolveHelpRooms: an absent set means help is allowed everywhere; the
// consumer assigns that meaning to the disabled outcome.
func resolveHelpRooms(raw *rawSchema) (Feature[map[ref.RoomID]struct{}], error) {
	if raw.General.HelpRooms == nil {
		slog.Info("no help rooms configured, allowing help in every room")
		return FeatureDisabled[map[ref.RoomID]struct{}](), nil
	}
	rooms, err := parseRoomSet(raw.General.HelpRooms, "general.help_rooms")
	if err != nil {
		return FeatureDisabled[map[ref.RoomID]struct{}](), err
	}
	return FeatureEnabled(rooms), nil
}

// resolveBanRooms: an absent set disables the ban feature.
func resolveBanRooms(raw *rawSchema) (Feature[map[ref.RoomID]struct{}], error) {
	if raw.General.BanRooms == nil {
		slog.Info("no ban rooms configured, disabling feature")
		return FeatureDisabled[map[ref.RoomID]struct{}](), nil
	}
	rooms, err := parseRoomSet(raw.General.BanRooms, "general.ban_rooms")
	if err != nil {
		return FeatureDisabled[map[ref.RoomID]struct{}](), err
	}
	return FeatureEnabled(rooms), nil
}

// resolveUserAgent derives the HTTP user agent from the program
// identity constants. The constants are fixed at build time, so a
// failure here means the build itself is wrong.
func resolveUserAgent() (string, error) {
	userAgent := Name + "/" + Version
	if !validHeaderValue(userAgent) {
		return "", fmt.Errorf("cannot form a valid user agent from %q and %q", Name, Version)
	}
	return userAgent, nil
}

// validHeaderValue reports whether s is usable as an HTTP header value:
// visible ASCII plus space and horizontal tab.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < ' ' && b != '\t') || b == 0x7f {
			return false
		}
	}
	return true
}

func parseUserSet(values []string, label string) (map[ref.UserID]struct{}, error) {
	users := make(map[ref.UserID]struct{}, len(values))
	for _, value := range values {
		userID, err := ref.ParseUserID(value)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", label, err)
		}
		users[userID] = struct{}{}
	}
	return users, nil
}

func parseRoomSet(values []string, label string) (map[ref.RoomID]struct{}, error) {
	rooms := make(map[ref.RoomID]struct{}, len(values))
	for _, value := range values {
		roomID, err := ref.ParseRoomID(value)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", label, err)
		}
		rooms[roomID] = struct{}{}
	}
	return rooms, nil
}
