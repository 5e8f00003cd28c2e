// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"net/url"

	"github.com/helpbot-matrix/helpbot/lib/ref"
)

// ListenerConfig is the projection handed to the message dispatch
// layer: everything it needs and nothing more, notably not the
// webhook shared secret. It shares the Config's underlying maps; both
// are read-only by contract.
type ListenerConfig struct {
	HomeserverURL *url.URL
	Username      ref.UserID
	Password      string

	UnitConversionsEnabled bool

	GithubSearch             Feature[GithubSearch]
	LinkKeywords             Feature[LinkKeywords]
	TextExpansions           Feature[map[string]string]
	UnitConversionExclusions Feature[map[string]struct{}]
	Corrections              Feature[Corrections]
	GroupPings               Feature[GroupPings]
	HelpRooms                Feature[map[ref.RoomID]struct{}]
	BanRooms                 Feature[map[ref.RoomID]struct{}]

	Admins    map[ref.UserID]struct{}
	UserAgent string
}

// ListenerConfig builds the dispatch-layer projection.
func (c *Config) ListenerConfig() ListenerConfig {
	return ListenerConfig{
		HomeserverURL:            c.homeserverURL,
		Username:                 c.username,
		Password:                 c.password,
		UnitConversionsEnabled:   c.enableUnitConversions,
		GithubSearch:             c.githubSearch,
		LinkKeywords:             c.linkKeywords,
		TextExpansions:           c.textExpansions,
		UnitConversionExclusions: c.unitExclusions,
		Corrections:              c.corrections,
		GroupPings:               c.groupPings,
		HelpRooms:                c.helpRooms,
		BanRooms:                 c.banRooms,
		Admins:                   c.admins,
		UserAgent:                c.userAgent,
	}
}

// WebhookConfig is the projection handed to the webhook listener: only
// the shared secret it authenticates requests with.
type WebhookConfig struct {
	Token string
}

// WebhookConfig builds the webhook-listener projection.
func (c *Config) WebhookConfig() WebhookConfig {
	return WebhookConfig{Token: c.webhookToken}
}
