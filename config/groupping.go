// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/helpbot-matrix/helpbot/lib/ref"
)

// Group-ping member tokens come in two shapes: "@user:server" names a
// literal user, "%group" references another group. The name "all" is
// reserved for the implicit everyone ping and must never be configured
// as a member token in either shape.
const (
	userSentinel  = "@"
	aliasSentinel = "%"
	reservedAll   = "all"
)

// GroupPings is the payload of the group ping feature.
type GroupPings struct {
	// Groups maps a group name to its fully resolved member set.
	Groups map[string]map[ref.UserID]struct{}
	// EligibleUsers is the flat set of every user appearing as a
	// literal member of any group; only they may trigger group pings.
	EligibleUsers map[ref.UserID]struct{}
}

// resolveGroupPings expands the raw group→members mapping into flat
// member sets. Alias references expand one hop against the original raw
// mapping: only the referenced group's literal users are pulled in, not
// its own aliases. Tokens matching neither shape are ignored.
func resolveGroupPings(raw map[string][]string) (Feature[GroupPings], error) {
	if raw == nil {
		slog.Info("no group pings configured, disabling feature")
		return FeatureDisabled[GroupPings](), nil
	}

	// First pass: collect every literal user into the eligible set and
	// reject the reserved name wherever it appears.
	eligible := make(map[ref.UserID]struct{})
	for group, members := range raw {
		for _, token := range members {
			if token == reservedAll || token == aliasSentinel+reservedAll {
				return FeatureDisabled[GroupPings](), &ReservedNameError{Group: group}
			}
			if strings.HasPrefix(token, userSentinel) {
				userID, err := ref.ParseUserID(token)
				if err != nil {
					return FeatureDisabled[GroupPings](), fmt.Errorf("config: group ping %q: %w", group, err)
				}
				eligible[userID] = struct{}{}
			}
		}
	}

	// Second pass: build each group's resolved member set.
	groups := make(map[string]map[ref.UserID]struct{}, len(raw))
	for group, members := range raw {
		resolved := make(map[ref.UserID]struct{})
		for _, token := range members {
			switch {
			case strings.HasPrefix(token, aliasSentinel):
				alias := strings.TrimPrefix(token, aliasSentinel)
				referenced, ok := raw[alias]
				if !ok {
					return FeatureDisabled[GroupPings](), &UnresolvedAliasError{Group: group, Alias: alias}
				}
				// One hop only: pull the referenced group's literal
				// users; its own alias members are not followed.
				for _, member := range referenced {
					if !strings.HasPrefix(member, userSentinel) {
						continue
					}
					userID, err := ref.ParseUserID(member)
					if err != nil {
						return FeatureDisabled[GroupPings](), fmt.Errorf("config: group ping %q (via %q): %w", group, alias, err)
					}
					resolved[userID] = struct{}{}
				}
			case strings.HasPrefix(token, userSentinel):
				userID, err := ref.ParseUserID(token)
				if err != nil {
					return FeatureDisabled[GroupPings](), fmt.Errorf("config: group ping %q: %w", group, err)
				}
				resolved[userID] = struct{}{}
			default:
				// Neither a user nor an alias; ignore.
			}
		}
		groups[group] = resolved
	}

	return FeatureEnabled(GroupPings{Groups: groups, EligibleUsers: eligible}), nil
}
