// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// rawSchema mirrors the on-disk document: loosely typed and mostly
// optional. Nil slices and maps mean the key was absent, which several
// resolution rules treat differently from present-but-empty. Only
// document-level required fields are enforced at parse time; all
// cross-section validation happens during resolution.
type rawSchema struct {
	General              rawGeneral          `yaml:"general"`
	MatrixAuthentication rawMatrixAuth       `yaml:"matrix_authentication"`
	GithubAuthentication *rawGithubAuth      `yaml:"github_authentication"`
	SearchableRepos      map[string]string   `yaml:"searchable_repos"`
	LinkableURLs         map[string]string   `yaml:"linkable_urls"`
	TextExpansion        map[string]string   `yaml:"text_expansion"`
	GroupPings           map[string][]string `yaml:"group_pings"`
}

type rawGeneral struct {
	AuthorizedUsers         []string `yaml:"authorized_users"`
	HelpRooms               []string `yaml:"help_rooms"`
	BanRooms                []string `yaml:"ban_rooms"`
	EnableUnitConversions   *bool    `yaml:"enable_unit_conversions"`
	EnableCorrections       *bool    `yaml:"enable_corrections"`
	UnitConversionExclusion []string `yaml:"unit_conversion_exclusion"`
	InsensitiveCorrections  []string `yaml:"insensitive_corrections"`
	SensitiveCorrections    []string `yaml:"sensitive_corrections"`
	CorrectionText          *string  `yaml:"correction_text"`
	CorrectionExclusion     []string `yaml:"correction_exclusion"`
	LinkMatchers            []string `yaml:"link_matchers"`
	WebhookToken            string   `yaml:"webhook_token"`
}

type rawMatrixAuth struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type rawGithubAuth struct {
	AccessToken string `yaml:"access_token"`
}

// parseRaw deserializes the document and enforces the fields every
// deployment must carry. Missing required fields are aggregated so one
// load reports all of them.
func parseRaw(data []byte) (*rawSchema, error) {
	var raw rawSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &SyntaxError{Err: err}
	}

	var missing []error
	if raw.General.WebhookToken == "" {
		missing = append(missing, &MissingFieldError{Section: "general", Field: "webhook_token"})
	}
	if raw.General.EnableUnitConversions == nil {
		missing = append(missing, &MissingFieldError{Section: "general", Field: "enable_unit_conversions"})
	}
	if raw.General.EnableCorrections == nil {
		missing = append(missing, &MissingFieldError{Section: "general", Field: "enable_corrections"})
	}
	if raw.MatrixAuthentication.URL == "" {
		missing = append(missing, &MissingFieldError{Section: "matrix_authentication", Field: "url"})
	}
	if raw.MatrixAuthentication.Username == "" {
		missing = append(missing, &MissingFieldError{Section: "matrix_authentication", Field: "username"})
	}
	if raw.MatrixAuthentication.Password == "" {
		missing = append(missing, &MissingFieldError{Section: "matrix_authentication", Field: "password"})
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	return &raw, nil
}
