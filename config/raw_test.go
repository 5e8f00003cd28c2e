// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"strings"
	"testing"
)

// minimalDocument carries exactly the fields every deployment must
// have, with every optional feature left out.
const minimalDocument = `
general:
  webhook_token: "hook-secret"
  enable_unit_conversions: true
  enable_corrections: false
  authorized_users: ["@admin:example.com"]
matrix_authentication:
  url: "https://matrix.example.com"
  username: "@helpbot:example.com"
  password: "hunter2"
`

func TestParseRejectsBadSyntax(t *testing.T) {
	_, err := Resolve([]byte("general: [unterminated"))
	var syntaxError *SyntaxError
	if !errors.As(err, &syntaxError) {
		t.Fatalf("Resolve() error = %v, want *SyntaxError", err)
	}
}

func TestParseRejectsMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		document string
		section  string
		field    string
	}{
		{
			name: "webhook token",
			document: `
general:
  enable_unit_conversions: true
  enable_corrections: false
matrix_authentication:
  url: "https://matrix.example.com"
  username: "@helpbot:example.com"
  password: "hunter2"
`,
			section: "general",
			field:   "webhook_token",
		},
		{
			name: "unit conversion toggle",
			document: `
general:
  webhook_token: "hook-secret"
  enable_corrections: false
matrix_authentication:
  url: "https://matrix.example.com"
  username: "@helpbot:example.com"
  password: "hunter2"
`,
			section: "general",
			field:   "enable_unit_conversions",
		},
		{
			name: "correction toggle",
			document: `
general:
  webhook_token: "hook-secret"
  enable_unit_conversions: true
matrix_authentication:
  url: "https://matrix.example.com"
  username: "@helpbot:example.com"
  password: "hunter2"
`,
			section: "general",
			field:   "enable_corrections",
		},
		{
			name: "homeserver url",
			document: `
general:
  webhook_token: "hook-secret"
  enable_unit_conversions: true
  enable_corrections: false
matrix_authentication:
  username: "@helpbot:example.com"
  password: "hunter2"
`,
			section: "matrix_authentication",
			field:   "url",
		},
		{
			name: "bot username",
			document: `
general:
  webhook_token: "hook-secret"
  enable_unit_conversions: true
  enable_corrections: false
matrix_authentication:
  url: "https://matrix.example.com"
  password: "hunter2"
`,
			section: "matrix_authentication",
			field:   "username",
		},
		{
			name: "bot password",
			document: `
general:
  webhook_token: "hook-secret"
  enable_unit_conversions: true
  enable_corrections: false
matrix_authentication:
  url: "https://matrix.example.com"
  username: "@helpbot:example.com"
`,
			section: "matrix_authentication",
			field:   "password",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Resolve([]byte(test.document))
			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("Resolve() error = %v, want *MissingFieldError", err)
			}
			if missing.Section != test.section || missing.Field != test.field {
				t.Errorf("missing field = %s.%s, want %s.%s",
					missing.Section, missing.Field, test.section, test.field)
			}
		})
	}
}

func TestParseReportsAllMissingFieldsAtOnce(t *testing.T) {
	_, err := Resolve([]byte("general: {}\n"))
	if err == nil {
		t.Fatal("Resolve() succeeded on an empty document")
	}
	for _, field := range []string{
		"webhook_token",
		"enable_unit_conversions",
		"enable_corrections",
		"url",
		"username",
		"password",
	} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %q: %v", field, err)
		}
	}
}

func TestAbsentOptionalSectionsStayNil(t *testing.T) {
	raw, err := parseRaw([]byte(minimalDocument))
	if err != nil {
		t.Fatalf("parseRaw() error = %v", err)
	}
	if raw.SearchableRepos != nil {
		t.Errorf("SearchableRepos = %v, want nil", raw.SearchableRepos)
	}
	if raw.LinkableURLs != nil {
		t.Errorf("LinkableURLs = %v, want nil", raw.LinkableURLs)
	}
	if raw.GroupPings != nil {
		t.Errorf("GroupPings = %v, want nil", raw.GroupPings)
	}
	if raw.General.HelpRooms != nil {
		t.Errorf("HelpRooms = %v, want nil", raw.General.HelpRooms)
	}
	if raw.GithubAuthentication != nil {
		t.Errorf("GithubAuthentication = %v, want nil", raw.GithubAuthentication)
	}
}

func TestPresentButEmptyIsNotAbsent(t *testing.T) {
	document := minimalDocument + `
linkable_urls: {}
`
	raw, err := parseRaw([]byte(document))
	if err != nil {
		t.Fatalf("parseRaw() error = %v", err)
	}
	if raw.LinkableURLs == nil {
		t.Fatal("LinkableURLs = nil, want non-nil empty map")
	}
	if len(raw.LinkableURLs) != 0 {
		t.Errorf("LinkableURLs = %v, want empty", raw.LinkableURLs)
	}
}
