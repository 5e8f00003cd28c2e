// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "fmt"

// UserID is a validated Matrix user ID (e.g., "@alice:example.com").
//
// A Matrix user ID always starts with '@' and contains a ':' separating
// the localpart from the server name. This type validates the
// structural format only; it accepts any well-formed Matrix user ID
// regardless of homeserver.
//
// UserID is an immutable value type and is usable as a map key.
type UserID struct {
	id string
}

// ParseUserID validates and wraps a raw Matrix user ID string.
// Returns an error if the string is empty, doesn't start with '@',
// has an empty localpart, or is missing the ':server' suffix.
func ParseUserID(raw string) (UserID, error) {
	_, _, err := parseSigilID(raw, '@', "Matrix user ID")
	if err != nil {
		return UserID{}, err
	}
	return UserID{id: raw}, nil
}

// String returns the full user ID string (e.g., "@alice:example.com").
func (u UserID) String() string { return u.id }

// IsZero reports whether the UserID is the zero value (uninitialized).
func (u UserID) IsZero() bool { return u.id == "" }

// Localpart returns the localpart portion of the user ID (without the
// '@' prefix or ':server' suffix). Panics on a zero-value UserID.
func (u UserID) Localpart() string {
	if u.id == "" {
		panic("UserID.Localpart called on zero value")
	}
	localpart, _, err := parseSigilID(u.id, '@', "Matrix user ID")
	if err != nil {
		// UserID was validated at construction; this is unreachable.
		panic(fmt.Sprintf("UserID.Localpart: internal error parsing %q: %v", u.id, err))
	}
	return localpart
}

// MarshalText implements encoding.TextMarshaler.
func (u UserID) MarshalText() ([]byte, error) {
	if u.id == "" {
		return []byte{}, nil
	}
	return []byte(u.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Validates the user
// ID format. An empty input produces the zero value (unset user ID).
func (u *UserID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*u = UserID{}
		return nil
	}
	parsed, err := ParseUserID(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
