// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package ref

// RoomID is a validated Matrix room ID (e.g., "!abc123:example.com").
//
// Room IDs are server-assigned opaque identifiers. They always start
// with '!' and contain a ':' separating the opaque local part from the
// server name. Helpbot never invents room IDs: they arrive in the
// configuration document or in persisted state, and are parsed into
// this type at that boundary.
//
// RoomID is an immutable value type and is usable as a map key.
type RoomID struct {
	id string
}

// ParseRoomID validates and wraps a raw Matrix room ID string.
// Returns an error if the string is empty, doesn't start with '!',
// has an empty local part, or is missing the ':server' suffix.
func ParseRoomID(raw string) (RoomID, error) {
	_, _, err := parseSigilID(raw, '!', "Matrix room ID")
	if err != nil {
		return RoomID{}, err
	}
	return RoomID{id: raw}, nil
}

// String returns the full room ID string (e.g., "!abc123:example.com").
func (r RoomID) String() string { return r.id }

// IsZero reports whether the RoomID is the zero value (uninitialized).
func (r RoomID) IsZero() bool { return r.id == "" }

// MarshalText implements encoding.TextMarshaler.
func (r RoomID) MarshalText() ([]byte, error) {
	if r.id == "" {
		return []byte{}, nil
	}
	return []byte(r.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Validates the room
// ID format. An empty input produces the zero value (unset room ID).
func (r *RoomID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*r = RoomID{}
		return nil
	}
	parsed, err := ParseRoomID(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
