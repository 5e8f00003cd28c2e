// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides strongly typed, immutable Matrix identifier
// values for helpbot: user IDs and room IDs.
//
// Both types validate the structural Matrix format at construction and
// are immutable afterwards. They implement encoding.TextMarshaler and
// encoding.TextUnmarshaler, so identifiers embedded in serialized data
// (persisted state records, resolved configuration) are validated at
// every deserialization boundary rather than deep inside consumers.
//
// The zero value of each type is not a valid identifier; use IsZero to
// check.
package ref
