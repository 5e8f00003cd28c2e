// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package state

import "fmt"

// AccessDeniedError reports a state record that exists but cannot be
// opened due to filesystem permissions. Deliberately distinct from
// not-found, which creates a default record instead of failing.
type AccessDeniedError struct {
	Path string
	Err  error
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("state: permission denied opening %s: %v", e.Path, e.Err)
}

func (e *AccessDeniedError) Unwrap() error { return e.Err }

// CorruptRecordError reports a state record that exists but cannot be
// decoded. Corrupt state is never silently discarded or replaced with
// a default — the operator has to look at it.
type CorruptRecordError struct {
	Path string
	Err  error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("state: corrupt record %s: %v", e.Path, e.Err)
}

func (e *CorruptRecordError) Unwrap() error { return e.Err }

// EncodeError reports a failure to serialize a state value. This
// cannot happen for well-formed record types; it surfaces the
// invariant violation as a typed error rather than aborting the
// process.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("state: cannot encode record %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
