// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts wall-clock reads for testability. Production
// code injects Real(); tests inject Fake() with deterministic control.
package clock

import "time"

// Clock abstracts time reads. Every function that compares against the
// current time (the correction cooldown check, timestamp recording)
// accepts a Clock instead of calling the time package directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Since returns the time elapsed since t. Negative when t lies in
	// the future.
	Since(t time.Time) time.Duration
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time                  { return time.Now() }
func (realClock) Since(t time.Time) time.Duration { return time.Since(t) }
