// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package config

// Feature is the resolved outcome of one optional configuration area:
// either disabled, or enabled with a payload. An enabled feature with
// an empty payload (say, a group-ping section declaring zero groups) is
// a different state from a disabled one, and consumers check Enabled()
// rather than sniffing payload emptiness.
type Feature[T any] struct {
	enabled bool
	value   T
}

// FeatureEnabled returns an enabled Feature carrying value.
func FeatureEnabled[T any](value T) Feature[T] {
	return Feature[T]{enabled: true, value: value}
}

// FeatureDisabled returns a disabled Feature. Its payload is the zero
// value of T.
func FeatureDisabled[T any]() Feature[T] {
	return Feature[T]{}
}

// Enabled reports whether the feature resolved to enabled.
func (f Feature[T]) Enabled() bool { return f.enabled }

// Value returns the payload. For a disabled feature it is the zero
// value of T; callers gate on Enabled first.
func (f Feature[T]) Value() T { return f.value }
