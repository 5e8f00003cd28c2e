// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

// Package state persists the small durable records helpbot mutates at
// runtime: the Matrix session credentials, the listener's sync position
// and per-room correction timestamps, and the responder's outgoing
// transaction counter.
//
// All three kinds share one generic Store. Loading a record that does
// not exist yet synthesizes its default value and writes it out
// immediately, so the first load has a durable side effect; a record
// that exists but cannot be read or decoded is fatal. Nothing is saved
// automatically: persistence is always an explicit caller action, and
// a failed save is returned for the caller to retry or skip.
//
// The store performs no locking. Each record kind has a single logical
// owner that serializes its mutations; concurrent writer processes
// race last-writer-wins.
package state
