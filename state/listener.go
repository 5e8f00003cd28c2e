// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"time"

	"github.com/helpbot-matrix/helpbot/lib/clock"
	"github.com/helpbot-matrix/helpbot/lib/ref"
)

// CorrectionCooldown is the minimum time between spellcheck corrections
// in any one room.
const CorrectionCooldown = 300 * time.Second

// Listener holds the durable state the sync listener mutates at
// runtime.
type Listener struct {
	// LastSync is the token of the last processed sync batch. Nil
	// before the first sync completes.
	LastSync *string `cbor:"last_sync"`

	// LastCorrection maps each room to the time the last spellcheck
	// correction was sent there.
	LastCorrection map[ref.RoomID]time.Time `cbor:"last_correction_time"`
}

const listenerFileName = "listener.cbor"

// ListenerStore returns the durable store for the listener record under
// directory.
func ListenerStore(directory string) *Store[Listener] {
	return NewStore(directory, listenerFileName, func() Listener {
		return Listener{LastCorrection: make(map[ref.RoomID]time.Time)}
	})
}

// CooldownElapsed reports whether the correction cooldown has passed
// for room. A room with no recorded correction is always eligible. A
// recorded time in the future (a clock anomaly) reports false rather
// than erroring.
func (l *Listener) CooldownElapsed(clk clock.Clock, room ref.RoomID) bool {
	recorded, ok := l.LastCorrection[room]
	if !ok {
		return true
	}
	return clk.Since(recorded) >= CorrectionCooldown
}

// RecordCorrection notes that a correction was just sent to room. The
// change is in memory only until the caller saves the record.
func (l *Listener) RecordCorrection(clk clock.Clock, room ref.RoomID) {
	if l.LastCorrection == nil {
		l.LastCorrection = make(map[ref.RoomID]time.Time)
	}
	l.LastCorrection[room] = clk.Now()
}
