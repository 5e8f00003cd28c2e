// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package state

import "strconv"

// Responder holds the durable state of the message responder: the
// counter outgoing transaction IDs are allocated from.
type Responder struct {
	// LastTransactionID is the most recently allocated counter value.
	LastTransactionID uint64 `cbor:"last_txn_id"`
}

const responderFileName = "responder.cbor"

// ResponderStore returns the durable store for the responder record
// under directory.
func ResponderStore(directory string) *Store[Responder] {
	return NewStore(directory, responderFileName, func() Responder {
		return Responder{}
	})
}

// NextTransactionID increments the counter and returns its decimal
// string form. Callers must save the record after successfully using
// the ID; otherwise the same IDs come back after a restart.
func (r *Responder) NextTransactionID() string {
	r.LastTransactionID++
	return strconv.FormatUint(r.LastTransactionID, 10)
}
