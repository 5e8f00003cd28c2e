// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package config

// SpellCheckKind is one entry in the resolved correction sequence: a
// misspelling matched either case-insensitively or case-sensitively.
// The resolved sequence places every insensitive entry before every
// sensitive entry, and downstream matching checks entries in sequence
// order.
type SpellCheckKind struct {
	spelling  string
	sensitive bool
}

// InsensitiveSpelling returns an entry matched without regard to case.
func InsensitiveSpelling(spelling string) SpellCheckKind {
	return SpellCheckKind{spelling: spelling}
}

// SensitiveSpelling returns an entry matched exactly.
func SensitiveSpelling(spelling string) SpellCheckKind {
	return SpellCheckKind{spelling: spelling, sensitive: true}
}

// Spelling returns the misspelling text.
func (k SpellCheckKind) Spelling() string { return k.spelling }

// Sensitive reports whether the entry is matched case-sensitively.
func (k SpellCheckKind) Sensitive() bool { return k.sensitive }

func (k SpellCheckKind) String() string { return k.spelling }
