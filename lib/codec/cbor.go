// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding used for helpbot's durable
// state records. Encoding is deterministic so that saving an unchanged
// record produces identical bytes.
package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
// Unknown fields are silently ignored for forward compatibility.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Types implementing encoding.TextMarshaler (ref.UserID, ref.RoomID)
	// serialize as CBOR text strings via MarshalText. Without this,
	// their unexported fields would serialize as empty CBOR maps,
	// losing the identifier.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// State records never use non-string map keys; when decoding
		// into an any-typed target, pick map[string]any rather than the
		// CBOR default map[any]any.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		// Mirror of the TextMarshaler setting above for round-trip
		// correctness of ref types (including as map keys).
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
