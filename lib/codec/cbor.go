// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"github.com/fxamacker/cbor/v2"
)

var encMode cbor.EncMode

func init() {
	encOptions := cbor.CoreDetEncOptions()
	// Types implementing encoding.TextMarshaler (hwinfo.Tier) encode
	// as text strings, matching their JSON form.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	// Report timestamps encode as RFC 3339 text (tag 0).
	encOptions.Time = cbor.TimeRFC3339Nano
	encOptions.TimeTag = cbor.EncTagRequired

	var err error
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}
