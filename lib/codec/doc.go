// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds unifetch's CBOR configuration, used by
// "unifetch --format cbor".
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same report always produces identical bytes.
//
// Report types carry `json` tags only. fxamacker/cbor reads `json`
// tags when `cbor` tags are absent, so one tag names a field in JSON
// and CBOR alike.
package codec
