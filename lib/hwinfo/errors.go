// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"errors"
	"fmt"
)

// Acquisition failures. Adapters wrap these with context; callers test
// for them with errors.Is.
var (
	ErrNoCores           = errors.New("no CPU cores reported")
	ErrEmptyOutput       = errors.New("device inventory query returned no output")
	ErrUndecodableOutput = errors.New("device inventory output is not decodable text")
	ErrMalformedTable    = errors.New("device inventory table is malformed")
	ErrVendorInit        = errors.New("vendor GPU library initialization failed")
	ErrVendorEnumerate   = errors.New("vendor GPU device enumeration failed")
	ErrOSVersion         = errors.New("failed to detect OS version")
	ErrHostName          = errors.New("failed to detect host name")
	ErrNoAdapter         = errors.New("no adapter registered")
)

// SourceError records the failure of one category's acquisition.
type SourceError struct {
	Category Category
	Err      error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Category.Label(), e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
