// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux || !cgo

package nvidia

import "errors"

var errUnsupported = errors.New("NVML is not available on this platform")

// NewLibrary returns a library whose Init always fails. go-nvml needs
// cgo and dlopen, which this build does not have.
func NewLibrary() Library { return unsupportedLibrary{} }

type unsupportedLibrary struct{}

func (unsupportedLibrary) Init() error { return errUnsupported }

func (unsupportedLibrary) Shutdown() error { return nil }

func (unsupportedLibrary) DriverVersion() (string, error) { return "", errUnsupported }

func (unsupportedLibrary) CUDADriverVersion() (int, error) { return 0, errUnsupported }

func (unsupportedLibrary) DeviceCount() (int, error) { return 0, errUnsupported }

func (unsupportedLibrary) Device(int) (Device, error) { return nil, errUnsupported }
