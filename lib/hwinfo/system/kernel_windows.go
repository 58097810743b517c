// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package system

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// kernelVersion returns "Windows <major>.<minor>.<build>" from
// RtlGetVersion, which reports the real version regardless of the
// executable's compatibility manifest.
func kernelVersion() string {
	info := windows.RtlGetVersion()
	if info == nil || info.MajorVersion == 0 {
		return ""
	}
	return fmt.Sprintf("Windows %d.%d.%d", info.MajorVersion, info.MinorVersion, info.BuildNumber)
}
