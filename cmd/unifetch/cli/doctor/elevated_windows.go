// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package doctor

import "golang.org/x/sys/windows"

// IsElevated reports whether the process token is elevated
// (run as Administrator).
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

const elevationHint = "Re-run from an Administrator prompt to apply these fixes:\n  unifetch doctor --fix"
