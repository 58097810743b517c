// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package doctor

import "os"

// IsElevated reports whether the process has effective UID 0.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// elevationHint tells the user how to re-run with privileges.
const elevationHint = "Re-run with sudo to apply these fixes:\n  sudo unifetch doctor --fix"
