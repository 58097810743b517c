// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package wmic

import (
	"context"
	"fmt"
)

// Helper checks for and installs the WMIC optional capability.
type Helper struct {
	Runner Runner
}

// NewHelper creates a Helper that runs real commands.
func NewHelper() *Helper {
	return &Helper{Runner: ExecRunner{}}
}

// Installed reports whether wmic runs successfully.
func (h *Helper) Installed(ctx context.Context) bool {
	_, err := h.Runner.Run(ctx, "cmd", "/C", "wmic os get caption /value")
	return err == nil
}

// Install adds the WMIC capability with DISM. It requires an elevated
// process.
func (h *Helper) Install(ctx context.Context) error {
	if _, err := h.Runner.Run(ctx, "DISM", "/Online", "/Add-Capability", "/CapabilityName:WMIC~~~~"); err != nil {
		return fmt.Errorf("installing WMIC with DISM: %w", err)
	}
	return nil
}
