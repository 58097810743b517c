// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	"github.com/unifetch/unifetch/cmd/unifetch/cli/doctor"
)

const wmicCheckName = "wmic"

// wmicCheck reports whether the WMIC helper is present. A missing
// helper carries an elevated fix that installs it with DISM.
func wmicCheck(ctx context.Context, goos string, h helper) doctor.Result {
	if goos != "windows" {
		return doctor.Skip(wmicCheckName, "only used on windows")
	}
	if h.Installed(ctx) {
		return doctor.Pass(wmicCheckName, "installed")
	}
	return doctor.FailElevated(wmicCheckName,
		"not installed; GPU information is unavailable",
		"install the WMIC capability with DISM",
		h.Install,
	)
}

// bootstrapHelper installs WMIC if it is missing and the process can.
// Failure is logged and never stops the report.
func bootstrapHelper(ctx context.Context, h helper, logger *slog.Logger) {
	results := []doctor.Result{wmicCheck(ctx, "windows", h)}
	if results[0].Status == doctor.StatusPass {
		return
	}
	outcome := doctor.ExecuteFixes(ctx, results, false, nil)
	switch {
	case outcome.FixedCount > 0:
		logger.Info("installed WMIC")
	case outcome.ElevatedSkipped > 0:
		logger.Warn("WMIC is not installed and installing it requires an Administrator prompt")
	default:
		logger.Warn("WMIC is not installed", "detail", results[0].Message)
	}
}
