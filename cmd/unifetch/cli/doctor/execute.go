// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"errors"
	"fmt"
	"syscall"
)

// isElevated is replaced in tests.
var isElevated = IsElevated

// ExecuteFixes runs the fix action of each fixable failure, updating
// results in place. In dry-run mode nothing runs and an empty Outcome
// is returned.
//
// isPermissionDenied classifies fix errors; nil means EPERM/EACCES.
func ExecuteFixes(ctx context.Context, results []Result, dryRun bool, isPermissionDenied func(error) bool) Outcome {
	if dryRun {
		return Outcome{}
	}
	if isPermissionDenied == nil {
		isPermissionDenied = isOSPermissionDenied
	}

	var outcome Outcome
	elevated := isElevated()

	for i := range results {
		if results[i].Status != StatusFail || results[i].fix == nil {
			continue
		}
		if results[i].Elevated && !elevated {
			outcome.ElevatedSkipped++
			continue
		}
		if err := results[i].fix(ctx); err != nil {
			if isPermissionDenied(err) {
				outcome.PermissionDenied = true
				results[i].Message = fmt.Sprintf("%s (insufficient permissions)", results[i].Message)
			} else {
				results[i].Message = fmt.Sprintf("%s (fix failed: %v)", results[i].Message, err)
			}
			continue
		}
		results[i].Status = StatusFixed
		outcome.FixedCount++
	}
	return outcome
}

func isOSPermissionDenied(err error) bool {
	return errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EACCES)
}

// BuildJSON builds the JSON output from results and outcome metadata.
func BuildJSON(results []Result, dryRun bool, outcome Outcome) JSONOutput {
	return JSONOutput{
		Checks:           results,
		OK:               !AnyFailed(results),
		DryRun:           dryRun,
		PermissionDenied: outcome.PermissionDenied,
		ElevatedSkipped:  outcome.ElevatedSkipped,
	}
}

// AnyFailed reports whether any result has StatusFail.
func AnyFailed(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return true
		}
	}
	return false
}

// MarkRepaired marks results that pass now but failed in an earlier
// run as fixed.
func MarkRepaired(results []Result, repairedNames map[string]bool) {
	for i := range results {
		if results[i].Status == StatusPass && repairedNames[results[i].Name] {
			results[i].Status = StatusFixed
		}
	}
}
