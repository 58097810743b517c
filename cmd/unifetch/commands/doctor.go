// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/unifetch/unifetch/cmd/unifetch/cli"
	"github.com/unifetch/unifetch/cmd/unifetch/cli/doctor"
	"github.com/unifetch/unifetch/lib/hwinfo"
	"github.com/unifetch/unifetch/lib/hwinfo/nvidia"
)

type doctorParams struct {
	cli.JSONOutput
	cli.Verbosity
	Fix    bool `json:"fix"     flag:"fix"     desc:"attempt to repair failed checks"`
	DryRun bool `json:"dry_run" flag:"dry-run" desc:"show what --fix would do without doing it"`
}

func doctorCommand(env *environment) *cli.Command {
	var params doctorParams
	return &cli.Command{
		Name:    "doctor",
		Summary: "Check the tools and libraries the report depends on",
		Description: `Check the tools and libraries the report depends on.

Checks the WMIC helper (windows), the NVIDIA management library, and
the system sampler. With --fix, installs WMIC when it is missing; that
fix needs an Administrator prompt.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("doctor", &params)
		},
		Examples: []cli.Example{
			{Description: "Run all checks", Command: "unifetch doctor"},
			{Description: "Install missing helpers", Command: "unifetch doctor --fix"},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}
			return runDoctor(ctx, env, &params, params.Logger(logger))
		},
	}
}

func runDoctor(ctx context.Context, env *environment, params *doctorParams, logger *slog.Logger) error {
	fixMode := params.Fix || params.DryRun
	results := runChecks(ctx, env, logger)

	var outcome doctor.Outcome
	if fixMode && doctor.AnyFailed(results) {
		failedBefore := make(map[string]bool)
		for _, result := range results {
			if result.Status == doctor.StatusFail {
				failedBefore[result.Name] = true
			}
		}
		outcome = doctor.ExecuteFixes(ctx, results, params.DryRun, nil)
		if outcome.FixedCount > 0 {
			// Re-check so the output reflects the repaired state.
			results = runChecks(ctx, env, logger)
			doctor.MarkRepaired(results, failedBefore)
		}
	}

	if params.OutputJSON {
		if err := cli.WriteFormatted(env.stdout, cli.FormatJSON, doctor.BuildJSON(results, params.DryRun, outcome)); err != nil {
			return cli.Internal("writing doctor output: %w", err)
		}
		if doctor.AnyFailed(results) {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	if doctor.PrintChecklist(env.stdout, results, fixMode, params.DryRun, outcome) {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

func runChecks(ctx context.Context, env *environment, logger *slog.Logger) []doctor.Result {
	return []doctor.Result{
		wmicCheck(ctx, env.goos, env.helper),
		nvmlCheck(env.library),
		samplerCheck(ctx, env.newSampler(logger)),
	}
}

// nvmlCheck is informational: machines without NVIDIA hardware have no
// NVML, and the report falls back to generic GPU records.
func nvmlCheck(library nvidia.Library) doctor.Result {
	count, err := nvidia.Probe(library)
	if err != nil {
		return doctor.Warn("nvml", fmt.Sprintf("unavailable (%v); NVIDIA GPUs are reported as generic GPUs", err))
	}
	return doctor.Pass("nvml", fmt.Sprintf("%d device(s)", count))
}

// samplerCheck fails when the snapshot would make the CPU or OS
// category fail.
func samplerCheck(ctx context.Context, sampler hwinfo.Sampler) doctor.Result {
	snapshot := sampler.Sample(ctx)
	switch {
	case len(snapshot.CPUs) == 0:
		return doctor.Fail("sampler", "no CPU cores sampled")
	case snapshot.Host.LongOSVersion == "":
		return doctor.Fail("sampler", "OS version not detected")
	case snapshot.Host.HostName == "":
		return doctor.Fail("sampler", "host name not detected")
	}
	return doctor.Pass("sampler", fmt.Sprintf("%d core(s), %s", len(snapshot.CPUs), snapshot.Host.LongOSVersion))
}
