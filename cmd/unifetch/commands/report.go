// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/unifetch/unifetch/cmd/unifetch/cli"
	"github.com/unifetch/unifetch/lib/hwinfo"
)

type reportParams struct {
	cli.Verbosity
	Style   hwinfo.Tier `json:"style"    flag:"style,s"  default:"default" desc:"detail level: minimal, default, or detailed"`
	Format  cli.Format  `json:"format"   flag:"format,f" default:"text"    desc:"output format: text, json, yaml, or cbor"`
	NoColor bool        `json:"no_color" flag:"no-color"                   desc:"disable colored labels"`
	Only    []string    `json:"only"     flag:"only"                       desc:"comma-separated categories to report (cpu,gpu,vendor_gpu,disk,memory,os)"`
}

func reportCommand(env *environment) *cli.Command {
	var params reportParams
	return &cli.Command{
		Name:    "report",
		Summary: "Print the system report",
		Description: `Print the system report.

Each category (CPU, GPU, disk, memory, OS) is acquired independently.
A category that cannot be read is reported as an "ERROR:" line on
stderr and the rest of the report is still printed. Machine formats
also carry the failures in the document's "failures" list.`,
		Usage: "unifetch [report] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("report", &params)
		},
		Env: map[string]string{
			"style":    "UNIFETCH_STYLE",
			"format":   "UNIFETCH_FORMAT",
			"no-color": "NO_COLOR",
		},
		Examples: []cli.Example{
			{Description: "Only the name of each component", Command: "unifetch -s minimal"},
			{Description: "Memory and disks as YAML", Command: "unifetch report --only memory,disk --format yaml"},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0]).
					WithHint("Run 'unifetch report --help' for usage.")
			}
			return runReport(ctx, env, &params, params.Logger(logger))
		},
	}
}

func runReport(ctx context.Context, env *environment, params *reportParams, logger *slog.Logger) error {
	categories, err := parseCategories(params.Only)
	if err != nil {
		return err
	}

	if env.goos == "windows" {
		bootstrapHelper(ctx, env.helper, logger)
	}

	aggregator := env.newAggregator(logger)
	if categories != nil {
		aggregator.Categories = categories
	}
	report := aggregator.Collect(ctx)

	printer := newPrinter(env.stdout, env.stderr, params.NoColor)
	if params.Format != cli.FormatText && params.Format != "" {
		if err := cli.WriteFormatted(env.stdout, params.Format, report.Document(params.Style)); err != nil {
			return cli.Internal("writing %s report: %w", params.Format, err)
		}
		printer.failures(report)
		return nil
	}

	printer.report(report, params.Style)
	return nil
}

// parseCategories returns nil for an empty list, meaning the default
// order.
func parseCategories(names []string) ([]hwinfo.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}
	categories := make([]hwinfo.Category, 0, len(names))
	for _, name := range names {
		category, err := hwinfo.ParseCategory(name)
		if err != nil {
			valid := make([]string, 0, len(hwinfo.Categories))
			for _, known := range hwinfo.Categories {
				valid = append(valid, string(known))
			}
			return nil, cli.Validation("%w", err).
				WithHint("Valid categories: " + strings.Join(valid, ", ") + ".")
		}
		categories = append(categories, category)
	}
	return categories, nil
}
