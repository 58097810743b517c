// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the unifetch command tree: report (the
// default), doctor, and version.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/unifetch/unifetch/cmd/unifetch/cli"
	"github.com/unifetch/unifetch/lib/clock"
	"github.com/unifetch/unifetch/lib/hwinfo"
	"github.com/unifetch/unifetch/lib/hwinfo/nvidia"
	"github.com/unifetch/unifetch/lib/hwinfo/system"
	"github.com/unifetch/unifetch/lib/hwinfo/wmic"
	"github.com/unifetch/unifetch/lib/version"
)

// helper is the WMIC presence check and installer.
type helper interface {
	Installed(ctx context.Context) bool
	Install(ctx context.Context) error
}

// environment holds everything the commands touch outside the process.
// Tests substitute fakes.
type environment struct {
	stdout io.Writer
	stderr io.Writer

	// goos selects platform behavior (the WMIC bootstrap on windows).
	goos string

	helper  helper
	library nvidia.Library

	// newSampler and newAggregator are called once per command run
	// with that run's logger.
	newSampler    func(logger *slog.Logger) hwinfo.Sampler
	newAggregator func(logger *slog.Logger) *hwinfo.Aggregator
}

func defaultEnvironment() *environment {
	return &environment{
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		goos:          runtime.GOOS,
		helper:        wmic.NewHelper(),
		library:       nvidia.NewLibrary(),
		newSampler:    func(logger *slog.Logger) hwinfo.Sampler { return system.NewSampler(logger) },
		newAggregator: newAggregator,
	}
}

// newAggregator wires the production adapters. The GPU category
// substitutes NVML records for NVIDIA rows; vendor_gpu can also be
// requested on its own with --only.
func newAggregator(logger *slog.Logger) *hwinfo.Aggregator {
	vendor := nvidia.NewAdapter(logger)
	return &hwinfo.Aggregator{
		Sampler: system.NewSampler(logger),
		Adapters: map[hwinfo.Category]hwinfo.Adapter{
			hwinfo.CategoryCPU: hwinfo.CPUAdapter{},
			hwinfo.CategoryGPU: &hwinfo.GPUAdapter{
				Source: gpuSource(),
				Vendor: vendor,
				Logger: logger,
			},
			hwinfo.CategoryVendorGPU: vendor,
			hwinfo.CategoryDisk:      hwinfo.DiskAdapter{Volumes: system.NewVolumes(logger)},
			hwinfo.CategoryMemory:    hwinfo.MemoryAdapter{},
			hwinfo.CategoryOS:        hwinfo.OSAdapter{},
		},
		Clock:  clock.Real(),
		Logger: logger,
	}
}

// Root builds the complete unifetch command tree.
func Root() *cli.Command {
	return rootCommand(defaultEnvironment())
}

func rootCommand(env *environment) *cli.Command {
	return &cli.Command{
		Name: "unifetch",
		Description: `unifetch: local system information.

Prints the CPU, GPU, disk, memory, and OS of this machine at one of
three detail levels. NVIDIA GPUs are reported through NVML when the
driver library is available.`,
		DefaultSubcommand: "report",
		Subcommands: []*cli.Command{
			reportCommand(env),
			doctorCommand(env),
			versionCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "Print the default report",
				Command:     "unifetch",
			},
			{
				Description: "Print every available attribute",
				Command:     "unifetch -s detailed",
			},
			{
				Description: "Emit the report as JSON",
				Command:     "unifetch report --format json",
			},
			{
				Description: "Check the helper tool and the NVIDIA library",
				Command:     "unifetch doctor",
			},
		},
	}
}

func versionCommand(env *environment) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}
			fmt.Fprintf(env.stdout, "unifetch %s\n", version.Full())
			return nil
		},
	}
}
