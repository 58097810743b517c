// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package system samples the local host through gopsutil and ghw. The
// [Sampler] fills an [hwinfo.Snapshot] once per run; [Volumes] lists
// mounted filesystems for the disk adapter.
//
// Neither type returns errors for individual unreadable values. The
// sampler leaves them at their zero value and the hwinfo adapter that
// requires them reports the failure for its category.
package system

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/unifetch/unifetch/lib/clock"
	"github.com/unifetch/unifetch/lib/hwinfo"
)

// DefaultInterval is the wait between the two CPU time readings that
// usage is computed from.
const DefaultInterval = 200 * time.Millisecond

// probe is the set of host reads the sampler needs. gopsutilProbe is
// the production implementation; tests substitute fixed values.
type probe interface {
	cpuTimes(ctx context.Context) ([]cpu.TimesStat, error)
	cpuInfo(ctx context.Context) ([]cpu.InfoStat, error)
	logicalCores(ctx context.Context) (int, error)
	memory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	host(ctx context.Context) (*host.InfoStat, error)
	hostname() (string, error)
	kernelVersion() string
}

// Sampler implements hwinfo.Sampler.
type Sampler struct {
	// Interval between CPU time readings. Zero means DefaultInterval.
	Interval time.Duration

	// Clock paces the CPU sampling interval and timestamps snapshots.
	Clock clock.Clock

	Logger *slog.Logger

	probe probe
}

// NewSampler creates a Sampler that reads the real host.
func NewSampler(logger *slog.Logger) *Sampler {
	return &Sampler{
		Interval: DefaultInterval,
		Clock:    clock.Real(),
		Logger:   logger,
		probe:    gopsutilProbe{},
	}
}

// Sample reads CPU, memory, and host identity. CPU usage is measured
// over one Interval; if ctx is cancelled during the wait, usage is
// reported as 0.
func (s *Sampler) Sample(ctx context.Context) *hwinfo.Snapshot {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	clk := s.Clock
	if clk == nil {
		clk = clock.Real()
	}
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	snapshot := &hwinfo.Snapshot{CollectedAt: clk.Now()}
	snapshot.CPUs = s.sampleCPUs(ctx, logger, clk, interval)
	snapshot.Memory = s.sampleMemory(ctx, logger)
	snapshot.Host = s.sampleHost(ctx, logger)
	return snapshot
}

func (s *Sampler) sampleCPUs(ctx context.Context, logger *slog.Logger, clk clock.Clock, interval time.Duration) []hwinfo.CPUSample {
	before, err := s.probe.cpuTimes(ctx)
	if err != nil {
		logger.Debug("reading CPU times", "error", err)
	}
	var after []cpu.TimesStat
	select {
	case <-ctx.Done():
	case <-clk.After(interval):
		after, err = s.probe.cpuTimes(ctx)
		if err != nil {
			logger.Debug("reading CPU times", "error", err)
		}
	}

	infos, err := s.probe.cpuInfo(ctx)
	if err != nil {
		logger.Debug("reading CPU info", "error", err)
	}
	count, err := s.probe.logicalCores(ctx)
	if err != nil || count <= 0 {
		count = max(len(after), len(before))
	}

	samples := make([]hwinfo.CPUSample, count)
	for index := range samples {
		sample := &samples[index]
		if len(infos) > 0 {
			// Linux reports one InfoStat per logical core; Windows and
			// macOS report one per package.
			info := infos[0]
			if len(infos) == count {
				info = infos[index]
			}
			sample.Brand = strings.TrimSpace(info.ModelName)
			if info.Mhz > 0 {
				sample.FrequencyMHz = uint64(info.Mhz + 0.5)
			}
		}
		if index < len(before) && index < len(after) {
			sample.Usage = usagePercent(readingOf(before[index]), readingOf(after[index]))
		}
	}
	return samples
}

func (s *Sampler) sampleMemory(ctx context.Context, logger *slog.Logger) hwinfo.MemorySample {
	virtual, err := s.probe.memory(ctx)
	if err != nil || virtual == nil {
		logger.Debug("reading virtual memory", "error", err)
		return hwinfo.MemorySample{}
	}
	used := virtual.Used
	if virtual.Available > 0 && virtual.Available <= virtual.Total {
		used = virtual.Total - virtual.Available
	}
	return hwinfo.MemorySample{Total: virtual.Total, Used: used}
}

func (s *Sampler) sampleHost(ctx context.Context, logger *slog.Logger) hwinfo.HostSample {
	var sample hwinfo.HostSample
	info, err := s.probe.host(ctx)
	if err != nil {
		logger.Debug("reading host info", "error", err)
	}
	if info != nil {
		sample.LongOSVersion = LongOSVersion(info)
		sample.HostName = info.Hostname
	}
	if sample.LongOSVersion == "" {
		sample.LongOSVersion = s.probe.kernelVersion()
	}
	if sample.HostName == "" {
		if name, err := s.probe.hostname(); err == nil {
			sample.HostName = name
		} else {
			logger.Debug("reading host name", "error", err)
		}
	}
	return sample
}

type gopsutilProbe struct{}

func (gopsutilProbe) cpuTimes(ctx context.Context) ([]cpu.TimesStat, error) {
	return cpu.TimesWithContext(ctx, true)
}

func (gopsutilProbe) cpuInfo(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

func (gopsutilProbe) logicalCores(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, true)
}

func (gopsutilProbe) memory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (gopsutilProbe) host(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

func (gopsutilProbe) hostname() (string, error) { return os.Hostname() }

func (gopsutilProbe) kernelVersion() string { return kernelVersion() }
