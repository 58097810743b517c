// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package system

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/disk"

	"github.com/unifetch/unifetch/lib/hwinfo"
)

// UnknownKind is the media kind of a volume whose backing drive could
// not be classified.
const UnknownKind = "Unknown"

// diskProbe is the set of storage reads Volumes needs.
type diskProbe interface {
	partitions(ctx context.Context) ([]disk.PartitionStat, error)
	usage(ctx context.Context, path string) (*disk.UsageStat, error)

	// driveKinds maps partition names (e.g. "nvme0n1p2") and mount
	// points to the media kind of the drive holding them.
	driveKinds() (map[string]string, error)
}

// Volumes implements hwinfo.VolumeLister. Each call re-reads the mount
// table; filesystems whose usage cannot be read are skipped.
type Volumes struct {
	Logger *slog.Logger

	probe diskProbe
}

// NewVolumes creates a Volumes lister over the real mount table.
func NewVolumes(logger *slog.Logger) *Volumes {
	return &Volumes{Logger: logger, probe: hostDiskProbe{}}
}

func (v *Volumes) Volumes(ctx context.Context) ([]hwinfo.Volume, error) {
	logger := v.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	partitions, err := v.probe.partitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading mount table: %w", err)
	}
	kinds, err := v.probe.driveKinds()
	if err != nil {
		logger.Debug("classifying drives", "error", err)
	}

	seen := make(map[string]bool, len(partitions))
	volumes := make([]hwinfo.Volume, 0, len(partitions))
	for _, partition := range partitions {
		if seen[partition.Mountpoint] {
			continue
		}
		seen[partition.Mountpoint] = true

		usage, err := v.probe.usage(ctx, partition.Mountpoint)
		if err != nil {
			logger.Debug("skipping volume with unreadable usage",
				"mountpoint", partition.Mountpoint,
				"error", err,
			)
			continue
		}

		fileSystem := partition.Fstype
		if fileSystem == "" {
			fileSystem = usage.Fstype
		}
		volumes = append(volumes, hwinfo.Volume{
			Name:       volumeName(partition),
			FileSystem: fileSystem,
			Total:      usage.Total,
			Available:  usage.Free,
			Kind:       classify(kinds, partition),
		})
	}
	return volumes, nil
}

func volumeName(partition disk.PartitionStat) string {
	if partition.Device != "" {
		return partition.Device
	}
	return partition.Mountpoint
}

func classify(kinds map[string]string, partition disk.PartitionStat) string {
	if kind, ok := kinds[filepath.Base(partition.Device)]; ok {
		return kind
	}
	if kind, ok := kinds[strings.TrimSuffix(partition.Mountpoint, `\`)]; ok {
		return kind
	}
	if kind, ok := kinds[partition.Mountpoint]; ok {
		return kind
	}
	return UnknownKind
}

type hostDiskProbe struct{}

func (hostDiskProbe) partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

func (hostDiskProbe) usage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

func (hostDiskProbe) driveKinds() (map[string]string, error) {
	block, err := ghw.Block(ghw.WithDisableWarnings())
	if err != nil {
		return nil, err
	}
	kinds := make(map[string]string)
	for _, drive := range block.Disks {
		kind := drive.DriveType.String()
		if kind == "" || strings.EqualFold(kind, "unknown") {
			kind = UnknownKind
		}
		kinds[drive.Name] = kind
		for _, partition := range drive.Partitions {
			kinds[partition.Name] = kind
			if partition.MountPoint != "" {
				kinds[partition.MountPoint] = kind
			}
		}
	}
	return kinds, nil
}
