// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"errors"
	"fmt"
)

// Adapter acquires the records for one category. Adapters receive the
// shared snapshot read-only and return records in their own order, or
// an error that fails the whole category.
type Adapter interface {
	Acquire(ctx context.Context, snapshot *Snapshot) ([]Record, error)
}

// AdapterFunc adapts a plain function to the Adapter interface.
type AdapterFunc func(ctx context.Context, snapshot *Snapshot) ([]Record, error)

// Acquire calls f.
func (f AdapterFunc) Acquire(ctx context.Context, snapshot *Snapshot) ([]Record, error) {
	return f(ctx, snapshot)
}

// CPUAdapter produces one CPURecord from the snapshot's core samples.
// Name and usage come from the first core; frequency is summed across
// all cores.
type CPUAdapter struct{}

func (CPUAdapter) Acquire(_ context.Context, snapshot *Snapshot) ([]Record, error) {
	if snapshot == nil || len(snapshot.CPUs) == 0 {
		return nil, ErrNoCores
	}
	first := snapshot.CPUs[0]
	var frequency uint64
	for _, core := range snapshot.CPUs {
		frequency += core.FrequencyMHz
	}
	return []Record{CPURecord{
		Name:         first.Brand,
		Cores:        len(snapshot.CPUs),
		Usage:        first.Usage,
		FrequencyMHz: frequency,
	}}, nil
}

// MemoryAdapter produces one MemoryRecord. It never fails; a used
// value larger than total yields zero free memory.
type MemoryAdapter struct{}

func (MemoryAdapter) Acquire(_ context.Context, snapshot *Snapshot) ([]Record, error) {
	var memory MemorySample
	if snapshot != nil {
		memory = snapshot.Memory
	}
	var free uint64
	if memory.Total > memory.Used {
		free = memory.Total - memory.Used
	}
	return []Record{MemoryRecord{Total: memory.Total, Free: free}}, nil
}

// OSAdapter produces one OSRecord. Both the OS version and host name
// are required.
type OSAdapter struct{}

func (OSAdapter) Acquire(_ context.Context, snapshot *Snapshot) ([]Record, error) {
	var host HostSample
	if snapshot != nil {
		host = snapshot.Host
	}
	if host.LongOSVersion == "" {
		return nil, ErrOSVersion
	}
	if host.HostName == "" {
		return nil, ErrHostName
	}
	return []Record{OSRecord{Name: host.LongOSVersion, HostName: host.HostName}}, nil
}

// DiskAdapter produces one DiskRecord per mounted volume. An empty
// volume list is not an error.
type DiskAdapter struct {
	Volumes VolumeLister
}

func (a DiskAdapter) Acquire(ctx context.Context, _ *Snapshot) ([]Record, error) {
	if a.Volumes == nil {
		return nil, errors.New("no volume lister configured")
	}
	volumes, err := a.Volumes.Volumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing volumes: %w", err)
	}
	records := make([]Record, 0, len(volumes))
	for _, volume := range volumes {
		records = append(records, DiskRecord{
			Name:           volume.Name,
			FileSystem:     volume.FileSystem,
			TotalSpace:     volume.Total,
			AvailableSpace: volume.Available,
			Kind:           volume.Kind,
		})
	}
	return records, nil
}
