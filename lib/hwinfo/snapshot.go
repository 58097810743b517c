// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"time"
)

// CPUSample is one logical core as seen by the sampler.
type CPUSample struct {
	// Brand is the processor model name, e.g. "AMD Ryzen 9 7950X".
	Brand string

	// Usage is the core's utilization in percent over the sampling
	// interval.
	Usage float64

	// FrequencyMHz is the core's current (or nominal, when the
	// platform does not expose a current value) clock frequency.
	FrequencyMHz uint64
}

// MemorySample holds physical memory totals in bytes.
type MemorySample struct {
	Total uint64
	Used  uint64
}

// HostSample holds OS identification. Empty strings mean the value
// could not be determined.
type HostSample struct {
	LongOSVersion string
	HostName      string
}

// Snapshot is the shared, read-only sample of the host handed to every
// adapter during one aggregation pass.
type Snapshot struct {
	CPUs        []CPUSample
	Memory      MemorySample
	Host        HostSample
	CollectedAt time.Time
}

// Sampler produces a freshly refreshed Snapshot. Implementations do not
// fail: data they cannot read is left at its zero value, and the
// adapter that needs it reports the failure.
type Sampler interface {
	Sample(ctx context.Context) *Snapshot
}

// Volume is one mounted filesystem as listed by a VolumeLister.
type Volume struct {
	Name       string
	FileSystem string
	Total      uint64
	Available  uint64

	// Kind is the media classification of the backing device ("HDD",
	// "SSD", or "Unknown").
	Kind string
}

// VolumeLister enumerates mounted volumes from a freshly refreshed
// device list.
type VolumeLister interface {
	Volumes(ctx context.Context) ([]Volume, error)
}
