// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package hwinfo turns one sample of the host's hardware and OS into an
// ordered list of renderable records.
//
// # Records
//
// Each hardware category has an immutable record type ([CPURecord],
// [GPURecord], [VendorGPURecord], [DiskRecord], [MemoryRecord],
// [OSRecord]). All of them implement [Record]: they know their
// [Category] and render themselves at a [Tier]. Higher tiers only ever
// append lines to lower ones, so Minimal output is always a prefix of
// Default output, which is a prefix of Detailed output.
//
// # Adapters
//
// An [Adapter] acquires records for one category from a backing
// subsystem. CPU, Memory and OS read the shared [Snapshot]; Disk reads
// a [VolumeLister]; GPU reads a [TableSource] (a shell-invoked device
// inventory on Windows, sysfs on Linux) and hands rows naming an NVIDIA
// device to a vendor adapter (see hwinfo/nvidia).
//
// Only the GPU adapters degrade individual fields: unreadable numbers
// become 0 and unreadable strings become a placeholder. Every other
// adapter treats its fields as required and fails the whole category.
//
// # Aggregation
//
// [Aggregator.Collect] refreshes the [Sampler] once, runs the adapters
// in [DefaultCategories] order, and returns a [Report]. A failing
// adapter contributes a [SourceError] to the report and the loop moves
// on; Collect itself never fails.
//
// # Subpackages
//
//   - hwinfo/system: gopsutil- and ghw-backed [Sampler] and
//     [VolumeLister].
//   - hwinfo/nvidia: NVML-backed vendor GPU adapter.
//   - hwinfo/wmic: WMIC video-controller query and the WMIC helper
//     check/install used at startup on Windows.
//   - hwinfo/drm: the same video-controller table built from
//     /sys/class/drm on Linux.
package hwinfo
