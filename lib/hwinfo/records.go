// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import "strconv"

// CPURecord describes the host's processors as a whole.
type CPURecord struct {
	Name string `json:"name" yaml:"name"`

	// Cores is the number of logical cores. At least 1 for records
	// produced by CPUAdapter.
	Cores int `json:"cores" yaml:"cores"`

	// Usage is the first core's utilization in percent (0-100).
	Usage float64 `json:"usage_percent" yaml:"usage_percent"`

	// FrequencyMHz is the sum of all cores' clock frequencies.
	FrequencyMHz uint64 `json:"frequency_mhz" yaml:"frequency_mhz"`
}

func (r CPURecord) Category() Category { return CategoryCPU }

func (r CPURecord) Block(tier Tier) Block {
	block := Block{Label: CategoryCPU.Label(), Value: r.Name}
	if tier < TierDefault {
		return block
	}
	block.add("Cores", strconv.Itoa(r.Cores))
	if tier < TierDetailed {
		return block
	}
	block.addf("Usage", "%.1f%%", r.Usage)
	block.addf("Frequency", "%dMHz", r.FrequencyMHz)
	return block
}

func (r CPURecord) Render(tier Tier) string { return r.Block(tier).String() }

// GPURecord describes one video controller as reported by a generic
// device inventory query.
type GPURecord struct {
	Name          string `json:"name" yaml:"name"`
	DriverVersion string `json:"driver_version" yaml:"driver_version"`

	// AdapterRAM is the dedicated video memory in bytes. Zero when the
	// source could not report it.
	AdapterRAM uint64 `json:"adapter_ram" yaml:"adapter_ram"`

	Status               string `json:"status" yaml:"status"`
	HorizontalResolution uint32 `json:"horizontal_resolution" yaml:"horizontal_resolution"`
	VerticalResolution   uint32 `json:"vertical_resolution" yaml:"vertical_resolution"`
}

func (r GPURecord) Category() Category { return CategoryGPU }

func (r GPURecord) Block(tier Tier) Block {
	block := Block{Label: CategoryGPU.Label(), Value: r.Name}
	if tier < TierDefault {
		return block
	}
	block.addf("VRAM", "%.1fGB", Gigabytes(r.AdapterRAM))
	block.add("Driver version", r.DriverVersion)
	if tier < TierDetailed {
		return block
	}
	block.add("Status", r.Status)
	block.addf("Resolution", "%dx%d", r.HorizontalResolution, r.VerticalResolution)
	return block
}

func (r GPURecord) Render(tier Tier) string { return r.Block(tier).String() }

// VendorGPURecord describes one NVIDIA GPU as reported by the NVIDIA
// management library.
type VendorGPURecord struct {
	Name          string `json:"name" yaml:"name"`
	DriverVersion string `json:"driver_version" yaml:"driver_version"`
	CUDAVersion   string `json:"cuda_version" yaml:"cuda_version"`

	// Temperature is the GPU die temperature in degrees Celsius.
	Temperature uint32 `json:"temperature_celsius" yaml:"temperature_celsius"`

	// FanSpeed is the first fan's speed in rpm. Zero means the board
	// is fanless or the sensor is unreadable, and suppresses the fan
	// line.
	FanSpeed uint32 `json:"fan_speed_rpm" yaml:"fan_speed_rpm"`

	TotalMemory uint64 `json:"total_memory" yaml:"total_memory"`
	UsedMemory  uint64 `json:"used_memory" yaml:"used_memory"`

	// MemoryUtilization is the percentage of time over the last sample
	// period during which device memory was being read or written.
	MemoryUtilization float64 `json:"memory_utilization_percent" yaml:"memory_utilization_percent"`
}

func (r VendorGPURecord) Category() Category { return CategoryVendorGPU }

func (r VendorGPURecord) Block(tier Tier) Block {
	block := Block{Label: CategoryVendorGPU.Label(), Value: r.Name}
	if tier < TierDefault {
		return block
	}
	block.add("Driver version", r.DriverVersion)
	block.add("CUDA version", r.CUDAVersion)
	block.addf("Memory utilization", "%.1f%%", r.MemoryUtilization)
	if tier < TierDetailed {
		return block
	}
	block.addf("Total memory", "%.1fGB", Gigabytes(r.TotalMemory))
	block.addf("Used memory", "%.1fGB", Gigabytes(r.UsedMemory))
	block.addf("Temperature", "%d°C", r.Temperature)
	if r.FanSpeed != 0 {
		block.addf("Fan speed", "%drpm", r.FanSpeed)
	}
	return block
}

func (r VendorGPURecord) Render(tier Tier) string { return r.Block(tier).String() }

// DiskRecord describes one mounted volume.
type DiskRecord struct {
	Name           string `json:"name" yaml:"name"`
	FileSystem     string `json:"file_system" yaml:"file_system"`
	TotalSpace     uint64 `json:"total_space" yaml:"total_space"`
	AvailableSpace uint64 `json:"available_space" yaml:"available_space"`

	// Kind is the media classification of the backing device, such as
	// "HDD" or "SSD".
	Kind string `json:"kind" yaml:"kind"`
}

func (r DiskRecord) Category() Category { return CategoryDisk }

// Occupancy returns the used share of the volume in percent. A volume
// with zero total space reports 0.
func (r DiskRecord) Occupancy() float64 {
	if r.TotalSpace == 0 {
		return 0
	}
	return 100 - float64(r.AvailableSpace)/float64(r.TotalSpace)*100
}

func (r DiskRecord) Block(tier Tier) Block {
	block := Block{Label: CategoryDisk.Label(), Value: r.Name}
	if tier < TierDefault {
		return block
	}
	block.addf("Total space", "%.2fGB", Gigabytes(r.TotalSpace))
	block.addf("Available space", "%.2fGB", Gigabytes(r.AvailableSpace))
	block.addf("Occupancy", "%.2f%%", r.Occupancy())
	if tier < TierDetailed {
		return block
	}
	block.add("Disk type", r.Kind)
	block.add("File system", r.FileSystem)
	return block
}

func (r DiskRecord) Render(tier Tier) string { return r.Block(tier).String() }

// MemoryRecord describes physical memory. Used memory is derived as
// Total - Free at render time.
type MemoryRecord struct {
	Total uint64 `json:"total" yaml:"total"`
	Free  uint64 `json:"free" yaml:"free"`
}

func (r MemoryRecord) Category() Category { return CategoryMemory }

func (r MemoryRecord) used() float64 {
	return float64(r.Total) - float64(r.Free)
}

// Occupancy returns used memory as a percentage of total. Zero total
// reports 0.
func (r MemoryRecord) Occupancy() float64 {
	if r.Total == 0 {
		return 0
	}
	return r.used() / float64(r.Total) * 100
}

func (r MemoryRecord) Block(tier Tier) Block {
	block := Block{
		Label: CategoryMemory.Label(),
		Value: strconv.FormatFloat(r.used()/bytesPerGigabyte, 'f', 1, 64) + "GB/" +
			strconv.FormatFloat(Gigabytes(r.Total), 'f', 1, 64) + "GB",
	}
	if tier < TierDetailed {
		return block
	}
	block.addf("Occupancy", "%.2f%%", r.Occupancy())
	return block
}

func (r MemoryRecord) Render(tier Tier) string { return r.Block(tier).String() }

// OSRecord identifies the running operating system and host.
type OSRecord struct {
	// Name is the long OS version, e.g. "Linux 6.8.0 Ubuntu 24.04".
	Name     string `json:"name" yaml:"name"`
	HostName string `json:"host_name" yaml:"host_name"`
}

func (r OSRecord) Category() Category { return CategoryOS }

func (r OSRecord) Block(tier Tier) Block {
	block := Block{Label: CategoryOS.Label(), Value: r.Name}
	if tier < TierDefault {
		return block
	}
	block.add("Host name", r.HostName)
	return block
}

func (r OSRecord) Render(tier Tier) string { return r.Block(tier).String() }
