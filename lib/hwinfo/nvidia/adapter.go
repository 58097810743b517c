// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package nvidia reads NVIDIA GPU details from the NVIDIA Management
// Library (NVML, libnvidia-ml). It provides the vendor adapter the
// generic GPU adapter substitutes for rows naming an NVIDIA device.
//
// NVML is reached through the [Library] interface. On Linux with cgo
// the implementation is github.com/NVIDIA/go-nvml, which loads
// libnvidia-ml.so at Init. go-nvml has no Windows or macOS binding, so
// elsewhere [NewLibrary] returns a library whose Init always fails and
// NVIDIA rows of the video controller table (including every WMIC row
// on Windows) are reported as generic GPU records.
package nvidia

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/unifetch/unifetch/lib/hwinfo"
)

// Unknown is the placeholder for a string field NVML could not read.
const Unknown = "Unknown"

// Library is the subset of NVML the adapter uses.
type Library interface {
	Init() error
	Shutdown() error

	// DriverVersion returns the installed display driver version,
	// e.g. "550.54.14".
	DriverVersion() (string, error)

	// CUDADriverVersion returns the CUDA version supported by the
	// driver, encoded as 1000*major + 10*minor.
	CUDADriverVersion() (int, error)

	DeviceCount() (int, error)
	Device(index int) (Device, error)
}

// Device is one GPU handle.
type Device interface {
	Name() (string, error)

	// Temperature returns the die temperature in degrees Celsius.
	Temperature() (uint32, error)

	// FanSpeed returns the speed of the first fan in rpm.
	FanSpeed() (uint32, error)

	// MemoryInfo returns total and used framebuffer memory in bytes.
	MemoryInfo() (total, used uint64, err error)

	// MemoryUtilization returns the percentage of the last sample
	// period during which device memory was read or written.
	MemoryUtilization() (uint32, error)
}

// Adapter implements hwinfo.Adapter over a Library.
type Adapter struct {
	Library Library

	// Logger receives field-level read failures at Debug. Nil
	// discards.
	Logger *slog.Logger
}

// NewAdapter creates an Adapter over the platform's NVML binding.
func NewAdapter(logger *slog.Logger) *Adapter {
	return &Adapter{Library: NewLibrary(), Logger: logger}
}

// Acquire initializes the library, reads every device, and shuts the
// library down again. Failing to initialize or to count devices fails
// the whole acquisition. A device whose handle cannot be obtained is
// skipped; any other read failure leaves that field at Unknown or 0.
func (a *Adapter) Acquire(ctx context.Context, _ *hwinfo.Snapshot) ([]hwinfo.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := a.Library.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", hwinfo.ErrVendorInit, err)
	}
	defer func() {
		if shutdownErr := a.Library.Shutdown(); shutdownErr != nil {
			logger.Debug("NVML shutdown failed", "error", shutdownErr)
		}
	}()

	count, err := a.Library.DeviceCount()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hwinfo.ErrVendorEnumerate, err)
	}

	driverVersion, err := a.Library.DriverVersion()
	if err != nil {
		logger.Debug("NVML driver version unreadable", "error", err)
		driverVersion = Unknown
	}
	cudaVersion := Unknown
	if encoded, err := a.Library.CUDADriverVersion(); err != nil {
		logger.Debug("NVML CUDA version unreadable", "error", err)
	} else {
		cudaVersion = FormatCUDAVersion(encoded)
	}

	records := make([]hwinfo.Record, 0, count)
	for index := range count {
		device, err := a.Library.Device(index)
		if err != nil {
			logger.Debug("NVML device handle unavailable", "device", index, "error", err)
			continue
		}
		records = append(records, readDevice(logger, index, device, driverVersion, cudaVersion))
	}
	return records, nil
}

func readDevice(logger *slog.Logger, index int, device Device, driverVersion, cudaVersion string) hwinfo.VendorGPURecord {
	degraded := func(field string, err error) {
		logger.Debug("NVML field unreadable",
			"device", index,
			"field", field,
			"error", err,
		)
	}

	record := hwinfo.VendorGPURecord{
		DriverVersion: driverVersion,
		CUDAVersion:   cudaVersion,
	}
	var err error
	if record.Name, err = device.Name(); err != nil {
		degraded("name", err)
		record.Name = Unknown
	}
	if record.Temperature, err = device.Temperature(); err != nil {
		degraded("temperature", err)
		record.Temperature = 0
	}
	if record.FanSpeed, err = device.FanSpeed(); err != nil {
		degraded("fan_speed", err)
		record.FanSpeed = 0
	}
	if record.TotalMemory, record.UsedMemory, err = device.MemoryInfo(); err != nil {
		degraded("memory", err)
		record.TotalMemory, record.UsedMemory = 0, 0
	}
	utilization, err := device.MemoryUtilization()
	if err != nil {
		degraded("memory_utilization", err)
		utilization = 0
	}
	record.MemoryUtilization = float64(utilization)
	return record
}

// FormatCUDAVersion renders NVML's 1000*major + 10*minor encoding as
// "major.minor". Non-positive values render as Unknown.
func FormatCUDAVersion(encoded int) string {
	if encoded <= 0 {
		return Unknown
	}
	return fmt.Sprintf("%d.%d", encoded/1000, (encoded%1000)/10)
}

// Probe reports whether the library can be initialized, and the
// number of devices it sees.
func Probe(library Library) (int, error) {
	if err := library.Init(); err != nil {
		return 0, fmt.Errorf("%w: %w", hwinfo.ErrVendorInit, err)
	}
	count, countErr := library.DeviceCount()
	shutdownErr := library.Shutdown()
	if countErr != nil {
		return 0, fmt.Errorf("%w: %w", hwinfo.ErrVendorEnumerate, countErr)
	}
	return count, shutdownErr
}
