// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux && cgo

package nvidia

import (
	"errors"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// NewLibrary returns the go-nvml binding. libnvidia-ml.so is loaded on
// Init, so constructing it never fails.
func NewLibrary() Library { return nvmlLibrary{} }

type nvmlLibrary struct{}

func check(ret nvml.Return) error {
	if ret == nvml.SUCCESS {
		return nil
	}
	return errors.New(nvml.ErrorString(ret))
}

func (nvmlLibrary) Init() error     { return check(nvml.Init()) }
func (nvmlLibrary) Shutdown() error { return check(nvml.Shutdown()) }

func (nvmlLibrary) DriverVersion() (string, error) {
	version, ret := nvml.SystemGetDriverVersion()
	return version, check(ret)
}

func (nvmlLibrary) CUDADriverVersion() (int, error) {
	version, ret := nvml.SystemGetCudaDriverVersion()
	return version, check(ret)
}

func (nvmlLibrary) DeviceCount() (int, error) {
	count, ret := nvml.DeviceGetCount()
	return count, check(ret)
}

func (nvmlLibrary) Device(index int) (Device, error) {
	device, ret := nvml.DeviceGetHandleByIndex(index)
	if err := check(ret); err != nil {
		return nil, err
	}
	return nvmlDevice{device: device}, nil
}

type nvmlDevice struct {
	device nvml.Device
}

func (d nvmlDevice) Name() (string, error) {
	name, ret := d.device.GetName()
	return name, check(ret)
}

func (d nvmlDevice) Temperature() (uint32, error) {
	temperature, ret := d.device.GetTemperature(nvml.TEMPERATURE_GPU)
	return temperature, check(ret)
}

func (d nvmlDevice) FanSpeed() (uint32, error) {
	info, ret := d.device.GetFanSpeedRPM()
	if err := check(ret); err != nil {
		return 0, err
	}
	return info.Speed, nil
}

func (d nvmlDevice) MemoryInfo() (uint64, uint64, error) {
	memory, ret := d.device.GetMemoryInfo()
	if err := check(ret); err != nil {
		return 0, 0, err
	}
	return memory.Total, memory.Used, nil
}

func (d nvmlDevice) MemoryUtilization() (uint32, error) {
	utilization, ret := d.device.GetUtilizationRates()
	if err := check(ret); err != nil {
		return 0, err
	}
	return utilization.Memory, nil
}
