// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package nvidia

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/unifetch/unifetch/lib/hwinfo"
)

var errNotSupported = errors.New("Not Supported")

// fakeDevice returns fixed values; a non-nil error in failures makes
// the named read fail.
type fakeDevice struct {
	name        string
	temperature uint32
	fanSpeed    uint32
	total, used uint64
	utilization uint32
	failures    map[string]error
}

func (d fakeDevice) Name() (string, error) { return d.name, d.failures["name"] }

func (d fakeDevice) Temperature() (uint32, error) {
	return d.temperature, d.failures["temperature"]
}

func (d fakeDevice) FanSpeed() (uint32, error) { return d.fanSpeed, d.failures["fan"] }

func (d fakeDevice) MemoryInfo() (uint64, uint64, error) {
	return d.total, d.used, d.failures["memory"]
}

func (d fakeDevice) MemoryUtilization() (uint32, error) {
	return d.utilization, d.failures["utilization"]
}

// fakeLibrary is an in-memory NVML.
type fakeLibrary struct {
	devices       []fakeDevice
	driverVersion string
	cudaVersion   int
	initErr       error
	countErr      error
	deviceErrs    map[int]error
	versionErr    error
	initialized   bool
	shutdowns     int
}

func (l *fakeLibrary) Init() error {
	if l.initErr != nil {
		return l.initErr
	}
	l.initialized = true
	return nil
}

func (l *fakeLibrary) Shutdown() error {
	l.shutdowns++
	l.initialized = false
	return nil
}

func (l *fakeLibrary) DriverVersion() (string, error) { return l.driverVersion, l.versionErr }

func (l *fakeLibrary) CUDADriverVersion() (int, error) { return l.cudaVersion, l.versionErr }

func (l *fakeLibrary) DeviceCount() (int, error) { return len(l.devices), l.countErr }

func (l *fakeLibrary) Device(index int) (Device, error) {
	if err := l.deviceErrs[index]; err != nil {
		return nil, err
	}
	return l.devices[index], nil
}

const gibibyte = 1024 * 1024 * 1024

func TestAcquire(t *testing.T) {
	library := &fakeLibrary{
		driverVersion: "550.54.14",
		cudaVersion:   12040,
		devices: []fakeDevice{
			{name: "NVIDIA GeForce RTX 4090", temperature: 42, fanSpeed: 1500, total: 24 * gibibyte, used: 2 * gibibyte, utilization: 7},
			{name: "NVIDIA A100-SXM4-80GB", temperature: 35, total: 80 * gibibyte, used: 0, utilization: 0},
		},
	}
	adapter := &Adapter{Library: library}

	records, err := adapter.Acquire(context.Background(), &hwinfo.Snapshot{})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Acquire returned %d records, want 2", len(records))
	}

	first := records[0].(hwinfo.VendorGPURecord)
	want := hwinfo.VendorGPURecord{
		Name:              "NVIDIA GeForce RTX 4090",
		DriverVersion:     "550.54.14",
		CUDAVersion:       "12.4",
		Temperature:       42,
		FanSpeed:          1500,
		TotalMemory:       24 * gibibyte,
		UsedMemory:        2 * gibibyte,
		MemoryUtilization: 7,
	}
	if first != want {
		t.Errorf("records[0] = %+v, want %+v", first, want)
	}

	second := records[1].(hwinfo.VendorGPURecord)
	if strings.Contains(second.Render(hwinfo.TierDetailed), "Fan speed") {
		t.Errorf("fanless device rendered a fan line: %q", second.Render(hwinfo.TierDetailed))
	}

	if library.shutdowns != 1 || library.initialized {
		t.Errorf("library shut down %d times (initialized=%v), want once", library.shutdowns, library.initialized)
	}
}

func TestAcquireDegradesFields(t *testing.T) {
	library := &fakeLibrary{
		versionErr: errNotSupported,
		devices: []fakeDevice{{
			name:        "ignored",
			temperature: 99,
			fanSpeed:    2400,
			total:       1,
			used:        1,
			utilization: 99,
			failures: map[string]error{
				"name":        errNotSupported,
				"temperature": errNotSupported,
				"fan":         errNotSupported,
				"memory":      errNotSupported,
				"utilization": errNotSupported,
			},
		}},
	}

	records, err := (&Adapter{Library: library}).Acquire(context.Background(), nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	want := hwinfo.VendorGPURecord{
		Name:          Unknown,
		DriverVersion: Unknown,
		CUDAVersion:   Unknown,
	}
	if got := records[0].(hwinfo.VendorGPURecord); got != want {
		t.Errorf("record = %+v, want %+v", got, want)
	}
}

func TestAcquireFailures(t *testing.T) {
	tests := []struct {
		name         string
		library      *fakeLibrary
		want         error
		wantShutdown int
	}{
		{
			name:         "init",
			library:      &fakeLibrary{initErr: errors.New("Driver Not Loaded")},
			want:         hwinfo.ErrVendorInit,
			wantShutdown: 0,
		},
		{
			name:         "count",
			library:      &fakeLibrary{countErr: errors.New("Unknown Error")},
			want:         hwinfo.ErrVendorEnumerate,
			wantShutdown: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			records, err := (&Adapter{Library: test.library}).Acquire(context.Background(), nil)
			if !errors.Is(err, test.want) {
				t.Errorf("Acquire error = %v, want %v", err, test.want)
			}
			if records != nil {
				t.Errorf("Acquire returned %d records alongside an error", len(records))
			}
			if test.library.shutdowns != test.wantShutdown {
				t.Errorf("Shutdown called %d times, want %d", test.library.shutdowns, test.wantShutdown)
			}
		})
	}
}

func TestAcquireSkipsLostDevice(t *testing.T) {
	library := &fakeLibrary{
		driverVersion: "550.54.14",
		cudaVersion:   12040,
		devices: []fakeDevice{
			{name: "NVIDIA GeForce RTX 4090"},
			{name: "NVIDIA GeForce RTX 3060"},
			{name: "NVIDIA T400"},
		},
		deviceErrs: map[int]error{1: errors.New("GPU is lost")},
	}

	records, err := (&Adapter{Library: library}).Acquire(context.Background(), nil)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	var names []string
	for _, record := range records {
		names = append(names, record.(hwinfo.VendorGPURecord).Name)
	}
	want := []string{"NVIDIA GeForce RTX 4090", "NVIDIA T400"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Acquire names = %v, want %v", names, want)
	}
	if library.shutdowns != 1 {
		t.Errorf("Shutdown called %d times, want 1", library.shutdowns)
	}
}

func TestFormatCUDAVersion(t *testing.T) {
	tests := map[int]string{
		12040: "12.4",
		11080: "11.8",
		10010: "10.1",
		0:     Unknown,
		-1:    Unknown,
	}
	for encoded, want := range tests {
		if got := FormatCUDAVersion(encoded); got != want {
			t.Errorf("FormatCUDAVersion(%d) = %q, want %q", encoded, got, want)
		}
	}
}

func TestProbe(t *testing.T) {
	count, err := Probe(&fakeLibrary{devices: []fakeDevice{{}, {}}})
	if err != nil || count != 2 {
		t.Errorf("Probe = %d, %v, want 2, nil", count, err)
	}
	if _, err := Probe(&fakeLibrary{initErr: errNotSupported}); !errors.Is(err, hwinfo.ErrVendorInit) {
		t.Errorf("Probe error = %v, want ErrVendorInit", err)
	}
}

func TestAcquireCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	library := &fakeLibrary{}
	if _, err := (&Adapter{Library: library}).Acquire(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Acquire error = %v, want context.Canceled", err)
	}
	if library.initialized || library.shutdowns != 0 {
		t.Error("cancelled Acquire touched the library")
	}
}
