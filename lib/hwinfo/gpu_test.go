// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"errors"
	"testing"
)

// staticSource returns a fixed table or error.
type staticSource struct {
	table *Table
	err   error
}

func (s staticSource) Query(context.Context) (*Table, error) { return s.table, s.err }

// countingVendor returns fixed vendor records and counts invocations.
type countingVendor struct {
	records []Record
	err     error
	calls   int
}

func (v *countingVendor) Acquire(context.Context, *Snapshot) ([]Record, error) {
	v.calls++
	return v.records, v.err
}

var inventoryHeader = []string{
	"Node", ColumnAdapterRAM, ColumnHorizontalResolution, ColumnVerticalResolution,
	ColumnDriverVersion, ColumnName, ColumnStatus,
}

func TestGPUAdapterSubstitutesVendorRows(t *testing.T) {
	vendor := &countingVendor{records: []Record{
		VendorGPURecord{Name: "NVIDIA GeForce RTX 3070", CUDAVersion: "12.4"},
	}}
	adapter := &GPUAdapter{
		Source: staticSource{table: &Table{
			Header: inventoryHeader,
			Rows: [][]string{
				{"DESK", "4293918720", "2560", "1440", "31.0.15.5222", "NVIDIA GeForce RTX 3070", "OK"},
				{"DESK", "1073741824", "1920", "1080", "31.0.101.4502", "Intel(R) UHD Graphics 770", "OK"},
			},
		}},
		Vendor: vendor,
	}

	records, err := adapter.Acquire(context.Background(), &Snapshot{})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Acquire returned %d records, want 2", len(records))
	}
	if _, ok := records[0].(VendorGPURecord); !ok {
		t.Errorf("records[0] is %T, want VendorGPURecord", records[0])
	}
	generic, ok := records[1].(GPURecord)
	if !ok {
		t.Fatalf("records[1] is %T, want GPURecord", records[1])
	}
	want := GPURecord{
		Name:                 "Intel(R) UHD Graphics 770",
		DriverVersion:        "31.0.101.4502",
		AdapterRAM:           1073741824,
		Status:               "OK",
		HorizontalResolution: 1920,
		VerticalResolution:   1080,
	}
	if generic != want {
		t.Errorf("records[1] = %+v, want %+v", generic, want)
	}
	if vendor.calls != 1 {
		t.Errorf("vendor adapter called %d times, want 1", vendor.calls)
	}
}

func TestGPUAdapterPreservesRowOrder(t *testing.T) {
	vendor := &countingVendor{records: []Record{
		VendorGPURecord{Name: "NVIDIA A"},
		VendorGPURecord{Name: "NVIDIA B"},
	}}
	adapter := &GPUAdapter{
		Source: staticSource{table: &Table{
			Header: []string{ColumnName},
			Rows:   [][]string{{"Intel Arc A770"}, {"NVIDIA A"}, {"AMD Radeon"}, {"NVIDIA B"}},
		}},
		Vendor: vendor,
	}

	records, err := adapter.Acquire(context.Background(), &Snapshot{})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	var got []string
	for _, record := range records {
		got = append(got, string(record.Category())+":"+record.Render(TierMinimal))
	}
	want := []string{
		"gpu:GPU: Intel Arc A770",
		"vendor_gpu:Nvidia GPU: NVIDIA A",
		"vendor_gpu:Nvidia GPU: NVIDIA B",
		"gpu:GPU: AMD Radeon",
	}
	if len(got) != len(want) {
		t.Fatalf("records = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("records[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if vendor.calls != 1 {
		t.Errorf("vendor adapter called %d times, want 1", vendor.calls)
	}
}

func TestGPUAdapterVendorFailureFallsBack(t *testing.T) {
	vendor := &countingVendor{err: ErrVendorInit}
	adapter := &GPUAdapter{
		Source: staticSource{table: &Table{
			Header: []string{ColumnName, ColumnAdapterRAM},
			Rows:   [][]string{{"NVIDIA T4", "16106127360"}, {"NVIDIA T4", "16106127360"}},
		}},
		Vendor: vendor,
	}

	records, err := adapter.Acquire(context.Background(), &Snapshot{})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Acquire returned %d records, want 2", len(records))
	}
	for i, record := range records {
		generic, ok := record.(GPURecord)
		if !ok {
			t.Errorf("records[%d] is %T, want GPURecord", i, record)
			continue
		}
		if generic.AdapterRAM != 16106127360 {
			t.Errorf("records[%d].AdapterRAM = %d, want 16106127360", i, generic.AdapterRAM)
		}
	}
	if vendor.calls != 1 {
		t.Errorf("vendor adapter called %d times, want 1", vendor.calls)
	}
}

func TestGPUAdapterLenientNumbers(t *testing.T) {
	adapter := &GPUAdapter{
		Source: staticSource{table: &Table{
			Header: inventoryHeader,
			Rows: [][]string{
				{"DESK", "not-a-number", "", "-1", "1.0", "Microsoft Basic Display Adapter", "Degraded"},
			},
		}},
	}

	records, err := adapter.Acquire(context.Background(), &Snapshot{})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	want := GPURecord{
		Name:          "Microsoft Basic Display Adapter",
		DriverVersion: "1.0",
		Status:        "Degraded",
	}
	if got := records[0].(GPURecord); got != want {
		t.Errorf("record = %+v, want %+v", got, want)
	}
}

func TestGPUAdapterWithoutVendorKeepsNVIDIARows(t *testing.T) {
	adapter := &GPUAdapter{
		Source: staticSource{table: &Table{
			Header: []string{ColumnName},
			Rows:   [][]string{{"NVIDIA GeForce GTX 1080"}},
		}},
	}
	records, err := adapter.Acquire(context.Background(), &Snapshot{})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if len(records) != 1 || records[0].Category() != CategoryGPU {
		t.Errorf("records = %v, want one generic GPU record", records)
	}
}

func TestGPUAdapterStructuralFailures(t *testing.T) {
	tests := []struct {
		name   string
		source staticSource
		want   error
	}{
		{
			name:   "source error",
			source: staticSource{err: ErrEmptyOutput},
			want:   ErrEmptyOutput,
		},
		{
			name:   "ragged row",
			source: staticSource{table: &Table{Header: []string{ColumnName, ColumnStatus}, Rows: [][]string{{"GPU"}}}},
			want:   ErrMalformedTable,
		},
		{
			name:   "no name column",
			source: staticSource{table: &Table{Header: []string{ColumnStatus}, Rows: [][]string{{"OK"}}}},
			want:   ErrMalformedTable,
		},
		{
			name:   "no header",
			source: staticSource{table: &Table{}},
			want:   ErrMalformedTable,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			adapter := &GPUAdapter{Source: test.source}
			records, err := adapter.Acquire(context.Background(), &Snapshot{})
			if !errors.Is(err, test.want) {
				t.Errorf("Acquire error = %v, want %v", err, test.want)
			}
			if records != nil {
				t.Errorf("Acquire returned %d records alongside an error", len(records))
			}
		})
	}
}
