// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// VendorMarker is the substring of a GPU name that routes the row to
// the vendor adapter.
const VendorMarker = "NVIDIA"

// Column names of the video controller inventory table.
const (
	ColumnName                 = "Name"
	ColumnDriverVersion        = "DriverVersion"
	ColumnAdapterRAM           = "AdapterRAM"
	ColumnStatus               = "Status"
	ColumnHorizontalResolution = "CurrentHorizontalResolution"
	ColumnVerticalResolution   = "CurrentVerticalResolution"
)

// GPUAdapter converts a video controller inventory table into GPU
// records.
//
// Rows whose name contains VendorMarker are handed to Vendor instead.
// Vendor is invoked at most once per acquisition, and its records are
// spliced in at the position of the first matching row; later matching
// rows are already covered by that output. If Vendor fails, matching
// rows are converted to generic records like any other.
//
// A structurally broken table fails the whole adapter. Individual
// numeric fields that do not parse become 0.
type GPUAdapter struct {
	Source TableSource

	// Vendor produces VendorGPURecords. Nil disables substitution.
	Vendor Adapter

	// Logger receives field-level degradation at Debug and vendor
	// failures at Warn. Nil discards.
	Logger *slog.Logger
}

type vendorState int

const (
	vendorPending vendorState = iota
	vendorSpliced
	vendorFailed
)

func (a *GPUAdapter) Acquire(ctx context.Context, snapshot *Snapshot) ([]Record, error) {
	if a.Source == nil {
		return nil, errors.New("no device inventory source configured")
	}
	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	table, err := a.Source.Query(ctx)
	if err != nil {
		return nil, err
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	columns := table.Columns()
	if _, ok := columns[ColumnName]; !ok {
		return nil, fmt.Errorf("%w: header has no %s column", ErrMalformedTable, ColumnName)
	}

	field := func(row []string, column string) string {
		index, ok := columns[column]
		if !ok {
			return ""
		}
		return row[index]
	}
	number := func(row []string, column string) uint64 {
		raw := field(row, column)
		if raw == "" {
			return 0
		}
		value, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			logger.Debug("unparseable GPU field, using 0",
				"column", column,
				"value", raw,
			)
			return 0
		}
		return value
	}

	var records []Record
	vendor := vendorPending
	if a.Vendor == nil {
		vendor = vendorFailed
	}
	for _, row := range table.Rows {
		name := field(row, ColumnName)
		if strings.Contains(name, VendorMarker) {
			switch vendor {
			case vendorSpliced:
				continue
			case vendorPending:
				vendorRecords, err := a.Vendor.Acquire(ctx, snapshot)
				if err == nil {
					vendor = vendorSpliced
					records = append(records, vendorRecords...)
					continue
				}
				vendor = vendorFailed
				logger.Warn("vendor GPU acquisition failed, reporting generic GPU records",
					"gpu", name,
					"error", err,
				)
			}
		}
		records = append(records, GPURecord{
			Name:                 name,
			DriverVersion:        field(row, ColumnDriverVersion),
			AdapterRAM:           number(row, ColumnAdapterRAM),
			Status:               field(row, ColumnStatus),
			HorizontalResolution: uint32(min(number(row, ColumnHorizontalResolution), 1<<32-1)),
			VerticalResolution:   uint32(min(number(row, ColumnVerticalResolution), 1<<32-1)),
		})
	}
	return records, nil
}
