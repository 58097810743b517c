// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"fmt"
	"strings"
)

// Category identifies the class of hardware or OS information a record
// describes. The string values appear in machine-readable output.
type Category string

const (
	CategoryCPU       Category = "cpu"
	CategoryGPU       Category = "gpu"
	CategoryVendorGPU Category = "vendor_gpu"
	CategoryDisk      Category = "disk"
	CategoryMemory    Category = "memory"
	CategoryOS        Category = "os"
)

// DefaultCategories is the order in which the aggregator requests
// categories. Vendor GPU records are produced by the GPU category, so
// CategoryVendorGPU is not listed.
var DefaultCategories = []Category{
	CategoryCPU,
	CategoryGPU,
	CategoryDisk,
	CategoryMemory,
	CategoryOS,
}

// Categories lists every category, including CategoryVendorGPU.
var Categories = []Category{
	CategoryCPU,
	CategoryGPU,
	CategoryVendorGPU,
	CategoryDisk,
	CategoryMemory,
	CategoryOS,
}

// ParseCategory parses a category name. Matching is case-insensitive
// and accepts "-" for "_".
func ParseCategory(name string) (Category, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, category := range Categories {
		if string(category) == normalized {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

// Label returns the human-readable label that prefixes a rendered
// record of this category.
func (c Category) Label() string {
	switch c {
	case CategoryCPU:
		return "CPU"
	case CategoryGPU:
		return "GPU"
	case CategoryVendorGPU:
		return "Nvidia GPU"
	case CategoryDisk:
		return "Disk"
	case CategoryMemory:
		return "Memory"
	case CategoryOS:
		return "OS"
	default:
		return string(c)
	}
}

// Record is one immutable snapshot of a hardware or OS component.
// Every record type in this package implements it.
type Record interface {
	// Category returns the category this record belongs to.
	Category() Category

	// Block returns the structured form of the record at the given
	// tier. Presentation layers that style labels and keys work from
	// the block rather than re-parsing Render output.
	Block(tier Tier) Block

	// Render returns the record as text at the given tier. Rendering
	// never fails.
	Render(tier Tier) string
}
