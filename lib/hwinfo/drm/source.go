// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package drm builds the video controller inventory table from the
// Linux DRM subsystem. Each card device under /sys/class/drm becomes
// one row with the same columns the Windows WMIC query produces, so
// the generic GPU adapter treats both platforms alike.
//
// Names come from /proc/driver/nvidia/gpus/<slot>/information when the
// proprietary NVIDIA driver is loaded, from the amdgpu product_name
// attribute when present, and otherwise from the PCI vendor and device
// ID. Resolution is the preferred mode of the card's first connected
// connector.
package drm

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/unifetch/unifetch/lib/hwinfo"
)

// Header is the column order of tables produced by Source.
var Header = []string{
	hwinfo.ColumnAdapterRAM,
	hwinfo.ColumnHorizontalResolution,
	hwinfo.ColumnVerticalResolution,
	hwinfo.ColumnDriverVersion,
	hwinfo.ColumnName,
	hwinfo.ColumnStatus,
}

// Source implements hwinfo.TableSource over sysfs and procfs.
type Source struct {
	// sysRoot is the root of the sysfs filesystem. Defaults to "/sys"
	// in production; overridden in tests with synthetic filesystems.
	sysRoot string

	// procRoot is the root of the proc filesystem.
	procRoot string
}

// NewSource creates a Source that reads from the real /sys and /proc.
func NewSource() *Source {
	return &Source{sysRoot: "/sys", procRoot: "/proc"}
}

func newSourceFrom(sysRoot, procRoot string) *Source {
	return &Source{sysRoot: sysRoot, procRoot: procRoot}
}

// Query returns one row per DRM card device. A system without a DRM
// class directory yields a table with a header and no rows.
func (s *Source) Query(ctx context.Context) (*hwinfo.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table := &hwinfo.Table{Header: Header}
	drmBase := filepath.Join(s.sysRoot, "class/drm")
	entries, err := os.ReadDir(drmBase)
	if err != nil {
		return table, nil
	}

	for _, entry := range entries {
		card := entry.Name()
		if !isCardDevice(card) {
			continue
		}
		devicePath := filepath.Join(drmBase, card, "device")
		driver := readDriverName(devicePath)
		identity := parsePCIUevent(devicePath)
		horizontal, vertical := s.resolution(drmBase, card)

		table.Rows = append(table.Rows, []string{
			strconv.FormatUint(readSysfsUint64(filepath.Join(devicePath, "mem_info_vram_total")), 10),
			strconv.FormatUint(uint64(horizontal), 10),
			strconv.FormatUint(uint64(vertical), 10),
			s.driverVersion(driver),
			s.deviceName(devicePath, driver, identity),
			deviceStatus(devicePath, driver),
		})
	}
	return table, nil
}

func (s *Source) deviceName(devicePath, driver string, identity pciIdentity) string {
	if driver == "nvidia" && identity.Slot != "" {
		model := readKeyValue(filepath.Join(s.procRoot, "driver/nvidia/gpus", identity.Slot, "information"), "Model")
		if model != "" {
			return model
		}
	}
	if product := readSysfsString(filepath.Join(devicePath, "product_name")); product != "" {
		return product
	}
	name := strings.TrimSpace(identity.Vendor + " " + identity.DeviceID)
	if name == "" {
		return "Unknown"
	}
	return name
}

// driverVersion returns the loaded driver's version. The proprietary
// NVIDIA driver reports it in /proc/driver/nvidia/version:
//
//	NVRM version: NVIDIA UNIX x86_64 Kernel Module  550.54.14  Thu Feb 22 01:44:30 UTC 2024
//
// Out-of-tree modules expose /sys/module/<driver>/version. In-tree
// drivers have no version of their own, so the driver name is used.
func (s *Source) driverVersion(driver string) string {
	if driver == "" {
		return ""
	}
	if driver == "nvidia" {
		line := readSysfsString(filepath.Join(s.procRoot, "driver/nvidia/version"))
		if _, rest, found := strings.Cut(line, "Kernel Module"); found {
			if fields := strings.Fields(rest); len(fields) > 0 {
				return fields[0]
			}
		}
	}
	if version := readSysfsString(filepath.Join(s.sysRoot, "module", driver, "version")); version != "" {
		return version
	}
	return driver
}

func deviceStatus(devicePath, driver string) string {
	if readSysfsString(filepath.Join(devicePath, "enable")) == "0" {
		return "Disabled"
	}
	if driver == "" {
		return "No driver"
	}
	return "OK"
}

// resolution returns the preferred mode of the first connected
// connector belonging to card, or 0x0.
func (s *Source) resolution(drmBase, card string) (horizontal, vertical uint32) {
	entries, err := os.ReadDir(drmBase)
	if err != nil {
		return 0, 0
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), card+"-") {
			continue
		}
		connector := filepath.Join(drmBase, entry.Name())
		if readSysfsString(filepath.Join(connector, "status")) != "connected" {
			continue
		}
		modes := readSysfsString(filepath.Join(connector, "modes"))
		first, _, _ := strings.Cut(modes, "\n")
		width, height, found := strings.Cut(strings.TrimSpace(first), "x")
		if !found {
			continue
		}
		h, errH := strconv.ParseUint(width, 10, 32)
		v, errV := strconv.ParseUint(strings.TrimRightFunc(height, isNotDigit), 10, 32)
		if errH != nil || errV != nil {
			continue
		}
		return uint32(h), uint32(v)
	}
	return 0, 0
}

// isNotDigit strips interlace suffixes such as the "i" in "1920x1080i".
func isNotDigit(r rune) bool { return r < '0' || r > '9' }
