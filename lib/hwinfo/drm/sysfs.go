// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package drm

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// isCardDevice returns true for DRM card device names (card0, card1, ...)
// but not connectors (card0-DP-1) or render nodes (renderD128).
func isCardDevice(name string) bool {
	suffix, ok := strings.CutPrefix(name, "card")
	if !ok || suffix == "" {
		return false
	}
	for _, character := range suffix {
		if character < '0' || character > '9' {
			return false
		}
	}
	return true
}

// readDriverName returns the kernel driver bound to a PCI device: the
// basename of the device's "driver" symlink.
func readDriverName(devicePath string) string {
	link, err := os.Readlink(filepath.Join(devicePath, "driver"))
	if err != nil {
		return ""
	}
	return filepath.Base(link)
}

// pciIdentity is the PCI identity of a device as read from uevent.
type pciIdentity struct {
	Vendor   string // "AMD", "NVIDIA", "Intel", or "0x<id>"
	DeviceID string // "0x744a"
	Slot     string // "0000:c3:00.0"
}

// parsePCIUevent reads the device's uevent file, which contains lines
// like:
//
//	PCI_ID=1002:744A
//	PCI_SLOT_NAME=0000:c3:00.0
func parsePCIUevent(devicePath string) pciIdentity {
	data, err := os.ReadFile(filepath.Join(devicePath, "uevent"))
	if err != nil {
		return pciIdentity{}
	}

	var identity pciIdentity
	var rawVendorID string
	for _, line := range strings.Split(string(data), "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		switch key {
		case "PCI_ID":
			vendorID, deviceID, ok := strings.Cut(value, ":")
			if ok {
				rawVendorID = strings.ToLower(vendorID)
				identity.DeviceID = "0x" + strings.ToLower(deviceID)
			}
		case "PCI_SLOT_NAME":
			identity.Slot = value
		}
	}
	identity.Vendor = pciVendorName(rawVendorID)
	return identity
}

func pciVendorName(vendorID string) string {
	switch vendorID {
	case "1002":
		return "AMD"
	case "10de":
		return "NVIDIA"
	case "8086":
		return "Intel"
	case "":
		return ""
	default:
		return fmt.Sprintf("0x%s", vendorID)
	}
}

// readSysfsString reads a single-line sysfs file and returns its
// trimmed content. Returns "" on any error.
func readSysfsString(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// readSysfsUint64 reads an unsigned integer from a sysfs file. Returns
// 0 on error.
func readSysfsUint64(path string) uint64 {
	value, err := strconv.ParseUint(readSysfsString(path), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// readKeyValue reads a "Key: value" file such as
// /proc/driver/nvidia/gpus/<slot>/information and returns the value
// for key, or "".
func readKeyValue(path, key string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		name, value, found := strings.Cut(line, ":")
		if found && strings.TrimSpace(name) == key {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
