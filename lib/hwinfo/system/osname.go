// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package system

import (
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LongOSVersion formats host info as a single human-readable OS
// description, e.g. "Linux Ubuntu 24.04", "Windows 11 Pro", or
// "macOS 14.4.1". Returns "" when info carries nothing usable.
func LongOSVersion(info *host.InfoStat) string {
	title := cases.Title(language.Und)
	switch info.OS {
	case "windows":
		return strings.TrimSpace(strings.TrimPrefix(info.Platform, "Microsoft "))
	case "darwin":
		return join("macOS", info.PlatformVersion)
	case "linux":
		if info.Platform == "" {
			return ""
		}
		return join("Linux", title.String(info.Platform), info.PlatformVersion)
	default:
		if info.OS == "" {
			return ""
		}
		return join(title.String(info.OS), info.PlatformVersion)
	}
}

func join(parts ...string) string {
	var nonEmpty []string
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}
