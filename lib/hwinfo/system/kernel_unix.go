// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux || darwin || freebsd || netbsd || openbsd

package system

import "golang.org/x/sys/unix"

// kernelVersion returns "<sysname> <release>" from uname(2), e.g.
// "Linux 6.8.0-45-generic". Returns "" if uname fails.
func kernelVersion() string {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return ""
	}
	return join(unix.ByteSliceToString(utsname.Sysname[:]), unix.ByteSliceToString(utsname.Release[:]))
}
