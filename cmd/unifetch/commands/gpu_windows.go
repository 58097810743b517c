// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package commands

import (
	"github.com/unifetch/unifetch/lib/hwinfo"
	"github.com/unifetch/unifetch/lib/hwinfo/wmic"
)

func gpuSource() hwinfo.TableSource { return wmic.NewSource() }
