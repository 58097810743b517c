// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

package system

import "github.com/shirou/gopsutil/v3/cpu"

// cpuReading is cumulative CPU time split into busy and idle seconds.
//
// busy = user + nice + system + irq + softirq + steal
// idle = idle + iowait
//
// guest and guest_nice are already included in user and nice, so they
// are not added separately.
type cpuReading struct {
	busy float64
	idle float64
}

func readingOf(times cpu.TimesStat) cpuReading {
	return cpuReading{
		busy: times.User + times.Nice + times.System + times.Irq + times.Softirq + times.Steal,
		idle: times.Idle + times.Iowait,
	}
}

// usagePercent computes utilization from two sequential readings.
// Returns 0 if no time has passed or the counters went backwards.
func usagePercent(previous, current cpuReading) float64 {
	busyDelta := current.busy - previous.busy
	idleDelta := current.idle - previous.idle
	if busyDelta < 0 || idleDelta < 0 {
		return 0
	}
	totalDelta := busyDelta + idleDelta
	if totalDelta == 0 {
		return 0
	}
	return busyDelta / totalDelta * 100
}
