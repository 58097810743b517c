// Copyright 2026 The Unifetch Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// Code that waits or timestamps takes a [Clock] instead of calling
// time.Now or time.After directly. Production code passes [Real]; tests
// pass [Fake], whose time moves only when Advance is called:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	go sampler.Sample(ctx)         // blocks in fake.After
//	fake.WaitForTimers(1)          // until the wait is registered
//	fake.Advance(time.Second)      // fires it deterministically
package clock
