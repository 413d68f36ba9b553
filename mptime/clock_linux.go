// Copyright 2025 The mpsync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

// Linux clock backend: clock_gettime with a monotonic source resolved once
// per process, nanosleep for the millisecond sleep.

package mptime

import (
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// clockID caches the clock source chosen for the process. The stored value
// is the clock id plus one, so the zero value means "not yet resolved".
// Racing first callers may both probe, but they store the same answer, so no
// gate is needed.
var clockID atomic.Int32

// clockid resolves and returns the process clock source: CLOCK_MONOTONIC
// when the first query succeeds, CLOCK_REALTIME otherwise. The choice is
// made once and never re-evaluated.
func clockid() int32 {
	if v := clockID.Load(); v != 0 {
		return v - 1
	}
	var ts unix.Timespec
	id := int32(unix.CLOCK_MONOTONIC)
	if err := unix.ClockGettime(id, &ts); err != nil {
		id = unix.CLOCK_REALTIME
	}
	clockID.Store(id + 1)
	return id
}

func nowNanos() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockid(), &ts); err != nil {
		// The realtime clock is always readable and the monotonic clock was
		// probed before being chosen. Unreachable.
		return 0
	}
	return uint64(ts.Sec)*nanosPerSecond + uint64(ts.Nsec)
}

// sleepMillis suspends the calling thread via nanosleep. A signal interrupts
// the sleep and it returns early; looping on the remaining time until the
// full duration has elapsed is the caller's policy, not this backend's.
func sleepMillis(ms uint64) {
	//nolint:gosec // G115: sleep durations beyond int64 nanoseconds are nonsensical.
	ts := unix.NsecToTimespec(int64(ms) * nanosPerMilli)
	_ = unix.Nanosleep(&ts, &ts)
}

func clockSource() string {
	if clockid() == int32(unix.CLOCK_MONOTONIC) {
		return "monotonic"
	}
	return "realtime"
}
