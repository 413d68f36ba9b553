// Copyright 2025 The mpsync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

// Windows clock backend: the performance counter scaled by its boot-time
// frequency, SleepEx for the millisecond sleep.

package mptime

import (
	"sync/atomic"

	"golang.org/x/sys/windows"
)

// perfFreq caches the performance counter frequency, which is fixed at boot.
// Zero means not yet queried; racing first callers store the same value, so
// no gate is needed.
var perfFreq atomic.Int64

func frequency() int64 {
	if f := perfFreq.Load(); f != 0 {
		return f
	}
	f := windows.QueryPerformanceFrequency()
	perfFreq.Store(f)
	return f
}

// nowNanos converts the performance counter to nanoseconds. The whole-second
// part is scaled separately from the remainder so the multiplication cannot
// overflow at realistic counter frequencies.
func nowNanos() uint64 {
	count := windows.QueryPerformanceCounter()
	freq := frequency()
	return uint64(count/freq)*nanosPerSecond +
		uint64(count%freq)*nanosPerSecond/uint64(freq)
}

// sleepMillis suspends the calling thread. The sleep is non-alertable: no
// user APC cuts it short, matching the plain Sleep semantics.
func sleepMillis(ms uint64) {
	//nolint:gosec // G115: sleep durations beyond uint32 milliseconds are nonsensical.
	windows.SleepEx(uint32(ms), false)
}

func clockSource() string {
	return "performance counter"
}
