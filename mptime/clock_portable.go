// Copyright 2025 The mpsync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !windows

// Portable clock backend for every other GOOS. time.Now readings carry a
// monotonic component on all supported platforms, so Since is immune to wall
// clock steps.

package mptime

import "time"

// epoch anchors the portable backend; timestamps count from process start.
var epoch = time.Now()

func nowNanos() uint64 {
	return uint64(time.Since(epoch))
}

func sleepMillis(ms uint64) {
	//nolint:gosec // G115: sleep durations beyond int64 nanoseconds are nonsensical.
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func clockSource() string {
	return "time package"
}
