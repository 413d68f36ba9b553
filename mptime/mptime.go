// Package mptime provides millisecond sleep and high resolution milli- and
// microsecond timestamps, backed by the best time source each platform
// offers.
//
// Timestamps count from an unspecified epoch: they are valid only for
// elapsed-time comparison, never for calendar time. The source is resolved
// once per process — a monotonic source when available, a realtime source as
// fallback — and is not re-evaluated afterwards.
//
// The platform backend is selected at build time:
//
//   - Linux: clock_gettime(CLOCK_MONOTONIC), falling back to CLOCK_REALTIME,
//     and nanosleep for the millisecond sleep.
//   - Windows: the performance counter, with its frequency queried once and
//     cached, and SleepEx for the millisecond sleep.
//   - Everything else: the time package, whose readings carry a monotonic
//     component on all supported platforms.
//
// Counters are 64-bit, so the wrap horizon is beyond process lifetimes; the
// elapsed helpers still subtract modularly, keeping the contract correct
// across a wrap.
package mptime

const (
	nanosPerMicro  = 1_000
	nanosPerMilli  = 1_000_000
	nanosPerSecond = 1_000_000_000
)

// Milliseconds returns a high resolution timestamp in milliseconds since an
// unspecified starting point.
func Milliseconds() uint64 {
	return nowNanos() / nanosPerMilli
}

// Microseconds returns a high resolution timestamp in microseconds since an
// unspecified starting point.
func Microseconds() uint64 {
	return nowNanos() / nanosPerMicro
}

// MilliElapsed measures elapsed milliseconds since a previous [Milliseconds]
// stamp.
func MilliElapsed(start uint64) uint64 {
	return Milliseconds() - start
}

// MicroElapsed measures elapsed microseconds since a previous [Microseconds]
// stamp.
func MicroElapsed(start uint64) uint64 {
	return Microseconds() - start
}

// MilliSleep suspends the calling goroutine for at least ms milliseconds.
//
// On the Linux backend the sleep is interruptible: a signal delivered to the
// sleeping thread may cut it short. Callers that must sleep the full
// duration loop externally using [MilliElapsed]; the package does not retry
// on their behalf.
func MilliSleep(ms uint64) {
	sleepMillis(ms)
}

// ClockSource reports which time source timestamps are drawn from. The
// answer is fixed for the life of the process.
func ClockSource() string {
	return clockSource()
}
