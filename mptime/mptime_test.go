package mptime

import (
	"testing"
	"time"
)

// TestTimestampsNondecreasing samples both stamp resolutions in a tight loop;
// the chosen source must never run backwards.
func TestTimestampsNondecreasing(t *testing.T) {
	prevMs := Milliseconds()
	prevUs := Microseconds()
	for i := 0; i < 10000; i++ {
		ms := Milliseconds()
		us := Microseconds()
		if ms < prevMs {
			t.Fatalf("Milliseconds went backwards: %d after %d", ms, prevMs)
		}
		if us < prevUs {
			t.Fatalf("Microseconds went backwards: %d after %d", us, prevUs)
		}
		prevMs, prevUs = ms, us
	}
}

// TestResolutionsAgree cross-checks the two stamp resolutions against each
// other; they read the same source, so they may differ only by the time
// between the two calls.
func TestResolutionsAgree(t *testing.T) {
	ms := Milliseconds()
	us := Microseconds()
	if d := int64(us/1000) - int64(ms); d < 0 || d > 5 {
		t.Errorf("Microseconds/1000 = %d, Milliseconds = %d, drift %dms", us/1000, ms, d)
	}
}

// TestMilliSleepDurations checks that sleep never returns early and that the
// average overshoot stays within a deliberately loose bound — timing under
// load is expected to wobble, and hard failure is reserved for gross
// inaccuracy.
func TestMilliSleepDurations(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test skipped in short mode")
	}

	durations := []uint64{1, 2, 4, 8, 16, 32}
	var overshoot uint64
	for _, d := range durations {
		start := Microseconds()
		MilliSleep(d)
		elapsed := MicroElapsed(start)
		want := d * 1000
		if elapsed < want {
			t.Errorf("MilliSleep(%d) returned after %dus, want at least %dus", d, elapsed, want)
			continue
		}
		overshoot += elapsed - want
	}

	if avg := overshoot / uint64(len(durations)); avg > 50_000 {
		t.Errorf("average sleep overshoot %dus, want under 50ms", avg)
	}
}

// TestElapsedAgreesWithWallClock measures one real wait with both elapsed
// helpers and the time package; all three must describe the same interval
// within a loose tolerance.
func TestElapsedAgreesWithWallClock(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test skipped in short mode")
	}

	mstart := Milliseconds()
	ustart := Microseconds()
	wall := time.Now()

	time.Sleep(500 * time.Millisecond)

	wallUs := uint64(time.Since(wall).Microseconds())
	gotMs := MilliElapsed(mstart)
	gotUs := MicroElapsed(ustart)

	if diff := absDiff(gotMs*1000, wallUs); diff > 50_000 {
		t.Errorf("MilliElapsed = %dms, wall clock = %dus, diff %dus", gotMs, wallUs, diff)
	}
	if diff := absDiff(gotUs, wallUs); diff > 50_000 {
		t.Errorf("MicroElapsed = %dus, wall clock = %dus, diff %dus", gotUs, wallUs, diff)
	}
}

// TestClockSourceFixed verifies the once-per-process source choice: the
// answer is stable and names a real source.
func TestClockSourceFixed(t *testing.T) {
	first := ClockSource()
	if first == "" {
		t.Fatal("ClockSource returned an empty name")
	}
	for i := 0; i < 100; i++ {
		if got := ClockSource(); got != first {
			t.Fatalf("ClockSource changed from %q to %q", first, got)
		}
	}
	t.Logf("clock source: %s", first)
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
