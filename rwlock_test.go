package mpsync

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const writeTarget = 100000

// pollUntilWritten drives a single writer to writeTarget under the write
// lock while the caller polls the counter under the read lock. The read lock
// must not be granted mid-write, so the first non-zero observation has to be
// the fully written value.
func pollUntilWritten(t *testing.T, rw *RWLock) {
	t.Helper()

	shared := 0
	writer, err := Spawn(func(any) {
		_ = rw.Lock()
		for shared < writeTarget {
			shared++
		}
		_ = rw.Unlock()
	}, nil)
	require.NoError(t, err)

	observed := 0
	for observed == 0 {
		_ = rw.RLock()
		observed = shared
		_ = rw.RUnlock()
	}
	require.NoError(t, writer.Join())
	require.Equal(t, writeTarget, observed,
		"reader observed a partially written counter")
}

func TestRWLockExplicitInitWriteExclusivity(t *testing.T) {
	var rw RWLock
	require.NoError(t, rw.Init())
	defer func() { require.NoError(t, rw.Destroy()) }()

	pollUntilWritten(t, &rw)
}

func TestRWLockStaticInitWriteExclusivity(t *testing.T) {
	var rw RWLock
	pollUntilWritten(t, &rw)
}

// TestRWLockSharedReaders verifies that read holders really are concurrent:
// all readers must be inside the read-locked region at the same instant
// before any of them releases.
func TestRWLockSharedReaders(t *testing.T) {
	const readers = 4

	var (
		rw     RWLock
		active atomic.Int32
	)
	release := make(chan struct{})

	threads := make([]*Thread, readers)
	for i := range threads {
		th, err := Spawn(func(any) {
			_ = rw.RLock()
			active.Add(1)
			<-release
			_ = rw.RUnlock()
		}, nil)
		require.NoError(t, err)
		threads[i] = th
	}

	deadline := time.Now().Add(5 * time.Second)
	for active.Load() < readers && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	require.EqualValues(t, readers, active.Load(),
		"readers could not hold the lock simultaneously")

	close(release)
	require.NoError(t, MultiJoin(threads...))
}

// TestRWLockWriterExcludesReaders holds the write lock while a reader
// attempts to acquire; the reader must not get through until the writer
// releases.
func TestRWLockWriterExcludesReaders(t *testing.T) {
	var rw RWLock
	require.NoError(t, rw.Init())

	require.NoError(t, rw.Lock())

	var entered atomic.Bool
	reader, err := Spawn(func(any) {
		_ = rw.RLock()
		entered.Store(true)
		_ = rw.RUnlock()
	}, nil)
	require.NoError(t, err)

	// Give the reader ample opportunity to (wrongly) slip through.
	time.Sleep(50 * time.Millisecond)
	require.False(t, entered.Load(), "reader acquired while writer held the lock")

	require.NoError(t, rw.Unlock())
	require.NoError(t, reader.Join())
	require.True(t, entered.Load())
}
