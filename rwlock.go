package mpsync

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/kolkov/mpsync/internal/gate"
)

// maxReaders bounds the number of concurrent read holders. Writers acquire
// the full weight, so the constant is the writer's acquisition size as much
// as a reader cap.
const maxReaders = 1 << 30

// RWLock is a shared-read, exclusive-write lock with the same dual lifecycle
// as [Mutex]: explicit Init/Destroy, or a zero value whose first acquisition
// initializes it exactly once through the init gate. Both backends support
// the static form, so the deferred path is uniform rather than a per-platform
// capability.
//
// Any number of goroutines may hold the lock in read mode simultaneously;
// at most one holds it in write mode, and never while a reader holds it.
// Waiters queue in FIFO order, so a waiting writer is not starved by a
// stream of new readers — which also means read acquisition is not
// reentrant: a second RLock on the same goroutine can deadlock behind a
// waiting writer. Upgrading a held read lock to a write lock deadlocks.
//
// An RWLock must not be copied after first use.
type RWLock struct {
	initGate gate.Gate
	ready    atomic.Bool

	// sem holds maxReaders units. Readers take one unit each; a writer
	// takes all of them, which excludes readers and other writers alike.
	sem *semaphore.Weighted
}

func (l *RWLock) construct() error {
	l.sem = semaphore.NewWeighted(maxReaders)
	return nil
}

// Init performs first-time setup of the lock resources. Calling Init twice
// without an intervening Destroy is undefined.
func (l *RWLock) Init() error {
	if err := l.construct(); err != nil {
		return err
	}
	l.ready.Store(true)
	return nil
}

// RLock blocks until the lock is held in read mode: it waits for any writer
// to release, then proceeds alongside other readers.
func (l *RWLock) RLock() error {
	if err := l.initGate.Do(&l.ready, l.construct); err != nil {
		return err
	}
	_ = l.sem.Acquire(context.Background(), 1)
	return nil
}

// RUnlock releases one read hold. The caller must hold the lock in read
// mode; releasing otherwise is undefined.
func (l *RWLock) RUnlock() error {
	l.sem.Release(1)
	return nil
}

// Lock blocks until the lock is held in write mode: no reader and no other
// writer holds it.
func (l *RWLock) Lock() error {
	if err := l.initGate.Do(&l.ready, l.construct); err != nil {
		return err
	}
	_ = l.sem.Acquire(context.Background(), maxReaders)
	return nil
}

// Unlock releases the write hold. The caller must hold the lock in write
// mode; releasing otherwise is undefined.
func (l *RWLock) Unlock() error {
	l.sem.Release(maxReaders)
	return nil
}

// Destroy releases the lock resources and resets the initialization flag,
// exactly as [Mutex.Destroy] does. Destroying a held RWLock is undefined.
func (l *RWLock) Destroy() error {
	l.initGate.Acquire()
	l.sem = nil
	l.ready.Store(false)
	l.initGate.Release()
	return nil
}
