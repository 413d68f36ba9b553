package mpsync

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/kolkov/mpsync/internal/gate"
)

// Mutex is an exclusive lock with an explicit lifecycle.
//
// The zero value is the static form: it is safe to Lock directly, and the
// first Lock performs exactly-once initialization, race-free against all
// other concurrent first-use Lock calls. Explicitly managed locks call
// [Mutex.Init] before first use and [Mutex.Destroy] after last use; Lock and
// Unlock on an explicitly managed Mutex are undefined before Init.
//
// At most one goroutine holds the lock at any instant. The lock is not
// reentrant: a holder that locks again deadlocks. A Mutex must not be copied
// after first use.
type Mutex struct {
	// initGate guards lazy construction. The semaphore cannot protect its
	// own construction, so first use goes through this dedicated CAS gate.
	initGate gate.Gate

	// ready is the initialization-state flag. Set only after sem is fully
	// constructed; observing it true makes sem safe to read.
	ready atomic.Bool

	// sem is the exclusive lock primitive: a weight-1 semaphore. Written
	// only with the gate held and ready unset.
	sem *semaphore.Weighted
}

// construct builds the underlying lock primitive. Never fails on this
// backend; the error return preserves the ErrResourceExhausted path for
// backends where construction can fail.
func (m *Mutex) construct() error {
	m.sem = semaphore.NewWeighted(1)
	return nil
}

// Init performs first-time setup of the lock resources and marks the Mutex
// initialized. Calling Init twice without an intervening Destroy is
// undefined.
func (m *Mutex) Init() error {
	if err := m.construct(); err != nil {
		return err
	}
	m.ready.Store(true)
	return nil
}

// Lock blocks the calling goroutine until it holds the lock exclusively.
// After a nil return the lock is held; Lock never succeeds with the lock
// unheld.
//
// On a zero-value Mutex the first Lock initializes the lock through the init
// gate before acquiring it. Initialization happens at most once, observably
// before any Lock or Unlock call returns.
func (m *Mutex) Lock() error {
	if err := m.initGate.Do(&m.ready, m.construct); err != nil {
		return err
	}
	// No cancellation or timeout exists on this operation, so the acquire
	// cannot fail.
	_ = m.sem.Acquire(context.Background(), 1)
	return nil
}

// Unlock releases the lock. The caller must currently hold it; releasing an
// unheld Mutex is undefined (the current backend panics).
func (m *Mutex) Unlock() error {
	m.sem.Release(1)
	return nil
}

// Destroy releases the lock resources and resets the initialization flag.
// The Mutex may be locked again only after Init or through the zero-value
// first-Lock path. Destroying a held Mutex is undefined.
func (m *Mutex) Destroy() error {
	m.initGate.Acquire()
	m.sem = nil
	m.ready.Store(false)
	m.initGate.Release()
	return nil
}
