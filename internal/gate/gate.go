// Package gate implements the compare-and-swap spinlock that guards one-time
// initialization of lazily constructed primitives.
//
// A lock that supports static (zero value) declaration cannot protect its own
// first-time construction: until construction completes there is nothing safe
// to lock. The gate is the dedicated guard for that window. It is deliberately
// a separate concept from the primitive it initializes — reusing a field of
// the primitive as both guard and payload is the classic bug this package
// exists to avoid.
//
// Usage pattern:
//
//	var ready atomic.Bool
//	var g gate.Gate
//
//	err := g.Do(&ready, func() error {
//		// construct the primitive; runs at most once per ready flag
//		return nil
//	})
//
// Exactly one caller runs the construction function; every other concurrent
// caller spins until the gate is free, at which point the ready flag is set
// and the primitive is safe to use.
package gate

import (
	"runtime"
	"sync/atomic"
)

// Gate is a spinlock built on a single CAS word.
//
// The zero value is an open gate, ready for use. A Gate must not be copied
// after first use.
type Gate struct {
	// state is 0 while the gate is free and 1 while a goroutine holds it.
	state atomic.Uint32
}

// Acquire claims the gate, spinning until it is free.
//
// The critical section behind Acquire must be short and must never block:
// every concurrent Acquire burns CPU until the matching Release. Gosched is
// called on each failed claim so a spinning goroutine cannot starve the
// holder of its processor.
func (g *Gate) Acquire() {
	for !g.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

// Release opens the gate. Calling Release without holding the gate corrupts
// it; the gate does not track ownership.
func (g *Gate) Release() {
	g.state.Store(0)
}

// Do runs fn at most once per ready flag, race-free under concurrent first
// use.
//
// The algorithm is the deferred-initialization guard: claim the gate with a
// CAS, re-check the flag (another caller may have completed while this one
// waited), run fn if the flag is still unset, set the flag, release the gate.
// Callers that lose the claim spin in Acquire until the winner releases, and
// then observe the flag already set.
//
// If fn reports an error the flag stays unset and the error is returned; a
// later Do will attempt construction again. The flag is set only after fn
// succeeds, so a reader that observes it true also observes everything fn
// wrote.
func (g *Gate) Do(ready *atomic.Bool, fn func() error) error {
	if ready.Load() {
		return nil
	}
	g.Acquire()
	defer g.Release()
	if ready.Load() {
		return nil
	}
	if err := fn(); err != nil {
		return err
	}
	ready.Store(true)
	return nil
}
