// Package mpsync provides OS-independent concurrency primitives: spawn/join
// thread handles, mutual exclusion locks, and shared-read exclusive-write
// locks, exposing one uniform contract regardless of the native threading
// model underneath.
//
// The API follows the pthreads shape — explicit init, lock, unlock, destroy —
// extended with the static lifecycle Windows-style primitives need: a lock
// declared as a zero value is safe to use directly, and its first acquisition
// performs exactly-once, race-free construction.
//
// # Lock lifecycles
//
// Every lock supports two lifecycles:
//
//   - Explicit: call [Mutex.Init] (or [RWLock.Init]) before first use and
//     [Mutex.Destroy] after last use. Lock and Unlock are undefined before
//     Init.
//   - Static/deferred: declare the zero value and lock it directly. The first
//     Lock observes the unset initialization flag and constructs the lock
//     atomically with respect to all other concurrent first-use calls.
//
// The deferred path is guarded by a dedicated CAS gate distinct from the
// lock itself (see internal/gate); the lock's own primitive is not safe to
// use until construction completes.
//
// # Threads
//
// [Spawn] starts an entry routine concurrently and returns a [Thread] handle.
// [Thread.Join] blocks until termination and consumes the handle; [MultiJoin]
// joins a whole list without short-circuiting on failure, so no thread ever
// escapes being waited on. Entry routines take a single opaque argument;
// bundle multiple arguments into a struct. Join reports completion only —
// results travel through shared state guarded by a [Mutex] or [RWLock].
//
//	counter := 0
//	var mu mpsync.Mutex
//	th, err := mpsync.Spawn(func(arg any) {
//		mu.Lock()
//		counter += arg.(int)
//		mu.Unlock()
//	}, 42)
//	if err != nil {
//		// ErrSpawnFailed: abort the feature, not the process
//	}
//	if err := th.Join(); err != nil {
//		// ErrJoinFailed: the thread's outcome is unknown; log it
//	}
//
// # Memory visibility
//
// Unlock followed by a subsequent successful Lock by another goroutine
// establishes a happens-before relationship over any memory the unlocking
// goroutine wrote while holding the lock. This is the sole visibility
// mechanism the package provides; there is no separate atomic or fence API.
//
// No operation supports cancellation or timeout. A blocked Lock or Join
// unblocks only through the corresponding Unlock or thread exit; timeout
// wrappers must be layered externally.
//
// High resolution timestamps and millisecond sleep live in the companion
// package mptime.
package mpsync
