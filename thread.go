package mpsync

import (
	"fmt"
	"sync/atomic"
)

// Thread is an opaque handle to a spawned unit of concurrent execution.
//
// The handle is owned by the spawning code until joined. Join consumes it:
// each handle has exactly one legitimate joiner, and a consumed handle must
// not be joined again.
type Thread struct {
	// done is closed when the entry routine has terminated, normally or by
	// panic.
	done chan struct{}

	// panicked holds the recovered panic value from the entry routine.
	// Written before done is closed; read only after done is observed
	// closed.
	panicked any

	// joined flips once, in the goroutine that wins the right to wait.
	joined atomic.Bool
}

// Spawn starts entry running concurrently with the given argument and
// returns a handle to the new thread of execution.
//
// Entries take a single opaque argument; bundle multiple arguments into a
// struct. The entry's work product is not collected by Join — results travel
// through shared state guarded by a [Mutex] or [RWLock], or another
// out-of-band channel.
//
// A nil entry reports [ErrSpawnFailed] and no handle.
func Spawn(entry func(arg any), arg any) (*Thread, error) {
	if entry == nil {
		return nil, fmt.Errorf("%w: nil entry routine", ErrSpawnFailed)
	}
	t := &Thread{done: make(chan struct{})}
	go func() {
		defer func() {
			t.panicked = recover()
			close(t.done)
		}()
		entry(arg)
	}()
	return t, nil
}

// Done returns a channel that is closed once the thread has terminated. It
// observes completion without the blocking wait of Join and does not consume
// the handle; the thread must still be joined.
func (t *Thread) Done() <-chan struct{} {
	return t.done
}

// Join blocks the calling goroutine until the thread terminates.
//
// A successful Join consumes the handle: joining twice, or joining a nil
// handle, reports [ErrJoinFailed]. A panic in the entry routine also
// surfaces as [ErrJoinFailed] carrying the panic value — the thread
// terminated, but its outcome is not trustworthy.
func (t *Thread) Join() error {
	if t == nil {
		return fmt.Errorf("%w: nil thread handle", ErrJoinFailed)
	}
	if !t.joined.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: thread already joined", ErrJoinFailed)
	}
	<-t.done
	if t.panicked != nil {
		return fmt.Errorf("%w: entry routine panicked: %v", ErrJoinFailed, t.panicked)
	}
	return nil
}

// MultiJoin joins every thread in the list sequentially, regardless of
// individual failures, and returns the first error encountered — annotated
// with its index — once all handles have been waited on.
//
// It never short-circuits: a thread that escapes its join leaks resources on
// some platforms, so completeness wins over early reporting. Errors after
// the first are logged rather than returned; the same failure typically
// repeats, and only one result value exists to carry it.
func MultiJoin(threads ...*Thread) error {
	var first error
	for i, t := range threads {
		err := t.Join()
		if err == nil {
			continue
		}
		if first == nil {
			first = fmt.Errorf("thread %d: %w", i, err)
			continue
		}
		logger().Warn("discarding join failure", "thread", i, "err", err)
	}
	return first
}
