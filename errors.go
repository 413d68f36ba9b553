package mpsync

import "errors"

// Error taxonomy for the primitive layer. Every operation reports failure
// synchronously through one of these sentinels, possibly wrapped with detail.
// Nothing is swallowed, nothing fails asynchronously, and no operation
// retries internally.
var (
	// ErrSpawnFailed reports that a thread could not be started. No handle
	// accompanies it. Callers should treat it as fatal to the operation
	// attempted, not to the process.
	ErrSpawnFailed = errors.New("mpsync: spawn failed")

	// ErrJoinFailed reports that a join did not complete cleanly: the handle
	// was nil or already consumed, or the entry routine panicked. The
	// thread's outcome is unknown to the caller and should be logged rather
	// than ignored.
	ErrJoinFailed = errors.New("mpsync: join failed")

	// ErrResourceExhausted reports lock construction or destruction failure
	// on platforms where those can fail. It is fatal to the primitive's
	// further use. Unreachable on the current backends, but part of the
	// contract and must stay representable.
	ErrResourceExhausted = errors.New("mpsync: lock resources exhausted")

	// ErrLockFailed is reserved for platforms where acquisition can fail.
	// Unreachable on the supported backends.
	ErrLockFailed = errors.New("mpsync: lock failed")

	// ErrUnlockFailed is reserved for platforms where release can fail.
	// Unreachable on the supported backends.
	ErrUnlockFailed = errors.New("mpsync: unlock failed")
)
