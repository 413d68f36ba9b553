package mpsync

import (
	"log/slog"
	"sync/atomic"
)

// pkgLogger overrides the process-default logger when set. The only thing
// this library ever logs is a join failure whose error value MultiJoin has
// to discard; primitives on a hot path must stay silent otherwise.
var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for discarded join failures. Passing
// nil restores slog.Default. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
