package mpsync

import "runtime"

// Version information for the mpsync primitive layer.
const (
	// Version is the current version of the library.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info describes the primitive layer at runtime.
type Info struct {
	// Version is the library version string.
	Version string

	// Backend names the native family the build targets. The selection is
	// made at build time and is transparent to callers: identical call
	// signatures and semantics on every backend.
	Backend string
}

// GetInfo returns information about the primitive layer.
func GetInfo() Info {
	backend := "posix-like"
	if runtime.GOOS == "windows" {
		backend = "native-windows"
	}
	return Info{
		Version: Version,
		Backend: backend,
	}
}
