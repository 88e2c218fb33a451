package treestore

import "errors"

// Sentinel errors returned by tree and snapshot operations. Every failure
// crossing the public API wraps one of these; nothing panics out of the core.
var (
	// ErrInvalidPath marks a syntactically degenerate path (empty after
	// normalization and not the root sentinel "/") or an out-of-range stop
	// depth.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotFound marks a resolution that failed at some segment.
	ErrNotFound = errors.New("node not found")

	// ErrAlreadyExists marks a create whose target name is already taken
	// among the parent's children.
	ErrAlreadyExists = errors.New("node already exists")

	// ErrSnapshotUnavailable marks a missing snapshot source or an
	// unwritable destination.
	ErrSnapshotUnavailable = errors.New("snapshot unavailable")

	// ErrCorruptSnapshot marks snapshot input that is present but not a
	// valid encoding of a tree.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
