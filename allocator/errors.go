package allocator

import "errors"

var (
	// ErrConfiguration is returned by New when the managed range is unusable.
	ErrConfiguration = errors.New("allocator: bad configuration")

	// ErrInvalidArgument is returned for zero-size requests.
	ErrInvalidArgument = errors.New("allocator: invalid argument")

	// ErrOutOfSpace means no gap can hold the request right now.
	ErrOutOfSpace = errors.New("allocator: out of space")

	// ErrNotFound is returned by Free when no block starts at the given address.
	ErrNotFound = errors.New("allocator: block not found")

	// ErrCorrupted is returned by Validate when the live set breaks an
	// invariant.
	ErrCorrupted = errors.New("allocator: corrupted block list")
)
