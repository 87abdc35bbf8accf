package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrStorageUnavailable indicates the knowledge store could not be
	// opened, read or written. It is the only true error condition the
	// system surfaces to users; a miss is never an error.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
