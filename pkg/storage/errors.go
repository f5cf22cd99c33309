package storage

import "errors"

// Common errors returned by ledger implementations.
var (
	// ErrNotFound is returned when a referenced credit or person id does not
	// exist in the ledger.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition is returned when a status change is requested that
	// the credit state machine does not allow, e.g. assigning a credit that
	// is not available or reverting one that is not assigned.
	ErrInvalidTransition = errors.New("invalid status transition")
)
