package domain

import "github.com/pkg/errors"

var (
	// ErrNoSuchWorkflow means a non-initial event arrived with no matching
	// saga instance. The event is discarded; redelivery may resolve it if
	// the initial event was merely delayed.
	ErrNoSuchWorkflow = errors.New("no workflow instance for correlation id")

	// ErrIllegalTransition means the event kind is valid but the saga is not
	// in the state that transition requires: a duplicate or out-of-order
	// delivery. The event is discarded without mutating state.
	ErrIllegalTransition = errors.New("duplicate or out-of-order event")

	// ErrConcurrencyConflict means the version-checked write was rejected
	// because another writer advanced the saga first. The transition must be
	// retried from a fresh read.
	ErrConcurrencyConflict = errors.New("saga version conflict")
)
