package domain

import (
	"context"

	"github.com/evermart/order-system/shared/models"
)

// SagaRepository persists saga instances with optimistic concurrency.
// Create and SaveTransition write the saga row and its transition record
// in a single transaction.
type SagaRepository interface {
	// FindByCorrelationID returns (nil, nil) when no instance exists.
	FindByCorrelationID(ctx context.Context, correlationID models.ID) (*OrderSaga, error)
	// Create inserts a new instance. A concurrent create of the same
	// correlation id returns ErrConcurrencyConflict.
	Create(ctx context.Context, saga *OrderSaga, record *TransitionRecord) error
	// SaveTransition updates the instance checking the version the saga
	// was read at. A stale version returns ErrConcurrencyConflict.
	SaveTransition(ctx context.Context, saga *OrderSaga, record *TransitionRecord) error
}

// HistoryRepository reads the append-only transition history.
type HistoryRepository interface {
	ListByCorrelationID(ctx context.Context, correlationID models.ID) ([]*TransitionRecord, error)
}
