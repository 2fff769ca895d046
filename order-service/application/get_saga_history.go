package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/models"
)

// GetSagaHistory use case reads a saga's transition history
type GetSagaHistory struct {
	historyRepository domain.HistoryRepository
}

// NewGetSagaHistory creates a new GetSagaHistory use case
func NewGetSagaHistory(historyRepository domain.HistoryRepository) *GetSagaHistory {
	return &GetSagaHistory{historyRepository: historyRepository}
}

// Execute returns the transition records in the order they happened
func (uc *GetSagaHistory) Execute(ctx context.Context, correlationID models.ID) ([]*domain.TransitionRecord, error) {
	if correlationID.IsEmpty() {
		return nil, errors.New("correlation id is required")
	}

	records, err := uc.historyRepository.ListByCorrelationID(ctx, correlationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saga history")
	}

	return records, nil
}
