package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/models"
)

// GetSagaState use case reads a saga instance by correlation ID
type GetSagaState struct {
	sagaRepository domain.SagaRepository
}

// NewGetSagaState creates a new GetSagaState use case
func NewGetSagaState(sagaRepository domain.SagaRepository) *GetSagaState {
	return &GetSagaState{sagaRepository: sagaRepository}
}

// Execute returns the saga instance, or (nil, nil) when none exists
func (uc *GetSagaState) Execute(ctx context.Context, correlationID models.ID) (*domain.OrderSaga, error) {
	if correlationID.IsEmpty() {
		return nil, errors.New("correlation id is required")
	}

	instance, err := uc.sagaRepository.FindByCorrelationID(ctx, correlationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find saga")
	}

	return instance, nil
}
