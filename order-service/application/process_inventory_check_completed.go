package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/events"
)

// ProcessInventoryCheckCompleted use case completes a saga instance with
// the inventory service's verdict
type ProcessInventoryCheckCompleted struct {
	sagaRepository domain.SagaRepository
	logger         *zap.Logger
}

// NewProcessInventoryCheckCompleted creates a new ProcessInventoryCheckCompleted use case
func NewProcessInventoryCheckCompleted(
	sagaRepository domain.SagaRepository,
	logger *zap.Logger,
) *ProcessInventoryCheckCompleted {
	return &ProcessInventoryCheckCompleted{
		sagaRepository: sagaRepository,
		logger:         logger,
	}
}

// Execute applies the inventory.check.completed transition, moving the
// saga to its terminal state. Discard conditions are acknowledged with a
// warning.
func (uc *ProcessInventoryCheckCompleted) Execute(ctx context.Context, data events.InventoryCheckCompletedData) error {
	return applyTransition(ctx, uc.sagaRepository, uc.logger,
		data.CorrelationID, domain.KindInventoryCheckCompleted,
		func(s *domain.OrderSaga) (*domain.TransitionRecord, error) {
			return s.ApplyInventoryCheckCompleted(data)
		})
}
