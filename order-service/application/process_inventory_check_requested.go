package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/events"
)

// ProcessInventoryCheckRequested use case advances a saga instance when
// the inventory check request event comes back through the bus
type ProcessInventoryCheckRequested struct {
	sagaRepository domain.SagaRepository
	logger         *zap.Logger
}

// NewProcessInventoryCheckRequested creates a new ProcessInventoryCheckRequested use case
func NewProcessInventoryCheckRequested(
	sagaRepository domain.SagaRepository,
	logger *zap.Logger,
) *ProcessInventoryCheckRequested {
	return &ProcessInventoryCheckRequested{
		sagaRepository: sagaRepository,
		logger:         logger,
	}
}

// Execute applies the inventory.check.requested transition. Duplicates,
// out-of-order deliveries and events without an instance are discarded
// with a warning and a nil error, so the message is acknowledged.
func (uc *ProcessInventoryCheckRequested) Execute(ctx context.Context, data events.InventoryCheckRequestedData) error {
	return applyTransition(ctx, uc.sagaRepository, uc.logger,
		data.CorrelationID, domain.KindInventoryCheckRequested,
		func(s *domain.OrderSaga) (*domain.TransitionRecord, error) {
			return s.ApplyInventoryCheckRequested(data)
		})
}
