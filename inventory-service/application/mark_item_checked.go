package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/evermart/order-system/inventory-service/domain"
	"github.com/evermart/order-system/shared/events"
	"github.com/evermart/order-system/shared/saga"
)

const (
	// awaitAttempts and awaitInitialDelay bound the consistency wait on the
	// saga's terminal state before the item is marked checked.
	awaitAttempts     = 5
	awaitInitialDelay = 200 * time.Millisecond
)

// MarkItemChecked use case confirms an inventory check once the order
// process has visibly completed. The saga write and the verdict event
// race, so the use case waits for the terminal state pair before
// touching the item.
type MarkItemChecked struct {
	inventoryRepository domain.InventoryRepository
	eventPublisher      events.Publisher
	waiter              *saga.Waiter
	logger              *zap.Logger
}

// NewMarkItemChecked creates a new MarkItemChecked use case
func NewMarkItemChecked(
	inventoryRepository domain.InventoryRepository,
	eventPublisher events.Publisher,
	waiter *saga.Waiter,
	logger *zap.Logger,
) *MarkItemChecked {
	return &MarkItemChecked{
		inventoryRepository: inventoryRepository,
		eventPublisher:      eventPublisher,
		waiter:              waiter,
		logger:              logger,
	}
}

// Execute waits for the saga to reach its terminal state and marks the
// item checked. If the state is not yet visible the message is returned
// to the queue for redelivery.
func (uc *MarkItemChecked) Execute(ctx context.Context, data events.InventoryCheckCompletedData) error {
	if data.CorrelationID.IsEmpty() {
		return errors.New("correlation id is required")
	}

	reached, err := uc.waiter.AwaitState(ctx, data.CorrelationID,
		saga.StateInventoryCheckRequested, saga.StateCompleted,
		awaitAttempts, awaitInitialDelay)
	if err != nil {
		return errors.Wrap(err, "failed to await saga completion")
	}
	if !reached {
		return errors.Errorf("saga %s has not completed yet", data.CorrelationID)
	}

	item, err := uc.inventoryRepository.FindByProductID(ctx, data.ProductID)
	if err != nil {
		return errors.Wrap(err, "failed to find inventory item")
	}
	if item == nil {
		uc.logger.Warn("discarding check confirmation for unknown item",
			zap.String("correlation_id", data.CorrelationID.String()),
			zap.Int64("product_id", data.ProductID))
		return nil
	}

	if err := item.MarkChecked(); err != nil {
		// Already checked: a duplicate delivery.
		uc.logger.Warn("discarding duplicate check confirmation",
			zap.String("item_id", item.ID.String()),
			zap.Int64("product_id", item.ProductID))
		return nil
	}

	if err := uc.inventoryRepository.Save(ctx, item); err != nil {
		return errors.Wrap(err, "failed to save inventory item")
	}

	if err := uc.eventPublisher.Publish(ctx, item.Events()...); err != nil {
		return errors.Wrap(err, "failed to publish inventory events")
	}
	item.ClearEvents()

	uc.logger.Info("inventory item marked checked",
		zap.String("item_id", item.ID.String()),
		zap.Int64("product_id", item.ProductID))

	return nil
}
