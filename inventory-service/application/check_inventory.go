package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/evermart/order-system/inventory-service/domain"
	"github.com/evermart/order-system/shared/events"
	"github.com/evermart/order-system/shared/models"
)

// CheckInventory use case answers an inventory check request with a
// verdict event
type CheckInventory struct {
	inventoryRepository domain.InventoryRepository
	eventPublisher      events.Publisher
	logger              *zap.Logger
}

// NewCheckInventory creates a new CheckInventory use case
func NewCheckInventory(
	inventoryRepository domain.InventoryRepository,
	eventPublisher events.Publisher,
	logger *zap.Logger,
) *CheckInventory {
	return &CheckInventory{
		inventoryRepository: inventoryRepository,
		eventPublisher:      eventPublisher,
		logger:              logger,
	}
}

// Execute checks stock for the requested product and publishes
// inventory.check.completed with the verdict. A missing item is a
// negative verdict, not an error.
func (uc *CheckInventory) Execute(ctx context.Context, data events.InventoryCheckRequestedData) error {
	if data.CorrelationID.IsEmpty() {
		return errors.New("correlation id is required")
	}

	item, err := uc.inventoryRepository.FindByProductID(ctx, data.ProductID)
	if err != nil {
		return errors.Wrap(err, "failed to find inventory item")
	}

	verdict := false
	var itemID models.ID
	if item != nil {
		verdict = item.CheckAvailability(data.Quantity)
		itemID = item.ID
	}

	completed := events.NewEvent(data.CorrelationID, events.InventoryCheckCompletedEvent,
		events.InventoryCheckCompletedData{
			CorrelationID:   data.CorrelationID,
			ProductID:       data.ProductID,
			InventoryItemID: itemID.String(),
			IsQualityGood:   verdict,
			CompletedAt:     time.Now().UTC(),
		}).WithCorrelationID(data.CorrelationID)

	if err := uc.eventPublisher.Publish(ctx, completed); err != nil {
		return errors.Wrap(err, "failed to publish inventory check verdict")
	}

	uc.logger.Info("inventory check completed",
		zap.String("correlation_id", data.CorrelationID.String()),
		zap.Int64("product_id", data.ProductID),
		zap.Bool("is_quality_good", verdict))

	return nil
}
