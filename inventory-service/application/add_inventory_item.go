package application

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/evermart/order-system/inventory-service/domain"
	"github.com/evermart/order-system/shared/events"
)

// AddInventoryItem use case creates a stock entry when a product is
// created. Duplicate deliveries find the existing entry and are discarded.
type AddInventoryItem struct {
	inventoryRepository domain.InventoryRepository
	eventPublisher      events.Publisher
	logger              *zap.Logger
}

// NewAddInventoryItem creates a new AddInventoryItem use case
func NewAddInventoryItem(
	inventoryRepository domain.InventoryRepository,
	eventPublisher events.Publisher,
	logger *zap.Logger,
) *AddInventoryItem {
	return &AddInventoryItem{
		inventoryRepository: inventoryRepository,
		eventPublisher:      eventPublisher,
		logger:              logger,
	}
}

// Execute adds the product to inventory if it is not tracked yet
func (uc *AddInventoryItem) Execute(ctx context.Context, data events.ProductCreatedData) error {
	existing, err := uc.inventoryRepository.FindByProductID(ctx, data.ProductID)
	if err != nil {
		return errors.Wrap(err, "failed to check inventory")
	}
	if existing != nil {
		uc.logger.Warn("discarding duplicate product.created event",
			zap.Int64("product_id", data.ProductID))
		return nil
	}

	item, err := domain.NewInventoryItem(data.ProductID, data.Name, data.Quantity)
	if err != nil {
		return errors.Wrap(err, "invalid inventory item")
	}

	if err := uc.inventoryRepository.Save(ctx, item); err != nil {
		return errors.Wrap(err, "failed to save inventory item")
	}

	if err := uc.eventPublisher.Publish(ctx, item.Events()...); err != nil {
		return errors.Wrap(err, "failed to publish inventory events")
	}
	item.ClearEvents()

	uc.logger.Info("inventory item added",
		zap.String("item_id", item.ID.String()),
		zap.Int64("product_id", item.ProductID),
		zap.Int("quantity", item.Quantity))

	return nil
}
