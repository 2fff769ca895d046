package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/evermart/order-system/inventory-service/domain"
)

// GetInventory use case reads inventory items
type GetInventory struct {
	inventoryRepository domain.InventoryRepository
}

// NewGetInventory creates a new GetInventory use case
func NewGetInventory(inventoryRepository domain.InventoryRepository) *GetInventory {
	return &GetInventory{inventoryRepository: inventoryRepository}
}

// List returns all inventory items
func (uc *GetInventory) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	items, err := uc.inventoryRepository.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}
	return items, nil
}

// ByProductID returns the item for a product, or (nil, nil) when none exists
func (uc *GetInventory) ByProductID(ctx context.Context, productID int64) (*domain.InventoryItem, error) {
	if productID <= 0 {
		return nil, errors.New("product id must be positive")
	}

	item, err := uc.inventoryRepository.FindByProductID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inventory item")
	}
	return item, nil
}
