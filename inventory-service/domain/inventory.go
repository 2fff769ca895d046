package domain

import (
	"context"

	"github.com/pkg/errors"

	"github.com/evermart/order-system/shared/events"
	"github.com/evermart/order-system/shared/models"
)

// InventoryItem tracks stock for one catalog product. IsChecked flips
// once the item's order process has completed and the check has been
// confirmed against the saga state.
type InventoryItem struct {
	ID         models.ID
	ProductID  int64
	Name       string
	Quantity   int
	IsChecked  bool
	Timestamps models.Timestamps

	uncommittedEvents []*events.Event
}

// NewInventoryItem creates a stock entry for a product
func NewInventoryItem(productID int64, name string, quantity int) (*InventoryItem, error) {
	if productID <= 0 {
		return nil, errors.New("product id must be positive")
	}
	if name == "" {
		return nil, errors.New("product name is required")
	}
	if quantity < 0 {
		return nil, errors.New("quantity cannot be negative")
	}

	item := &InventoryItem{
		ID:         models.GenerateUUID(),
		ProductID:  productID,
		Name:       name,
		Quantity:   quantity,
		Timestamps: models.NewTimestamps(),
	}

	item.recordEvent(events.InventoryItemAddedEvent, map[string]interface{}{
		"item_id":    item.ID.String(),
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	return item, nil
}

// CheckAvailability reports whether the requested quantity can be served
// from stock. This is the verdict carried by inventory.check.completed.
func (i *InventoryItem) CheckAvailability(quantity int) bool {
	return quantity > 0 && i.Quantity >= quantity
}

// MarkChecked records that the item's order process completed and the
// inventory check was confirmed
func (i *InventoryItem) MarkChecked() error {
	if i.IsChecked {
		return errors.New("inventory item already checked")
	}

	i.IsChecked = true
	i.Timestamps = i.Timestamps.Update()

	i.recordEvent(events.InventoryItemCheckMarkedEvent, map[string]interface{}{
		"item_id":    i.ID.String(),
		"product_id": i.ProductID,
	})

	return nil
}

func (i *InventoryItem) recordEvent(eventType string, payload interface{}) {
	i.uncommittedEvents = append(i.uncommittedEvents,
		events.NewEvent(i.ID, eventType, payload))
}

func (i *InventoryItem) Events() []*events.Event {
	return i.uncommittedEvents
}

func (i *InventoryItem) ClearEvents() {
	i.uncommittedEvents = nil
}

// InventoryRepository persists inventory items
type InventoryRepository interface {
	Save(ctx context.Context, item *InventoryItem) error
	// FindByProductID returns (nil, nil) when no item exists for the product.
	FindByProductID(ctx context.Context, productID int64) (*InventoryItem, error)
	List(ctx context.Context) ([]*InventoryItem, error)
}
