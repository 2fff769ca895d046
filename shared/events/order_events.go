package events

import (
	"time"

	"github.com/evermart/order-system/shared/models"
)

// Payload contracts for the order-process workflow. The correlation ID is
// always assigned by the producer of product.created and must be carried
// unchanged by every later event of the same workflow instance.

// ProductCreatedData is the payload of product.created, the initial event of
// the order process
type ProductCreatedData struct {
	CorrelationID models.ID    `json:"correlation_id"`
	ProductID     int64        `json:"product_id"`
	Name          string       `json:"name"`
	Quantity      int          `json:"quantity"`
	Price         models.Money `json:"price"`
	CreatedAt     time.Time    `json:"created_at"`
}

// InventoryCheckRequestedData is the payload of inventory.check.requested
type InventoryCheckRequestedData struct {
	CorrelationID models.ID    `json:"correlation_id"`
	ProductID     int64        `json:"product_id"`
	Quantity      int          `json:"quantity"`
	Price         models.Money `json:"price"`
	CreatedAt     time.Time    `json:"created_at"`
}

// InventoryCheckCompletedData is the payload of inventory.check.completed
type InventoryCheckCompletedData struct {
	CorrelationID   models.ID `json:"correlation_id"`
	ProductID       int64     `json:"product_id"`
	InventoryItemID string    `json:"inventory_item_id"`
	IsQualityGood   bool      `json:"is_quality_good"`
	CompletedAt     time.Time `json:"completed_at"`
}
