package handlers

import (
	"context"

	"github.com/pkg/errors"

	"github.com/evermart/order-system/inventory-service/application"
	"github.com/evermart/order-system/shared/events"
)

// InventoryEventHandlers routes order-process events to their use cases
type InventoryEventHandlers struct {
	addInventoryItem *application.AddInventoryItem
	checkInventory   *application.CheckInventory
	markItemChecked  *application.MarkItemChecked
}

// NewInventoryEventHandlers creates new inventory event handlers
func NewInventoryEventHandlers(
	addInventoryItem *application.AddInventoryItem,
	checkInventory *application.CheckInventory,
	markItemChecked *application.MarkItemChecked,
) *InventoryEventHandlers {
	return &InventoryEventHandlers{
		addInventoryItem: addInventoryItem,
		checkInventory:   checkInventory,
		markItemChecked:  markItemChecked,
	}
}

// Handle implements the events.EventHandler interface
func (h *InventoryEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.ProductCreatedEvent:
		return h.HandleProductCreated(ctx, event)
	case events.InventoryCheckRequestedEvent:
		return h.HandleInventoryCheckRequested(ctx, event)
	case events.InventoryCheckCompletedEvent:
		return h.HandleInventoryCheckCompleted(ctx, event)
	default:
		// Unknown event type, ignore
		return nil
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *InventoryEventHandlers) HandlerID() string {
	return "inventory-service-event-handler"
}

// HandleProductCreated adds the new product to inventory
func (h *InventoryEventHandlers) HandleProductCreated(ctx context.Context, event *events.Event) error {
	var data events.ProductCreatedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse product created data")
	}

	return h.addInventoryItem.Execute(ctx, data)
}

// HandleInventoryCheckRequested answers the check request with a verdict
func (h *InventoryEventHandlers) HandleInventoryCheckRequested(ctx context.Context, event *events.Event) error {
	var data events.InventoryCheckRequestedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse inventory check requested data")
	}

	return h.checkInventory.Execute(ctx, data)
}

// HandleInventoryCheckCompleted confirms the check once the saga completes
func (h *InventoryEventHandlers) HandleInventoryCheckCompleted(ctx context.Context, event *events.Event) error {
	var data events.InventoryCheckCompletedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse inventory check completed data")
	}

	return h.markItemChecked.Execute(ctx, data)
}
