package handlers

import (
	"context"

	"github.com/pkg/errors"

	"github.com/evermart/order-system/order-service/application"
	"github.com/evermart/order-system/shared/events"
)

// OrderEventHandlers routes saga-driving events to their use cases
type OrderEventHandlers struct {
	processProductCreated          *application.ProcessProductCreated
	processInventoryCheckRequested *application.ProcessInventoryCheckRequested
	processInventoryCheckCompleted *application.ProcessInventoryCheckCompleted
}

// NewOrderEventHandlers creates new order event handlers
func NewOrderEventHandlers(
	processProductCreated *application.ProcessProductCreated,
	processInventoryCheckRequested *application.ProcessInventoryCheckRequested,
	processInventoryCheckCompleted *application.ProcessInventoryCheckCompleted,
) *OrderEventHandlers {
	return &OrderEventHandlers{
		processProductCreated:          processProductCreated,
		processInventoryCheckRequested: processInventoryCheckRequested,
		processInventoryCheckCompleted: processInventoryCheckCompleted,
	}
}

// Handle implements the events.EventHandler interface
func (h *OrderEventHandlers) Handle(ctx context.Context, event *events.Event) error {
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
func (h *OrderEventHandlers) HandlerID() string {
	return "order-service-event-handler"
}

// HandleProductCreated starts a saga instance for a created product
func (h *OrderEventHandlers) HandleProductCreated(ctx context.Context, event *events.Event) error {
	var data events.ProductCreatedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse product created data")
	}

	return h.processProductCreated.Execute(ctx, data)
}

// HandleInventoryCheckRequested advances the saga past the inventory request
func (h *OrderEventHandlers) HandleInventoryCheckRequested(ctx context.Context, event *events.Event) error {
	var data events.InventoryCheckRequestedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse inventory check requested data")
	}

	return h.processInventoryCheckRequested.Execute(ctx, data)
}

// HandleInventoryCheckCompleted completes the saga
func (h *OrderEventHandlers) HandleInventoryCheckCompleted(ctx context.Context, event *events.Event) error {
	var data events.InventoryCheckCompletedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse inventory check completed data")
	}

	return h.processInventoryCheckCompleted.Execute(ctx, data)
}
