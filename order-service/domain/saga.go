package domain

import (
	"time"

	"github.com/pkg/errors"

	"github.com/evermart/order-system/shared/events"
	"github.com/evermart/order-system/shared/models"
	"github.com/evermart/order-system/shared/saga"
)

// EventKind identifies which of the three saga-driving events is being
// applied. Values match the event topics on the wire.
type EventKind string

const (
	KindProductCreated          EventKind = events.ProductCreatedEvent
	KindInventoryCheckRequested EventKind = events.InventoryCheckRequestedEvent
	KindInventoryCheckCompleted EventKind = events.InventoryCheckCompletedEvent
)

// transitions is the complete legal-transition table. Any (state, kind)
// pair absent from it is a duplicate or out-of-order delivery and the
// event is discarded.
var transitions = map[saga.State]map[EventKind]saga.State{
	saga.StateInitial: {
		KindProductCreated: saga.StateWaitingForInventoryCheckRequest,
	},
	saga.StateWaitingForInventoryCheckRequest: {
		KindInventoryCheckRequested: saga.StateInventoryCheckRequested,
	},
	saga.StateInventoryCheckRequested: {
		KindInventoryCheckCompleted: saga.StateCompleted,
	},
}

// NextState resolves the legal-transition table for one step. The second
// return value reports whether the transition is legal at all.
func NextState(current saga.State, kind EventKind) (saga.State, bool) {
	next, ok := transitions[current][kind]
	return next, ok
}

// OrderSaga is the durable workflow instance tracking one product's order
// process from creation through inventory check to completion. All fields
// besides the state pair and Version are written exactly once, by the
// transition that carries them.
type OrderSaga struct {
	CorrelationID models.ID
	CurrentState  saga.State
	PreviousState saga.State

	ProductID       int64
	ProductName     string
	ProductQuantity int
	Price           models.Money
	IsQualityGood   bool

	ProductCreatedAt          time.Time
	InventoryCheckRequestedAt time.Time
	InventoryCheckCompletedAt time.Time

	Version models.Version

	uncommittedEvents []*events.Event
}

// StartOrderProcess creates a new saga instance from the initial
// product.created event and records the outbound inventory check request.
func StartOrderProcess(data events.ProductCreatedData) (*OrderSaga, *TransitionRecord, error) {
	if data.CorrelationID.IsEmpty() {
		return nil, nil, errors.New("correlation id is required")
	}
	if data.ProductID <= 0 {
		return nil, nil, errors.New("product id is required")
	}

	s := &OrderSaga{
		CorrelationID:    data.CorrelationID,
		CurrentState:     saga.StateInitial,
		PreviousState:    saga.StateInitial,
		ProductID:        data.ProductID,
		ProductName:      data.Name,
		ProductQuantity:  data.Quantity,
		Price:            data.Price,
		ProductCreatedAt: data.CreatedAt,
		Version:          models.NewVersion(),
	}

	record, err := s.transition(KindProductCreated, "ProductCreated event processed")
	if err != nil {
		return nil, nil, err
	}

	s.recordEvent(events.InventoryCheckRequestedEvent, events.InventoryCheckRequestedData{
		CorrelationID: s.CorrelationID,
		ProductID:     s.ProductID,
		Quantity:      s.ProductQuantity,
		Price:         s.Price,
		CreatedAt:     time.Now().UTC(),
	})

	return s, record, nil
}

// ApplyInventoryCheckRequested advances the saga when the inventory check
// request comes back around through the bus.
func (s *OrderSaga) ApplyInventoryCheckRequested(data events.InventoryCheckRequestedData) (*TransitionRecord, error) {
	if data.CorrelationID != s.CorrelationID {
		return nil, errors.New("correlation id mismatch")
	}

	record, err := s.transition(KindInventoryCheckRequested, "InventoryCheckRequest event processed")
	if err != nil {
		return nil, err
	}
	s.InventoryCheckRequestedAt = data.CreatedAt

	return record, nil
}

// ApplyInventoryCheckCompleted finishes the saga with the inventory
// service's verdict.
func (s *OrderSaga) ApplyInventoryCheckCompleted(data events.InventoryCheckCompletedData) (*TransitionRecord, error) {
	if data.CorrelationID != s.CorrelationID {
		return nil, errors.New("correlation id mismatch")
	}

	record, err := s.transition(KindInventoryCheckCompleted, "InventoryCheckCompleted event processed")
	if err != nil {
		return nil, err
	}
	s.IsQualityGood = data.IsQualityGood
	s.InventoryCheckCompletedAt = data.CompletedAt

	return record, nil
}

func (s *OrderSaga) transition(kind EventKind, description string) (*TransitionRecord, error) {
	next, ok := NextState(s.CurrentState, kind)
	if !ok {
		return nil, errors.Wrapf(ErrIllegalTransition,
			"event %s in state %s for correlation %s", kind, s.CurrentState, s.CorrelationID)
	}

	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.Version = s.Version.Update()

	return NewTransitionRecord(s.CorrelationID, s.PreviousState, s.CurrentState, description), nil
}

// Snapshot exposes the state pair consumed by consistency-wait pollers.
func (s *OrderSaga) Snapshot() *saga.Snapshot {
	return &saga.Snapshot{
		CorrelationID: s.CorrelationID,
		PreviousState: s.PreviousState,
		CurrentState:  s.CurrentState,
	}
}

func (s *OrderSaga) recordEvent(eventType string, payload any) {
	event := events.NewEvent(s.CorrelationID, eventType, payload).WithCorrelationID(s.CorrelationID)
	s.uncommittedEvents = append(s.uncommittedEvents, event)
}

// Events returns the outbound events recorded by the last transition.
// They must be published only after the transition is committed.
func (s *OrderSaga) Events() []*events.Event {
	return s.uncommittedEvents
}

func (s *OrderSaga) ClearEvents() {
	s.uncommittedEvents = nil
}
