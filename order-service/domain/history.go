package domain

import (
	"time"

	"github.com/evermart/order-system/shared/models"
	"github.com/evermart/order-system/shared/saga"
)

// TransitionRecord is one append-only row of a saga's transition history.
// Records are never updated or deleted; they are written in the same
// transaction as the state change they describe.
type TransitionRecord struct {
	ID             int64
	CorrelationID  models.ID
	PreviousState  saga.State
	CurrentState   saga.State
	Description    string
	TransitionedAt time.Time
}

func NewTransitionRecord(correlationID models.ID, previous, current saga.State, description string) *TransitionRecord {
	return &TransitionRecord{
		CorrelationID:  correlationID,
		PreviousState:  previous,
		CurrentState:   current,
		Description:    description,
		TransitionedAt: time.Now().UTC(),
	}
}
