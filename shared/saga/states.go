package saga

import "github.com/evermart/order-system/shared/models"

// State is one of the closed set of order-process saga states. StateInitial
// is the implicit start state: an instance is only materialized by the first
// accepted transition, so a stored saga is never observed in StateInitial as
// its current state.
type State string

const (
	StateInitial                         State = "Initial"
	StateWaitingForInventoryCheckRequest State = "WaitingForInventoryCheckRequest"
	StateInventoryCheckRequested         State = "InventoryCheckRequestedState"
	StateCompleted                       State = "Completed"
)

// IsValid reports whether s is a member of the closed state set
func (s State) IsValid() bool {
	switch s {
	case StateInitial, StateWaitingForInventoryCheckRequest, StateInventoryCheckRequested, StateCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no transition out of s is legal
func (s State) IsTerminal() bool {
	return s == StateCompleted
}

func (s State) String() string {
	return string(s)
}

// Snapshot is a read-only view of a saga instance's state pair, served by the
// order-service read path to consumers in other processes
type Snapshot struct {
	CorrelationID models.ID `json:"correlation_id"`
	PreviousState State     `json:"previous_state"`
	CurrentState  State     `json:"current_state"`
}
