package domain

// Resolution is the correlator's verdict for an inbound event.
type Resolution int

const (
	// ResolutionAttach routes the event to the existing instance.
	ResolutionAttach Resolution = iota
	// ResolutionCreate starts a new instance for an initial event.
	ResolutionCreate
)

// ResolveCorrelation decides how an inbound event maps onto saga
// instances. Only the initial event kind may create an instance; any
// other kind without an existing instance is a discard.
func ResolveCorrelation(existing *OrderSaga, kind EventKind) (Resolution, error) {
	if existing != nil {
		return ResolutionAttach, nil
	}
	if kind == KindProductCreated {
		return ResolutionCreate, nil
	}
	return 0, ErrNoSuchWorkflow
}
