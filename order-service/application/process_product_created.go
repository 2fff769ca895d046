package application

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/events"
	"github.com/evermart/order-system/shared/telemetry"
)

// maxConflictRetries bounds how many times a saga use case re-reads and
// retries after losing an optimistic-concurrency race. Every retry
// re-resolves the transition against fresh state, so a lost race that
// turns the event into a duplicate resolves to a clean discard.
const maxConflictRetries = 3

// ProcessProductCreated use case starts a new saga instance for an
// inbound product.created event
type ProcessProductCreated struct {
	sagaRepository domain.SagaRepository
	eventPublisher events.Publisher
	logger         *zap.Logger
}

// NewProcessProductCreated creates a new ProcessProductCreated use case
func NewProcessProductCreated(
	sagaRepository domain.SagaRepository,
	eventPublisher events.Publisher,
	logger *zap.Logger,
) *ProcessProductCreated {
	return &ProcessProductCreated{
		sagaRepository: sagaRepository,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Execute creates the saga instance and requests the inventory check.
// Duplicate deliveries are discarded with a warning and a nil error, so
// the message is acknowledged.
func (uc *ProcessProductCreated) Execute(ctx context.Context, data events.ProductCreatedData) error {
	if data.CorrelationID.IsEmpty() {
		return errors.New("correlation id is required")
	}

	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		existing, err := uc.sagaRepository.FindByCorrelationID(ctx, data.CorrelationID)
		if err != nil {
			return errors.Wrap(err, "failed to find saga")
		}

		resolution, err := domain.ResolveCorrelation(existing, domain.KindProductCreated)
		if err != nil {
			return errors.Wrap(err, "failed to resolve correlation")
		}
		if resolution == domain.ResolutionAttach {
			// The instance already exists: this delivery is a duplicate.
			uc.logger.Warn("discarding duplicate product.created event",
				zap.String("correlation_id", data.CorrelationID.String()),
				zap.String("current_state", existing.CurrentState.String()))
			recordSagaIgnored(ctx, domain.KindProductCreated, "duplicate_create")
			return nil
		}

		instance, record, err := domain.StartOrderProcess(data)
		if err != nil {
			return errors.Wrap(err, "failed to start order process")
		}

		err = uc.sagaRepository.Create(ctx, instance, record)
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			// Lost the create race; re-read and let correlation
			// resolution classify the event again.
			uc.logger.Warn("saga create conflict, retrying",
				zap.String("correlation_id", data.CorrelationID.String()),
				zap.Int("attempt", attempt+1))
			telemetry.RecordCounter(ctx, "saga_version_conflicts_total", "Optimistic-lock conflicts on saga transitions", 1,
				attribute.String("event_kind", string(domain.KindProductCreated)))
			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to create saga")
		}

		if err := uc.eventPublisher.Publish(ctx, instance.Events()...); err != nil {
			return errors.Wrap(err, "failed to publish saga events")
		}
		instance.ClearEvents()

		uc.logger.Info("order process started",
			zap.String("correlation_id", instance.CorrelationID.String()),
			zap.String("current_state", instance.CurrentState.String()))
		telemetry.RecordCounter(ctx, "saga_transitions_total", "Accepted saga state transitions", 1,
			attribute.String("event_kind", string(domain.KindProductCreated)),
			attribute.String("to_state", instance.CurrentState.String()))
		return nil
	}

	return errors.Wrapf(domain.ErrConcurrencyConflict,
		"gave up creating saga %s after %d attempts", data.CorrelationID, maxConflictRetries)
}
