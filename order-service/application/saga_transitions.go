package application

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/models"
	"github.com/evermart/order-system/shared/telemetry"
)

// applyTransition runs the shared read-apply-save loop for non-initial
// saga events. Discard conditions (no instance, duplicate, out-of-order)
// log a warning and return nil so the message is acknowledged; losing an
// optimistic-concurrency race re-reads and re-resolves the event against
// fresh state.
func applyTransition(
	ctx context.Context,
	repo domain.SagaRepository,
	logger *zap.Logger,
	correlationID models.ID,
	kind domain.EventKind,
	apply func(*domain.OrderSaga) (*domain.TransitionRecord, error),
) error {
	if correlationID.IsEmpty() {
		return errors.New("correlation id is required")
	}

	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		instance, err := repo.FindByCorrelationID(ctx, correlationID)
		if err != nil {
			return errors.Wrap(err, "failed to find saga")
		}

		if _, err := domain.ResolveCorrelation(instance, kind); err != nil {
			logger.Warn("discarding event without workflow instance",
				zap.String("correlation_id", correlationID.String()),
				zap.String("event_kind", string(kind)))
			recordSagaIgnored(ctx, kind, "no_instance")
			return nil
		}

		record, err := apply(instance)
		if errors.Is(err, domain.ErrIllegalTransition) {
			logger.Warn("discarding duplicate or out-of-order event",
				zap.String("correlation_id", correlationID.String()),
				zap.String("event_kind", string(kind)),
				zap.String("current_state", instance.CurrentState.String()))
			recordSagaIgnored(ctx, kind, "illegal_transition")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to apply transition")
		}

		err = repo.SaveTransition(ctx, instance, record)
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			logger.Warn("saga transition conflict, retrying",
				zap.String("correlation_id", correlationID.String()),
				zap.String("event_kind", string(kind)),
				zap.Int("attempt", attempt+1))
			telemetry.RecordCounter(ctx, "saga_version_conflicts_total", "Optimistic-lock conflicts on saga transitions", 1,
				attribute.String("event_kind", string(kind)))
			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to save transition")
		}

		logger.Info("saga transition applied",
			zap.String("correlation_id", correlationID.String()),
			zap.String("previous_state", instance.PreviousState.String()),
			zap.String("current_state", instance.CurrentState.String()))
		telemetry.RecordCounter(ctx, "saga_transitions_total", "Accepted saga state transitions", 1,
			attribute.String("event_kind", string(kind)),
			attribute.String("to_state", instance.CurrentState.String()))
		return nil
	}

	return errors.Wrapf(domain.ErrConcurrencyConflict,
		"gave up applying %s to saga %s after %d attempts", kind, correlationID, maxConflictRetries)
}

func recordSagaIgnored(ctx context.Context, kind domain.EventKind, reason string) {
	telemetry.RecordCounter(ctx, "saga_events_ignored_total", "Saga events discarded as duplicate, out-of-order, or uncorrelated", 1,
		attribute.String("event_kind", string(kind)),
		attribute.String("reason", reason))
}
