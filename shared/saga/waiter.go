package saga

import (
	"context"
	"time"

	"github.com/evermart/order-system/shared/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DelayIncrement is added to the poll delay after every attempt, giving the
// bounded linear backoff schedule consumers rely on.
const DelayIncrement = 200 * time.Millisecond

// StateReader resolves the currently visible state pair of a saga instance.
// A nil snapshot with nil error means the instance is not (yet) visible.
type StateReader interface {
	GetState(ctx context.Context, correlationID models.ID) (*Snapshot, error)
}

// Waiter blocks a consumer until a saga instance has visibly reached an
// expected (previous, current) state pair. It exists because a consumer for
// step N may be scheduled before step N-1's write is visible to its read
// path; polling the pair distinguishes "not yet advanced" from "advanced
// through this exact edge".
type Waiter struct {
	reader StateReader
	logger *zap.Logger
}

// NewWaiter creates a Waiter polling the given read path
func NewWaiter(reader StateReader, logger *zap.Logger) *Waiter {
	return &Waiter{
		reader: reader,
		logger: logger,
	}
}

// AwaitState polls until the stored pair equals (expectedPrevious,
// expectedCurrent), for at most maxAttempts attempts starting at initialDelay
// between polls, each attempt adding DelayIncrement. It returns true as soon
// as the pair matches and false once attempts are exhausted; exhaustion is
// not an error, the caller must simply not proceed. Context cancellation
// aborts immediately and is returned as the error.
func (w *Waiter) AwaitState(
	ctx context.Context,
	correlationID models.ID,
	expectedPrevious State,
	expectedCurrent State,
	maxAttempts int,
	initialDelay time.Duration,
) (bool, error) {
	delay := initialDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		snapshot, err := w.reader.GetState(ctx, correlationID)
		if err != nil {
			return false, errors.Wrap(err, "failed to read saga state")
		}

		if snapshot != nil &&
			snapshot.PreviousState == expectedPrevious &&
			snapshot.CurrentState == expectedCurrent {
			w.logger.Info("saga reached expected state pair",
				zap.String("correlation_id", correlationID.String()),
				zap.String("previous_state", expectedPrevious.String()),
				zap.String("current_state", expectedCurrent.String()),
				zap.Int("attempt", attempt),
			)
			return true, nil
		}

		w.logger.Info("waiting for saga state pair",
			zap.String("correlation_id", correlationID.String()),
			zap.String("expected_previous", expectedPrevious.String()),
			zap.String("expected_current", expectedCurrent.String()),
			zap.Int("attempt", attempt),
		)

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		case <-timer.C:
		}

		delay += DelayIncrement
	}

	return false, nil
}
