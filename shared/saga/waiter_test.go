package saga

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/evermart/order-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stateReaderFunc func(ctx context.Context, correlationID models.ID) (*Snapshot, error)

func (f stateReaderFunc) GetState(ctx context.Context, correlationID models.ID) (*Snapshot, error) {
	return f(ctx, correlationID)
}

func TestWaiter_AwaitState_ImmediateMatch(t *testing.T) {
	correlationID := models.GenerateUUID()

	reader := stateReaderFunc(func(ctx context.Context, id models.ID) (*Snapshot, error) {
		return &Snapshot{
			CorrelationID: id,
			PreviousState: StateInventoryCheckRequested,
			CurrentState:  StateCompleted,
		}, nil
	})

	waiter := NewWaiter(reader, zap.NewNop())

	ready, err := waiter.AwaitState(context.Background(), correlationID,
		StateInventoryCheckRequested, StateCompleted, 5, time.Millisecond)

	require.NoError(t, err)
	assert.True(t, ready)
}

func TestWaiter_AwaitState_BecomesVisible(t *testing.T) {
	correlationID := models.GenerateUUID()

	var calls atomic.Int32
	reader := stateReaderFunc(func(ctx context.Context, id models.ID) (*Snapshot, error) {
		if calls.Add(1) < 3 {
			return nil, nil // not yet visible on this read path
		}
		return &Snapshot{
			CorrelationID: id,
			PreviousState: StateWaitingForInventoryCheckRequest,
			CurrentState:  StateInventoryCheckRequested,
		}, nil
	})

	waiter := NewWaiter(reader, zap.NewNop())

	ready, err := waiter.AwaitState(context.Background(), correlationID,
		StateWaitingForInventoryCheckRequest, StateInventoryCheckRequested, 5, time.Millisecond)

	require.NoError(t, err)
	assert.True(t, ready)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWaiter_AwaitState_ExhaustsAttempts(t *testing.T) {
	correlationID := models.GenerateUUID()

	var calls atomic.Int32
	reader := stateReaderFunc(func(ctx context.Context, id models.ID) (*Snapshot, error) {
		calls.Add(1)
		return &Snapshot{
			CorrelationID: id,
			PreviousState: StateInitial,
			CurrentState:  StateWaitingForInventoryCheckRequest,
		}, nil
	})

	waiter := NewWaiter(reader, zap.NewNop())

	ready, err := waiter.AwaitState(context.Background(), correlationID,
		StateInventoryCheckRequested, StateCompleted, 3, time.Millisecond)

	require.NoError(t, err)
	assert.False(t, ready)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWaiter_AwaitState_WrongPairNeverMatchesOnCurrentAlone(t *testing.T) {
	correlationID := models.GenerateUUID()

	// Current state matches but the edge taken to reach it does not.
	reader := stateReaderFunc(func(ctx context.Context, id models.ID) (*Snapshot, error) {
		return &Snapshot{
			CorrelationID: id,
			PreviousState: StateWaitingForInventoryCheckRequest,
			CurrentState:  StateCompleted,
		}, nil
	})

	waiter := NewWaiter(reader, zap.NewNop())

	ready, err := waiter.AwaitState(context.Background(), correlationID,
		StateInventoryCheckRequested, StateCompleted, 2, time.Millisecond)

	require.NoError(t, err)
	assert.False(t, ready)
}

func TestWaiter_AwaitState_Cancellation(t *testing.T) {
	correlationID := models.GenerateUUID()

	reader := stateReaderFunc(func(ctx context.Context, id models.ID) (*Snapshot, error) {
		return nil, nil
	})

	waiter := NewWaiter(reader, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ready, err := waiter.AwaitState(ctx, correlationID,
		StateInventoryCheckRequested, StateCompleted, 10, time.Second)

	assert.False(t, ready)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaiter_AwaitState_CancelDuringDelay(t *testing.T) {
	correlationID := models.GenerateUUID()

	reader := stateReaderFunc(func(ctx context.Context, id models.ID) (*Snapshot, error) {
		return nil, nil
	})

	waiter := NewWaiter(reader, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	ready, err := waiter.AwaitState(ctx, correlationID,
		StateInventoryCheckRequested, StateCompleted, 10, time.Hour)

	assert.False(t, ready)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "cancellation must not consume remaining attempts")
}

func TestWaiter_AwaitState_ReaderError(t *testing.T) {
	correlationID := models.GenerateUUID()

	reader := stateReaderFunc(func(ctx context.Context, id models.ID) (*Snapshot, error) {
		return nil, errors.New("read path down")
	})

	waiter := NewWaiter(reader, zap.NewNop())

	ready, err := waiter.AwaitState(context.Background(), correlationID,
		StateInventoryCheckRequested, StateCompleted, 3, time.Millisecond)

	assert.False(t, ready)
	assert.Error(t, err)
}

func TestState_IsValid(t *testing.T) {
	for _, s := range []State{StateInitial, StateWaitingForInventoryCheckRequest, StateInventoryCheckRequested, StateCompleted} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, State("Unknown").IsValid())
}

func TestState_IsTerminal(t *testing.T) {
	assert.True(t, StateCompleted.IsTerminal())
	assert.False(t, StateInventoryCheckRequested.IsTerminal())
}
