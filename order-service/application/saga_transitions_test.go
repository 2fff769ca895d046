package application

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/order-service/mocks"
	"github.com/evermart/order-system/shared/events"
	"github.com/evermart/order-system/shared/models"
	"github.com/evermart/order-system/shared/saga"
)

func waitingSaga(correlationID models.ID) *domain.OrderSaga {
	return &domain.OrderSaga{
		CorrelationID:    correlationID,
		CurrentState:     saga.StateWaitingForInventoryCheckRequest,
		PreviousState:    saga.StateInitial,
		ProductID:        42,
		ProductName:      "coffee beans",
		ProductQuantity:  3,
		Price:            models.NewMoney(999, "USD"),
		ProductCreatedAt: time.Now().UTC(),
		Version:          models.Version{Value: 2},
	}
}

func requestedSaga(correlationID models.ID) *domain.OrderSaga {
	s := waitingSaga(correlationID)
	s.CurrentState = saga.StateInventoryCheckRequested
	s.PreviousState = saga.StateWaitingForInventoryCheckRequest
	s.InventoryCheckRequestedAt = time.Now().UTC()
	s.Version = models.Version{Value: 3}
	return s
}

func TestProcessInventoryCheckRequested_Execute(t *testing.T) {
	correlationID := models.ID("550e8400-e29b-41d4-a716-446655440002")

	data := events.InventoryCheckRequestedData{
		CorrelationID: correlationID,
		ProductID:     42,
		Quantity:      3,
		Price:         models.NewMoney(999, "USD"),
		CreatedAt:     time.Now().UTC(),
	}

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockSagaRepository)
		expectedError string
	}{
		{
			name: "advances saga to inventory check requested",
			setupMocks: func(repo *mocks.MockSagaRepository) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
					Return(waitingSaga(correlationID), nil).Once()
				repo.EXPECT().SaveTransition(mock.Anything, mock.Anything, mock.Anything).
					Run(func(ctx context.Context, s *domain.OrderSaga, record *domain.TransitionRecord) {
						assert.Equal(t, saga.StateInventoryCheckRequested, s.CurrentState)
						assert.Equal(t, 3, s.Version.Value)
						assert.Equal(t, saga.StateInventoryCheckRequested, record.CurrentState)
					}).
					Return(nil).Once()
			},
		},
		{
			name: "no workflow instance is discarded",
			setupMocks: func(repo *mocks.MockSagaRepository) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).Return(nil, nil).Once()
			},
		},
		{
			name: "duplicate delivery is discarded",
			setupMocks: func(repo *mocks.MockSagaRepository) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
					Return(requestedSaga(correlationID), nil).Once()
			},
		},
		{
			name: "conflict re-reads and retries",
			setupMocks: func(repo *mocks.MockSagaRepository) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
					Return(waitingSaga(correlationID), nil).Once()
				repo.EXPECT().SaveTransition(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.ErrConcurrencyConflict).Once()
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
					Return(waitingSaga(correlationID), nil).Once()
				repo.EXPECT().SaveTransition(mock.Anything, mock.Anything, mock.Anything).
					Return(nil).Once()
			},
		},
		{
			name: "conflict resolving to duplicate is discarded",
			setupMocks: func(repo *mocks.MockSagaRepository) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
					Return(waitingSaga(correlationID), nil).Once()
				repo.EXPECT().SaveTransition(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.ErrConcurrencyConflict).Once()
				// Another writer applied the same event first.
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
					Return(requestedSaga(correlationID), nil).Once()
			},
		},
		{
			name: "repository error propagates",
			setupMocks: func(repo *mocks.MockSagaRepository) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectedError: "failed to find saga",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockSagaRepository(t)
			tt.setupMocks(repo)

			uc := NewProcessInventoryCheckRequested(repo, zap.NewNop())
			err := uc.Execute(context.Background(), data)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessInventoryCheckCompleted_Execute(t *testing.T) {
	correlationID := models.ID("550e8400-e29b-41d4-a716-446655440003")

	data := events.InventoryCheckCompletedData{
		CorrelationID: correlationID,
		ProductID:     42,
		IsQualityGood: true,
		CompletedAt:   time.Now().UTC(),
	}

	t.Run("completes the saga", func(t *testing.T) {
		repo := mocks.NewMockSagaRepository(t)
		repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
			Return(requestedSaga(correlationID), nil).Once()
		repo.EXPECT().SaveTransition(mock.Anything, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, s *domain.OrderSaga, record *domain.TransitionRecord) {
				assert.Equal(t, saga.StateCompleted, s.CurrentState)
				assert.True(t, s.IsQualityGood)
				assert.Equal(t, 4, s.Version.Value)
			}).
			Return(nil).Once()

		uc := NewProcessInventoryCheckCompleted(repo, zap.NewNop())
		assert.NoError(t, uc.Execute(context.Background(), data))
	})

	t.Run("completion before request is discarded", func(t *testing.T) {
		repo := mocks.NewMockSagaRepository(t)
		repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
			Return(waitingSaga(correlationID), nil).Once()

		uc := NewProcessInventoryCheckCompleted(repo, zap.NewNop())
		assert.NoError(t, uc.Execute(context.Background(), data))
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		repo := mocks.NewMockSagaRepository(t)
		repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
			RunAndReturn(func(ctx context.Context, id models.ID) (*domain.OrderSaga, error) {
				return requestedSaga(id), nil
			}).Times(4)
		repo.EXPECT().SaveTransition(mock.Anything, mock.Anything, mock.Anything).
			Return(domain.ErrConcurrencyConflict).Times(4)

		uc := NewProcessInventoryCheckCompleted(repo, zap.NewNop())
		err := uc.Execute(context.Background(), data)
		assert.True(t, errors.Is(err, domain.ErrConcurrencyConflict))
	})
}
