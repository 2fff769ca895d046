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

func TestProcessProductCreated_Execute(t *testing.T) {
	correlationID := models.ID("550e8400-e29b-41d4-a716-446655440001")

	data := events.ProductCreatedData{
		CorrelationID: correlationID,
		ProductID:     42,
		Name:          "coffee beans",
		Quantity:      3,
		Price:         models.NewMoney(999, "USD"),
		CreatedAt:     time.Now().UTC(),
	}

	existingSaga := &domain.OrderSaga{
		CorrelationID: correlationID,
		CurrentState:  saga.StateWaitingForInventoryCheckRequest,
		PreviousState: saga.StateInitial,
		Version:       models.Version{Value: 2},
	}

	tests := []struct {
		name          string
		data          events.ProductCreatedData
		setupMocks    func(*mocks.MockSagaRepository, *mocks.MockPublisher)
		expectedError string
	}{
		{
			name: "starts order process and requests inventory check",
			data: data,
			setupMocks: func(repo *mocks.MockSagaRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).Return(nil, nil).Once()
				repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "duplicate delivery is discarded",
			data: data,
			setupMocks: func(repo *mocks.MockSagaRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).Return(existingSaga, nil).Once()
			},
		},
		{
			name: "lost create race resolves to duplicate on re-read",
			data: data,
			setupMocks: func(repo *mocks.MockSagaRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).Return(nil, nil).Once()
				repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.ErrConcurrencyConflict).Once()
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).Return(existingSaga, nil).Once()
			},
		},
		{
			name:          "missing correlation id",
			data:          events.ProductCreatedData{ProductID: 42},
			setupMocks:    func(repo *mocks.MockSagaRepository, publisher *mocks.MockPublisher) {},
			expectedError: "correlation id is required",
		},
		{
			name: "repository error propagates",
			data: data,
			setupMocks: func(repo *mocks.MockSagaRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectedError: "failed to find saga",
		},
		{
			name: "publish error propagates",
			data: data,
			setupMocks: func(repo *mocks.MockSagaRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).Return(nil, nil).Once()
				repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).
					Return(errors.New("sns unavailable")).Once()
			},
			expectedError: "failed to publish saga events",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockSagaRepository(t)
			publisher := mocks.NewMockPublisher(t)
			tt.setupMocks(repo, publisher)

			uc := NewProcessProductCreated(repo, publisher, zap.NewNop())
			err := uc.Execute(context.Background(), tt.data)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessProductCreated_CreatePersistsFirstTransition(t *testing.T) {
	correlationID := models.GenerateUUID()
	repo := mocks.NewMockSagaRepository(t)
	publisher := mocks.NewMockPublisher(t)

	repo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).Return(nil, nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, s *domain.OrderSaga, record *domain.TransitionRecord) {
			assert.Equal(t, saga.StateWaitingForInventoryCheckRequest, s.CurrentState)
			assert.Equal(t, saga.StateInitial, record.PreviousState)
			assert.Equal(t, saga.StateWaitingForInventoryCheckRequest, record.CurrentState)
		}).
		Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, evts ...*events.Event) {
			require.Len(t, evts, 1)
			assert.Equal(t, events.InventoryCheckRequestedEvent, evts[0].EventType)
		}).
		Return(nil).Once()

	uc := NewProcessProductCreated(repo, publisher, zap.NewNop())
	err := uc.Execute(context.Background(), events.ProductCreatedData{
		CorrelationID: correlationID,
		ProductID:     7,
		Name:          "notebook",
		Quantity:      2,
		Price:         models.NewMoney(1250, "USD"),
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
}
