package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/evermart/order-system/order-service/application"
	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/order-service/mocks"
	"github.com/evermart/order-system/shared/models"
	"github.com/evermart/order-system/shared/saga"
)

func newTestRouter(t *testing.T) (*chi.Mux, *mocks.MockSagaRepository, *mocks.MockHistoryRepository, *mocks.MockProductRepository, *mocks.MockPublisher) {
	t.Helper()
	sagaRepo := mocks.NewMockSagaRepository(t)
	historyRepo := mocks.NewMockHistoryRepository(t)
	productRepo := mocks.NewMockProductRepository(t)
	publisher := mocks.NewMockPublisher(t)

	h := NewOrderHandlers(
		application.NewCreateProduct(productRepo, publisher, zap.NewNop()),
		application.NewGetProduct(productRepo),
		application.NewGetSagaState(sagaRepo),
		application.NewGetSagaHistory(historyRepo),
	)
	router := chi.NewRouter()
	h.RegisterRoutes(router)
	return router, sagaRepo, historyRepo, productRepo, publisher
}

func TestCreateProductEndpoint(t *testing.T) {
	router, _, _, productRepo, publisher := newTestRouter(t)

	productRepo.EXPECT().FindByProductID(mock.Anything, int64(7)).Return(nil, nil).Once()
	productRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	body := `{"product_id":7,"name":"notebook","quantity":2,"price":{"amount":1250,"currency":"USD"}}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response["id"])
	assert.Equal(t, float64(7), response["product_id"])
}

func TestGetSagaEndpoint(t *testing.T) {
	router, sagaRepo, _, _, _ := newTestRouter(t)
	correlationID := models.GenerateUUID()

	sagaRepo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).
		Return(&domain.OrderSaga{
			CorrelationID:    correlationID,
			CurrentState:     saga.StateCompleted,
			PreviousState:    saga.StateInventoryCheckRequested,
			ProductID:        42,
			IsQualityGood:    true,
			ProductCreatedAt: time.Now().UTC(),
			Version:          models.Version{Value: 4},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/sagas/"+correlationID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot saga.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, correlationID, snapshot.CorrelationID)
	assert.Equal(t, saga.StateCompleted, snapshot.CurrentState)
	assert.Equal(t, saga.StateInventoryCheckRequested, snapshot.PreviousState)
}

func TestGetSagaEndpointNotFound(t *testing.T) {
	router, sagaRepo, _, _, _ := newTestRouter(t)
	correlationID := models.GenerateUUID()

	sagaRepo.EXPECT().FindByCorrelationID(mock.Anything, correlationID).Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/sagas/"+correlationID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSagaHistoryEndpoint(t *testing.T) {
	router, _, historyRepo, _, _ := newTestRouter(t)
	correlationID := models.GenerateUUID()

	historyRepo.EXPECT().ListByCorrelationID(mock.Anything, correlationID).
		Return([]*domain.TransitionRecord{
			{
				CorrelationID:  correlationID,
				PreviousState:  saga.StateInitial,
				CurrentState:   saga.StateWaitingForInventoryCheckRequest,
				Description:    "ProductCreated event processed",
				TransitionedAt: time.Now().UTC(),
			},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/sagas/"+correlationID.String()+"/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var records []transitionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "ProductCreated event processed", records[0].Description)
}
