package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/evermart/order-system/shared/models"
	"github.com/evermart/order-system/shared/saga"
)

func TestSagaStateClientGetState(t *testing.T) {
	correlationID := models.GenerateUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sagas/"+correlationID.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(saga.Snapshot{
			CorrelationID: correlationID,
			PreviousState: saga.StateInventoryCheckRequested,
			CurrentState:  saga.StateCompleted,
		})
	}))
	defer server.Close()

	client := NewSagaStateClient(server.URL, zap.NewNop())
	snapshot, err := client.GetState(context.Background(), correlationID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, saga.StateCompleted, snapshot.CurrentState)
	assert.Equal(t, saga.StateInventoryCheckRequested, snapshot.PreviousState)
}

func TestSagaStateClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Saga not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewSagaStateClient(server.URL, zap.NewNop())
	snapshot, err := client.GetState(context.Background(), models.GenerateUUID())
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSagaStateClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewSagaStateClient(server.URL, zap.NewNop())
	_, err := client.GetState(context.Background(), models.GenerateUUID())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}
