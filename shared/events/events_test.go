package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/evermart/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic_Matches(t *testing.T) {
	tests := []struct {
		name    string
		topic   Topic
		pattern Topic
		matches bool
	}{
		{"exact match", "product.created", "product.created", true},
		{"exact mismatch", "product.created", "product.deleted", false},
		{"single wildcard segment", "inventory.check.requested", "inventory.*.requested", true},
		{"wildcard segment mismatch", "inventory.check.requested", "inventory.*.completed", false},
		{"match all", "inventory.check.completed", "#", true},
		{"prefix pattern", "inventory.check.completed", "inventory.#", true},
		{"suffix pattern", "inventory.check.completed", "#.completed", true},
		{"contains pattern", "inventory.check.completed", "#check#", true},
		{"length mismatch", "product.created", "product.created.v2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.topic.Matches(tt.pattern))
		})
	}
}

func TestNewTopic_Empty(t *testing.T) {
	_, err := NewTopic("")
	assert.ErrorIs(t, err, ErrInvalidTopic)
}

func TestNewEvent_CarriesCorrelationID(t *testing.T) {
	correlationID := models.GenerateUUID()

	event := NewEvent(models.GenerateUUID(), ProductCreatedEvent, ProductCreatedData{
		CorrelationID: correlationID,
		ProductID:     7,
		Name:          "Widget",
		Quantity:      10,
		Price:         models.NewMoney(999, "USD"),
		CreatedAt:     time.Now().UTC(),
	}).WithCorrelationID(correlationID)

	assert.Equal(t, ProductCreatedEvent, event.EventType)
	assert.Equal(t, Topic(ProductCreatedEvent), event.Topic)
	assert.Equal(t, correlationID, event.CorrelationID)
	assert.NotEmpty(t, event.ID)
}

func TestEvent_UnmarshalPayload(t *testing.T) {
	correlationID := models.GenerateUUID()
	payload := InventoryCheckCompletedData{
		CorrelationID: correlationID,
		ProductID:     7,
		IsQualityGood: true,
		CompletedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("same type payload", func(t *testing.T) {
		event := NewEvent(models.GenerateUUID(), InventoryCheckCompletedEvent, payload)

		var got InventoryCheckCompletedData
		require.NoError(t, event.UnmarshalPayload(&got))
		assert.Equal(t, payload, got)
	})

	t.Run("raw json payload after transport", func(t *testing.T) {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)

		event := NewEvent(models.GenerateUUID(), InventoryCheckCompletedEvent, json.RawMessage(raw))

		var got InventoryCheckCompletedData
		require.NoError(t, event.UnmarshalPayload(&got))
		assert.Equal(t, payload.CorrelationID, got.CorrelationID)
		assert.True(t, got.IsQualityGood)
	})

	t.Run("non pointer receiver", func(t *testing.T) {
		event := NewEvent(models.GenerateUUID(), InventoryCheckCompletedEvent, payload)

		var got InventoryCheckCompletedData
		assert.ErrorIs(t, event.UnmarshalPayload(got), ErrInvalidReceiver)
	})
}

func TestEvent_Clone(t *testing.T) {
	event := NewEvent(models.GenerateUUID(), ProductCreatedEvent, nil).
		WithMetadata("source", "order-service")

	clone := event.Clone()
	clone.Metadata.Set("source", "mutated")

	source, _ := event.Metadata.Get("source")
	assert.Equal(t, "order-service", source)
}
