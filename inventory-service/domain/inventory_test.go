package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evermart/order-system/shared/events"
)

func TestNewInventoryItem(t *testing.T) {
	item, err := NewInventoryItem(42, "coffee beans", 10)
	require.NoError(t, err)

	assert.False(t, item.ID.IsEmpty())
	assert.Equal(t, int64(42), item.ProductID)
	assert.Equal(t, 10, item.Quantity)
	assert.False(t, item.IsChecked)

	require.Len(t, item.Events(), 1)
	assert.Equal(t, events.InventoryItemAddedEvent, item.Events()[0].EventType)

	_, err = NewInventoryItem(0, "coffee beans", 10)
	assert.Error(t, err)
	_, err = NewInventoryItem(42, "", 10)
	assert.Error(t, err)
	_, err = NewInventoryItem(42, "coffee beans", -1)
	assert.Error(t, err)
}

func TestCheckAvailability(t *testing.T) {
	item, err := NewInventoryItem(42, "coffee beans", 10)
	require.NoError(t, err)

	assert.True(t, item.CheckAvailability(10))
	assert.True(t, item.CheckAvailability(1))
	assert.False(t, item.CheckAvailability(11))
	assert.False(t, item.CheckAvailability(0))
	assert.False(t, item.CheckAvailability(-1))
}

func TestMarkChecked(t *testing.T) {
	item, err := NewInventoryItem(42, "coffee beans", 10)
	require.NoError(t, err)
	item.ClearEvents()

	require.NoError(t, item.MarkChecked())
	assert.True(t, item.IsChecked)
	require.Len(t, item.Events(), 1)
	assert.Equal(t, events.InventoryItemCheckMarkedEvent, item.Events()[0].EventType)

	// Second mark is a duplicate.
	assert.Error(t, item.MarkChecked())
}
