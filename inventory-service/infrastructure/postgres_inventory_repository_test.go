package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evermart/order-system/inventory-service/domain"
	"github.com/evermart/order-system/shared/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "postgres"), mock
}

func TestInventoryRepositorySave(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresInventoryRepository(db)

	item, err := domain.NewInventoryItem(42, "coffee beans", 10)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO inventory_items").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), item))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepositoryFindByProductID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresInventoryRepository(db)
	id := models.GenerateUUID()
	now := time.Now().UTC()

	columns := []string{"id", "product_id", "name", "quantity", "is_checked", "created_at", "updated_at"}

	mock.ExpectQuery("SELECT (.+) FROM inventory_items").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id.String(), int64(42), "coffee beans", 10, true, now, now))

	item, err := repo.FindByProductID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, id, item.ID)
	assert.Equal(t, 10, item.Quantity)
	assert.True(t, item.IsChecked)

	mock.ExpectQuery("SELECT (.+) FROM inventory_items").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(columns))

	missing, err := repo.FindByProductID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresInventoryRepository(db)
	now := time.Now().UTC()

	columns := []string{"id", "product_id", "name", "quantity", "is_checked", "created_at", "updated_at"}

	mock.ExpectQuery("SELECT (.+) FROM inventory_items").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(models.GenerateUUID().String(), int64(42), "coffee beans", 10, false, now, now).
			AddRow(models.GenerateUUID().String(), int64(7), "notebook", 2, true, now, now))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(42), items[0].ProductID)
	assert.Equal(t, int64(7), items[1].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
