package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/events"
	"github.com/evermart/order-system/shared/models"
	"github.com/evermart/order-system/shared/saga"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "postgres"), mock
}

func sagaFixture(t *testing.T) (*domain.OrderSaga, *domain.TransitionRecord) {
	t.Helper()
	s, record, err := domain.StartOrderProcess(events.ProductCreatedData{
		CorrelationID: models.GenerateUUID(),
		ProductID:     42,
		Name:          "coffee beans",
		Quantity:      3,
		Price:         models.NewMoney(999, "USD"),
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
	return s, record
}

func TestSagaRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresSagaRepository(db)
	s, record := sagaFixture(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO order_sagas").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO saga_transitions").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), s, record)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaRepositoryCreateRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresSagaRepository(db)
	s, record := sagaFixture(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO order_sagas").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), s, record)
	assert.True(t, errors.Is(err, domain.ErrConcurrencyConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaRepositorySaveTransition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresSagaRepository(db)
	s, _ := sagaFixture(t)

	record, err := s.ApplyInventoryCheckRequested(events.InventoryCheckRequestedData{
		CorrelationID: s.CorrelationID,
		ProductID:     s.ProductID,
		Quantity:      s.ProductQuantity,
		Price:         s.Price,
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE order_sagas").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO saga_transitions").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err = repo.SaveTransition(context.Background(), s, record)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaRepositorySaveTransitionStaleVersion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresSagaRepository(db)
	s, _ := sagaFixture(t)

	record, err := s.ApplyInventoryCheckRequested(events.InventoryCheckRequestedData{
		CorrelationID: s.CorrelationID,
		ProductID:     s.ProductID,
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE order_sagas").
		WillReturnResult(sqlmock.NewResult(0, 0)) // another writer advanced first
	mock.ExpectRollback()

	err = repo.SaveTransition(context.Background(), s, record)
	assert.True(t, errors.Is(err, domain.ErrConcurrencyConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaRepositoryFindByCorrelationID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresSagaRepository(db)
	correlationID := models.GenerateUUID()
	now := time.Now().UTC()

	columns := []string{
		"correlation_id", "current_state", "previous_state",
		"product_id", "product_name", "product_quantity",
		"price_amount", "price_currency", "is_quality_good",
		"product_created_at", "inventory_check_requested_at",
		"inventory_check_completed_at", "version",
	}

	mock.ExpectQuery("SELECT (.+) FROM order_sagas").
		WithArgs(correlationID.String()).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			correlationID.String(), "InventoryCheckRequestedState", "WaitingForInventoryCheckRequest",
			int64(42), "coffee beans", 3,
			int64(999), "USD", false,
			now, now, nil, 3,
		))

	s, err := repo.FindByCorrelationID(context.Background(), correlationID)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, correlationID, s.CorrelationID)
	assert.Equal(t, saga.StateInventoryCheckRequested, s.CurrentState)
	assert.Equal(t, saga.StateWaitingForInventoryCheckRequest, s.PreviousState)
	assert.Equal(t, 3, s.Version.Value)
	assert.True(t, s.InventoryCheckCompletedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaRepositoryFindByCorrelationIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresSagaRepository(db)
	correlationID := models.GenerateUUID()

	mock.ExpectQuery("SELECT (.+) FROM order_sagas").
		WithArgs(correlationID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"correlation_id"}))

	s, err := repo.FindByCorrelationID(context.Background(), correlationID)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSagaRepositoryListByCorrelationID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresSagaRepository(db)
	correlationID := models.GenerateUUID()
	now := time.Now().UTC()

	columns := []string{
		"id", "correlation_id", "previous_state", "current_state",
		"description", "transitioned_at",
	}

	mock.ExpectQuery("SELECT (.+) FROM saga_transitions").
		WithArgs(correlationID.String()).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), correlationID.String(), "Initial", "WaitingForInventoryCheckRequest",
				"ProductCreated event processed", now).
			AddRow(int64(2), correlationID.String(), "WaitingForInventoryCheckRequest", "InventoryCheckRequestedState",
				"InventoryCheckRequest event processed", now.Add(time.Second)))

	records, err := repo.ListByCorrelationID(context.Background(), correlationID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, saga.StateInitial, records[0].PreviousState)
	assert.Equal(t, saga.StateInventoryCheckRequested, records[1].CurrentState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db)

	product, err := domain.CreateProduct(7, "notebook", 2, models.NewMoney(1250, "USD"))
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO products").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), product))

	columns := []string{
		"id", "product_id", "name", "quantity",
		"price_amount", "price_currency", "created_at",
	}
	mock.ExpectQuery("SELECT (.+) FROM products").
		WithArgs(product.ID.String()).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			product.ID.String(), int64(7), "notebook", 2,
			int64(1250), "USD", product.CreatedAt,
		))

	found, err := repo.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, product.ID, found.ID)
	assert.Equal(t, int64(7), found.ProductID)

	mock.ExpectQuery("SELECT (.+) FROM products").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(columns))

	missing, err := repo.FindByProductID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
