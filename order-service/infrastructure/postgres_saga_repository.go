package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/models"
	"github.com/evermart/order-system/shared/saga"
)

// PostgresSagaRepository implements SagaRepository and HistoryRepository
// using PostgreSQL. State changes and their history rows are written in a
// single transaction so the history never disagrees with the saga row.
type PostgresSagaRepository struct {
	db *sqlx.DB
}

// NewPostgresSagaRepository creates a new PostgresSagaRepository
func NewPostgresSagaRepository(db *sqlx.DB) *PostgresSagaRepository {
	return &PostgresSagaRepository{db: db}
}

// postgresSaga represents a saga instance in the database
type postgresSaga struct {
	CorrelationID             string       `db:"correlation_id"`
	CurrentState              string       `db:"current_state"`
	PreviousState             string       `db:"previous_state"`
	ProductID                 int64        `db:"product_id"`
	ProductName               string       `db:"product_name"`
	ProductQuantity           int          `db:"product_quantity"`
	PriceAmount               int64        `db:"price_amount"`
	PriceCurrency             string       `db:"price_currency"`
	IsQualityGood             bool         `db:"is_quality_good"`
	ProductCreatedAt          time.Time    `db:"product_created_at"`
	InventoryCheckRequestedAt sql.NullTime `db:"inventory_check_requested_at"`
	InventoryCheckCompletedAt sql.NullTime `db:"inventory_check_completed_at"`
	Version                   int          `db:"version"`
}

// postgresTransition represents a transition history row
type postgresTransition struct {
	ID             int64     `db:"id"`
	CorrelationID  string    `db:"correlation_id"`
	PreviousState  string    `db:"previous_state"`
	CurrentState   string    `db:"current_state"`
	Description    string    `db:"description"`
	TransitionedAt time.Time `db:"transitioned_at"`
}

// FindByCorrelationID finds a saga instance by correlation ID
func (r *PostgresSagaRepository) FindByCorrelationID(ctx context.Context, correlationID models.ID) (*domain.OrderSaga, error) {
	query := `
		SELECT correlation_id, current_state, previous_state,
			   product_id, product_name, product_quantity,
			   price_amount, price_currency, is_quality_good,
			   product_created_at, inventory_check_requested_at,
			   inventory_check_completed_at, version
		FROM order_sagas
		WHERE correlation_id = $1`

	var pgSaga postgresSaga
	err := r.db.GetContext(ctx, &pgSaga, query, correlationID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No instance for this correlation ID
		}
		return nil, errors.Wrap(err, "failed to find saga")
	}

	return r.toDomain(&pgSaga)
}

// Create inserts a new saga instance and its first history row. A
// concurrent create of the same correlation ID loses on the primary key
// and surfaces as ErrConcurrencyConflict.
func (r *PostgresSagaRepository) Create(ctx context.Context, s *domain.OrderSaga, record *domain.TransitionRecord) error {
	query := `
		INSERT INTO order_sagas (
			correlation_id, current_state, previous_state,
			product_id, product_name, product_quantity,
			price_amount, price_currency, is_quality_good,
			product_created_at, inventory_check_requested_at,
			inventory_check_completed_at, version
		) VALUES (
			:correlation_id, :current_state, :previous_state,
			:product_id, :product_name, :product_quantity,
			:price_amount, :price_currency, :is_quality_good,
			:product_created_at, :inventory_check_requested_at,
			:inventory_check_completed_at, :version
		)`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, query, r.toPostgres(s)); err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			return errors.Wrap(domain.ErrConcurrencyConflict, "saga already created")
		}
		return errors.Wrap(err, "failed to insert saga")
	}

	if err := r.insertTransition(ctx, tx, record); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit saga create")
}

// SaveTransition updates a saga instance checking the version it was read
// at, and appends the transition's history row in the same transaction.
// A stale version returns ErrConcurrencyConflict without writing anything.
func (r *PostgresSagaRepository) SaveTransition(ctx context.Context, s *domain.OrderSaga, record *domain.TransitionRecord) error {
	query := `
		UPDATE order_sagas
		SET current_state = :current_state,
			previous_state = :previous_state,
			is_quality_good = :is_quality_good,
			inventory_check_requested_at = :inventory_check_requested_at,
			inventory_check_completed_at = :inventory_check_completed_at,
			version = :version
		WHERE correlation_id = :correlation_id AND version = :old_version`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	pgSaga := r.toPostgres(s)
	result, err := tx.NamedExecContext(ctx, query, map[string]interface{}{
		"correlation_id":               pgSaga.CorrelationID,
		"current_state":                pgSaga.CurrentState,
		"previous_state":               pgSaga.PreviousState,
		"is_quality_good":              pgSaga.IsQualityGood,
		"inventory_check_requested_at": pgSaga.InventoryCheckRequestedAt,
		"inventory_check_completed_at": pgSaga.InventoryCheckCompletedAt,
		"version":                      pgSaga.Version,
		"old_version":                  pgSaga.Version - 1, // Optimistic locking
	})
	if err != nil {
		return errors.Wrap(err, "failed to update saga")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read rows affected")
	}
	if affected == 0 {
		return errors.Wrapf(domain.ErrConcurrencyConflict,
			"saga %s at version %d", s.CorrelationID, pgSaga.Version-1)
	}

	if err := r.insertTransition(ctx, tx, record); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit saga transition")
}

func (r *PostgresSagaRepository) insertTransition(ctx context.Context, tx *sqlx.Tx, record *domain.TransitionRecord) error {
	query := `
		INSERT INTO saga_transitions (
			correlation_id, previous_state, current_state,
			description, transitioned_at
		) VALUES (
			:correlation_id, :previous_state, :current_state,
			:description, :transitioned_at
		)`

	_, err := tx.NamedExecContext(ctx, query, &postgresTransition{
		CorrelationID:  record.CorrelationID.String(),
		PreviousState:  record.PreviousState.String(),
		CurrentState:   record.CurrentState.String(),
		Description:    record.Description,
		TransitionedAt: record.TransitionedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to insert transition record")
	}

	return nil
}

// ListByCorrelationID returns a saga's transition history in the order the
// transitions happened
func (r *PostgresSagaRepository) ListByCorrelationID(ctx context.Context, correlationID models.ID) ([]*domain.TransitionRecord, error) {
	query := `
		SELECT id, correlation_id, previous_state, current_state,
			   description, transitioned_at
		FROM saga_transitions
		WHERE correlation_id = $1
		ORDER BY transitioned_at ASC, id ASC`

	var pgTransitions []postgresTransition
	err := r.db.SelectContext(ctx, &pgTransitions, query, correlationID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transitions")
	}

	records := make([]*domain.TransitionRecord, len(pgTransitions))
	for i, pgTransition := range pgTransitions {
		id, err := models.NewID(pgTransition.CorrelationID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid correlation ID")
		}
		records[i] = &domain.TransitionRecord{
			ID:             pgTransition.ID,
			CorrelationID:  id,
			PreviousState:  saga.State(pgTransition.PreviousState),
			CurrentState:   saga.State(pgTransition.CurrentState),
			Description:    pgTransition.Description,
			TransitionedAt: pgTransition.TransitionedAt,
		}
	}

	return records, nil
}

// toPostgres converts a domain saga to the postgres model
func (r *PostgresSagaRepository) toPostgres(s *domain.OrderSaga) *postgresSaga {
	return &postgresSaga{
		CorrelationID:             s.CorrelationID.String(),
		CurrentState:              s.CurrentState.String(),
		PreviousState:             s.PreviousState.String(),
		ProductID:                 s.ProductID,
		ProductName:               s.ProductName,
		ProductQuantity:           s.ProductQuantity,
		PriceAmount:               s.Price.Amount,
		PriceCurrency:             s.Price.Currency,
		IsQualityGood:             s.IsQualityGood,
		ProductCreatedAt:          s.ProductCreatedAt,
		InventoryCheckRequestedAt: nullTime(s.InventoryCheckRequestedAt),
		InventoryCheckCompletedAt: nullTime(s.InventoryCheckCompletedAt),
		Version:                   s.Version.Value,
	}
}

// toDomain converts a postgres model to a domain saga
func (r *PostgresSagaRepository) toDomain(pgSaga *postgresSaga) (*domain.OrderSaga, error) {
	correlationID, err := models.NewID(pgSaga.CorrelationID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid correlation ID")
	}

	s := &domain.OrderSaga{
		CorrelationID:    correlationID,
		CurrentState:     saga.State(pgSaga.CurrentState),
		PreviousState:    saga.State(pgSaga.PreviousState),
		ProductID:        pgSaga.ProductID,
		ProductName:      pgSaga.ProductName,
		ProductQuantity:  pgSaga.ProductQuantity,
		Price:            models.NewMoney(pgSaga.PriceAmount, pgSaga.PriceCurrency),
		IsQualityGood:    pgSaga.IsQualityGood,
		ProductCreatedAt: pgSaga.ProductCreatedAt,
		Version:          models.Version{Value: pgSaga.Version},
	}
	if pgSaga.InventoryCheckRequestedAt.Valid {
		s.InventoryCheckRequestedAt = pgSaga.InventoryCheckRequestedAt.Time
	}
	if pgSaga.InventoryCheckCompletedAt.Valid {
		s.InventoryCheckCompletedAt = pgSaga.InventoryCheckCompletedAt.Time
	}

	return s, nil
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
