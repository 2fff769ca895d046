package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/evermart/order-system/inventory-service/domain"
	"github.com/evermart/order-system/shared/models"
)

// PostgresInventoryRepository implements InventoryRepository using PostgreSQL
type PostgresInventoryRepository struct {
	db *sqlx.DB
}

// NewPostgresInventoryRepository creates a new PostgresInventoryRepository
func NewPostgresInventoryRepository(db *sqlx.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

// postgresInventoryItem represents an inventory item in the database
type postgresInventoryItem struct {
	ID        string    `db:"id"`
	ProductID int64     `db:"product_id"`
	Name      string    `db:"name"`
	Quantity  int       `db:"quantity"`
	IsChecked bool      `db:"is_checked"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Save upserts an inventory item
func (r *PostgresInventoryRepository) Save(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (
			id, product_id, name, quantity, is_checked, created_at, updated_at
		) VALUES (
			:id, :product_id, :name, :quantity, :is_checked, :created_at, :updated_at
		)
		ON CONFLICT (id) DO UPDATE
		SET quantity = :quantity, is_checked = :is_checked, updated_at = :updated_at`

	_, err := r.db.NamedExecContext(ctx, query, r.toPostgres(item))
	if err != nil {
		return errors.Wrap(err, "failed to save inventory item")
	}

	return nil
}

// FindByProductID finds an inventory item by catalog product ID
func (r *PostgresInventoryRepository) FindByProductID(ctx context.Context, productID int64) (*domain.InventoryItem, error) {
	query := `
		SELECT id, product_id, name, quantity, is_checked, created_at, updated_at
		FROM inventory_items
		WHERE product_id = $1`

	var pgItem postgresInventoryItem
	err := r.db.GetContext(ctx, &pgItem, query, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Item not found
		}
		return nil, errors.Wrap(err, "failed to find inventory item")
	}

	return r.toDomain(&pgItem)
}

// List returns all inventory items
func (r *PostgresInventoryRepository) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	query := `
		SELECT id, product_id, name, quantity, is_checked, created_at, updated_at
		FROM inventory_items
		ORDER BY created_at ASC`

	var pgItems []postgresInventoryItem
	err := r.db.SelectContext(ctx, &pgItems, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory items")
	}

	items := make([]*domain.InventoryItem, len(pgItems))
	for i, pgItem := range pgItems {
		item, err := r.toDomain(&pgItem)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	return items, nil
}

// toPostgres converts a domain item to the postgres model
func (r *PostgresInventoryRepository) toPostgres(item *domain.InventoryItem) *postgresInventoryItem {
	return &postgresInventoryItem{
		ID:        item.ID.String(),
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		IsChecked: item.IsChecked,
		CreatedAt: item.Timestamps.CreatedAt,
		UpdatedAt: item.Timestamps.UpdatedAt,
	}
}

// toDomain converts a postgres model to a domain item
func (r *PostgresInventoryRepository) toDomain(pgItem *postgresInventoryItem) (*domain.InventoryItem, error) {
	id, err := models.NewID(pgItem.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid inventory item ID")
	}

	return &domain.InventoryItem{
		ID:        id,
		ProductID: pgItem.ProductID,
		Name:      pgItem.Name,
		Quantity:  pgItem.Quantity,
		IsChecked: pgItem.IsChecked,
		Timestamps: models.Timestamps{
			CreatedAt: pgItem.CreatedAt,
			UpdatedAt: pgItem.UpdatedAt,
		},
	}, nil
}
