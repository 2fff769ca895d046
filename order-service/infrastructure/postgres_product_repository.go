package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/models"
)

// PostgresProductRepository implements ProductRepository using PostgreSQL
type PostgresProductRepository struct {
	db *sqlx.DB
}

// NewPostgresProductRepository creates a new PostgresProductRepository
func NewPostgresProductRepository(db *sqlx.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

// postgresProduct represents a product in the database
type postgresProduct struct {
	ID            string    `db:"id"`
	ProductID     int64     `db:"product_id"`
	Name          string    `db:"name"`
	Quantity      int       `db:"quantity"`
	PriceAmount   int64     `db:"price_amount"`
	PriceCurrency string    `db:"price_currency"`
	CreatedAt     time.Time `db:"created_at"`
}

// Save inserts a product
func (r *PostgresProductRepository) Save(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (
			id, product_id, name, quantity,
			price_amount, price_currency, created_at
		) VALUES (
			:id, :product_id, :name, :quantity,
			:price_amount, :price_currency, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, &postgresProduct{
		ID:            product.ID.String(),
		ProductID:     product.ProductID,
		Name:          product.Name,
		Quantity:      product.Quantity,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency,
		CreatedAt:     product.CreatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to insert product")
	}

	return nil
}

// FindByID finds a product by ID
func (r *PostgresProductRepository) FindByID(ctx context.Context, id models.ID) (*domain.Product, error) {
	query := `
		SELECT id, product_id, name, quantity,
			   price_amount, price_currency, created_at
		FROM products
		WHERE id = $1`

	return r.findOne(ctx, query, id.String())
}

// FindByProductID finds a product by its catalog ID
func (r *PostgresProductRepository) FindByProductID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `
		SELECT id, product_id, name, quantity,
			   price_amount, price_currency, created_at
		FROM products
		WHERE product_id = $1`

	return r.findOne(ctx, query, productID)
}

func (r *PostgresProductRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Product, error) {
	var pgProduct postgresProduct
	err := r.db.GetContext(ctx, &pgProduct, query, arg)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Product not found
		}
		return nil, errors.Wrap(err, "failed to find product")
	}

	id, err := models.NewID(pgProduct.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid product ID")
	}

	return &domain.Product{
		ID:        id,
		ProductID: pgProduct.ProductID,
		Name:      pgProduct.Name,
		Quantity:  pgProduct.Quantity,
		Price:     models.NewMoney(pgProduct.PriceAmount, pgProduct.PriceCurrency),
		CreatedAt: pgProduct.CreatedAt,
	}, nil
}
