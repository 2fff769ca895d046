package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/models"
)

// GetProduct use case reads a product by ID
type GetProduct struct {
	productRepository domain.ProductRepository
}

// NewGetProduct creates a new GetProduct use case
func NewGetProduct(productRepository domain.ProductRepository) *GetProduct {
	return &GetProduct{productRepository: productRepository}
}

// Execute returns the product, or (nil, nil) when none exists
func (uc *GetProduct) Execute(ctx context.Context, id models.ID) (*domain.Product, error) {
	if id.IsEmpty() {
		return nil, errors.New("product id is required")
	}

	product, err := uc.productRepository.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
