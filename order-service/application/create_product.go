package application

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/events"
	"github.com/evermart/order-system/shared/models"
)

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	ProductID int64        `json:"product_id"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	Price     models.Money `json:"price"`
}

// CreateProduct use case creates a catalog product and publishes the
// product.created event that starts its order process
type CreateProduct struct {
	productRepository domain.ProductRepository
	eventPublisher    events.Publisher
	logger            *zap.Logger
}

// NewCreateProduct creates a new CreateProduct use case
func NewCreateProduct(
	productRepository domain.ProductRepository,
	eventPublisher events.Publisher,
	logger *zap.Logger,
) *CreateProduct {
	return &CreateProduct{
		productRepository: productRepository,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute creates the product and publishes its creation event
func (uc *CreateProduct) Execute(ctx context.Context, cmd *CreateProductCommand) (*domain.Product, error) {
	existing, err := uc.productRepository.FindByProductID(ctx, cmd.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check for existing product")
	}
	if existing != nil {
		return nil, errors.Errorf("product %d already exists", cmd.ProductID)
	}

	product, err := domain.CreateProduct(cmd.ProductID, cmd.Name, cmd.Quantity, cmd.Price)
	if err != nil {
		return nil, errors.Wrap(err, "invalid command")
	}

	if err := uc.productRepository.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	if err := uc.eventPublisher.Publish(ctx, product.Events()...); err != nil {
		return nil, errors.Wrap(err, "failed to publish product events")
	}
	product.ClearEvents()

	uc.logger.Info("product created",
		zap.String("correlation_id", product.ID.String()),
		zap.Int64("product_id", product.ProductID))

	return product, nil
}
