package domain

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/evermart/order-system/shared/events"
	"github.com/evermart/order-system/shared/models"
)

// Product is the catalog entry whose creation starts an order process.
type Product struct {
	ID        models.ID
	ProductID int64
	Name      string
	Quantity  int
	Price     models.Money
	CreatedAt time.Time

	uncommittedEvents []*events.Event
}

// CreateProduct validates the input and records the product.created event
// that will drive a new saga instance. The product's ID doubles as the
// saga correlation id.
func CreateProduct(productID int64, name string, quantity int, price models.Money) (*Product, error) {
	if productID <= 0 {
		return nil, errors.New("product id must be positive")
	}
	if name == "" {
		return nil, errors.New("product name is required")
	}
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if !price.IsPositive() {
		return nil, errors.New("price must be positive")
	}

	p := &Product{
		ID:        models.GenerateUUID(),
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		Price:     price,
		CreatedAt: time.Now().UTC(),
	}

	p.uncommittedEvents = append(p.uncommittedEvents,
		events.NewEvent(p.ID, events.ProductCreatedEvent, events.ProductCreatedData{
			CorrelationID: p.ID,
			ProductID:     p.ProductID,
			Name:          p.Name,
			Quantity:      p.Quantity,
			Price:         p.Price,
			CreatedAt:     p.CreatedAt,
		}).WithCorrelationID(p.ID))

	return p, nil
}

func (p *Product) Events() []*events.Event {
	return p.uncommittedEvents
}

func (p *Product) ClearEvents() {
	p.uncommittedEvents = nil
}

// ProductRepository persists catalog entries.
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	// FindByID returns (nil, nil) when the product does not exist.
	FindByID(ctx context.Context, id models.ID) (*Product, error)
	FindByProductID(ctx context.Context, productID int64) (*Product, error)
}
