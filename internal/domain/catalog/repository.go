package catalog

import (
	"context"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uint64) (*Product, error)

	// FindAll finds products matching the filter, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindActive finds all active products, newest first
	FindActive(ctx context.Context) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete removes a product and its inline image
	Delete(ctx context.Context, id uint64) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
