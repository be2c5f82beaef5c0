package order

import (
	"context"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uint64) (*Order, error)

	// FindAll finds orders matching the filter, newest first.
	// Supported filter keys: "status".
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error

	// Delete removes an order
	Delete(ctx context.Context, id uint64) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
