package ports

import (
	"context"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate under an
	// optimistic-concurrency check: the stored version must equal the
	// version the aggregate was loaded with, otherwise ConflictError.
	// On success the stored version is incremented by one.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders not yet in a terminal status.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
