package ports

import (
	"context"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for delivery
// tracking records. A record is keyed by its order id; at most one record
// exists per order.
type TrackingRepository interface {
	// Add persists a new tracking record. Created when a delivery partner
	// is first assigned to the order.
	Add(ctx context.Context, aggregate *tracking.Tracking) error

	// Update persists changes to an existing tracking record, including
	// appended events and the frozen flag.
	Update(ctx context.Context, aggregate *tracking.Tracking) error

	// Get retrieves the tracking record for an order. Returns
	// ObjectNotFoundError when the order has no record yet; callers
	// surface that as "not yet trackable".
	Get(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error)
}
