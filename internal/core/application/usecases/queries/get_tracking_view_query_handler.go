package queries

import (
	"context"
	"time"

	"agrimarket/internal/core/domain/services"
	"agrimarket/internal/core/ports"
)

// GetTrackingViewQueryHandler builds the progress view for an order. It
// reads snapshots only; no locking is involved.
type GetTrackingViewQueryHandler struct {
	orderRepo    ports.OrderRepository
	trackingRepo ports.TrackingRepository
}

// NewGetTrackingViewQueryHandler creates a handler for tracking view queries.
func NewGetTrackingViewQueryHandler(
	orderRepo ports.OrderRepository,
	trackingRepo ports.TrackingRepository,
) GetTrackingViewQueryHandler {
	return GetTrackingViewQueryHandler{
		orderRepo:    orderRepo,
		trackingRepo: trackingRepo,
	}
}

// Handle executes the query. An order without a tracking record surfaces
// as ObjectNotFoundError; callers present it as "not yet trackable".
func (h GetTrackingViewQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingViewQuery,
) (services.TrackingView, error) {
	if err := query.Validate(); err != nil {
		return services.TrackingView{}, err
	}

	o, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return services.TrackingView{}, err
	}

	tr, err := h.trackingRepo.Get(ctx, query.OrderID())
	if err != nil {
		return services.TrackingView{}, err
	}

	return services.BuildTrackingView(o, tr, time.Now()), nil
}
