package queries

import (
	"context"
	"errors"

	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/model/tracking"
	"agrimarket/internal/core/domain/services"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// GetRoleViewQueryHandler loads an order snapshot and projects it for the
// asking identity. Customers and delivery partners may only view orders
// that are theirs; the remaining restriction happens inside the pure
// projection.
type GetRoleViewQueryHandler struct {
	orderRepo    ports.OrderRepository
	trackingRepo ports.TrackingRepository
}

// NewGetRoleViewQueryHandler creates a handler for role view queries.
func NewGetRoleViewQueryHandler(
	orderRepo ports.OrderRepository,
	trackingRepo ports.TrackingRepository,
) GetRoleViewQueryHandler {
	return GetRoleViewQueryHandler{
		orderRepo:    orderRepo,
		trackingRepo: trackingRepo,
	}
}

// Handle executes the query. A missing tracking record is not an error
// here; the view simply has no timeline yet.
func (h GetRoleViewQueryHandler) Handle(
	ctx context.Context,
	query GetRoleViewQuery,
) (services.RoleView, error) {
	if err := query.Validate(); err != nil {
		return services.RoleView{}, err
	}

	o, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return services.RoleView{}, err
	}

	if err = checkOwnership(o, query.Actor()); err != nil {
		return services.RoleView{}, err
	}

	var tr *tracking.Tracking
	tr, err = h.trackingRepo.Get(ctx, query.OrderID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return services.RoleView{}, err
		}
		tr = nil
	}

	return services.Project(o, tr, query.Actor())
}

func checkOwnership(o *order.Order, by actor.Actor) error {
	switch by.Role() {
	case actor.RoleCustomer:
		if !o.CustomerID().IsEqual(by.ID()) {
			return errs.NewForbiddenError(by.Role().String(), "view another customer's order")
		}
	case actor.RoleDeliveryPartner:
		if o.Partner() == nil || !o.Partner().IsEqual(by.ID()) {
			return errs.NewForbiddenError(by.Role().String(), "view an order assigned to another partner")
		}
	default:
	}
	return nil
}
