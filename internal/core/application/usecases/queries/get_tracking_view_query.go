// Package queries contains read-only operations over the order store.
// Query handlers never mutate state; they load snapshots and run the pure
// projection services over them.
package queries

import (
	"errors"

	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var ErrGetTrackingViewQueryIsNotConstructed = errors.New(
	"GetTrackingViewQuery must be created via NewGetTrackingViewQuery constructor",
)

// GetTrackingViewQuery requests the customer-facing progress view of one
// order.
type GetTrackingViewQuery struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	viewerRole actor.Role

	guard guard.ConstructorGuard
}

// NewGetTrackingViewQuery creates a tracking view query.
func NewGetTrackingViewQuery(orderID kernel.UUID, viewerRole actor.Role) (GetTrackingViewQuery, error) {
	q := GetTrackingViewQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setViewerRole(viewerRole),
	); err != nil {
		return GetTrackingViewQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingViewQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingViewQueryIsNotConstructed)
}

// OrderID returns the order to project.
func (q GetTrackingViewQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ViewerRole returns who is asking.
func (q GetTrackingViewQuery) ViewerRole() actor.Role {
	return q.viewerRole
}

func (q *GetTrackingViewQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *GetTrackingViewQuery) setViewerRole(viewerRole actor.Role) error {
	if err := viewerRole.Validate(); err != nil {
		return err
	}
	q.viewerRole = viewerRole
	return nil
}
