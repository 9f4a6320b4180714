package queries

import (
	"errors"

	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var ErrGetRoleViewQueryIsNotConstructed = errors.New(
	"GetRoleViewQuery must be created via NewGetRoleViewQuery constructor",
)

// GetRoleViewQuery requests the role-restricted slice of one order for an
// acting identity.
type GetRoleViewQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewGetRoleViewQuery creates a role view query.
func NewGetRoleViewQuery(orderID kernel.UUID, by actor.Actor) (GetRoleViewQuery, error) {
	q := GetRoleViewQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setActor(by),
	); err != nil {
		return GetRoleViewQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRoleViewQuery) Validate() error {
	return q.guard.Validate(ErrGetRoleViewQueryIsNotConstructed)
}

// OrderID returns the order to project.
func (q GetRoleViewQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns who is asking.
func (q GetRoleViewQuery) Actor() actor.Actor {
	return q.by
}

func (q *GetRoleViewQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *GetRoleViewQuery) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	q.by = by
	return nil
}
