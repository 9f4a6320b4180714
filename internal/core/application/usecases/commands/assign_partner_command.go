package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents a request to attach a delivery partner
// to an order.
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a partner assignment command.
func NewAssignPartnerCommand(orderID, partnerID kernel.UUID) (AssignPartnerCommand, error) {
	cmd := AssignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return AssignPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignPartnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the delivery partner to attach.
func (c AssignPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *AssignPartnerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
