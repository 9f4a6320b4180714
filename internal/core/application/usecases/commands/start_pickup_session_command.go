package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var ErrStartPickupSessionCommandIsNotConstructed = errors.New(
	"StartPickupSessionCommand must be created via NewStartPickupSessionCommand constructor",
)

// StartPickupSessionCommand represents a delivery partner's request to
// open a pickup verification session for an order.
type StartPickupSessionCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartPickupSessionCommand creates a session-open command.
func NewStartPickupSessionCommand(orderID, partnerID kernel.UUID) (StartPickupSessionCommand, error) {
	cmd := StartPickupSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return StartPickupSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPickupSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartPickupSessionCommandIsNotConstructed)
}

// OrderID returns the order to verify.
func (c StartPickupSessionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the delivery partner opening the session.
func (c StartPickupSessionCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *StartPickupSessionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StartPickupSessionCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
