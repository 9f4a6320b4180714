package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var ErrCompletePickupCommandIsNotConstructed = errors.New(
	"CompletePickupCommand must be created via NewCompletePickupCommand constructor",
)

// CompletePickupCommand represents a request to finish a pickup session
// and move the order into transit.
type CompletePickupCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompletePickupCommand creates a pickup completion command.
func NewCompletePickupCommand(sessionID, partnerID kernel.UUID) (CompletePickupCommand, error) {
	cmd := CompletePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return CompletePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickupCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickupCommandIsNotConstructed)
}

// SessionID returns the session to complete.
func (c CompletePickupCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// PartnerID returns the acting delivery partner.
func (c CompletePickupCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *CompletePickupCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *CompletePickupCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
