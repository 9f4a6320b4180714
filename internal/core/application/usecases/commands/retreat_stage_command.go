package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var ErrRetreatStageCommandIsNotConstructed = errors.New(
	"RetreatStageCommand must be created via NewRetreatStageCommand constructor",
)

// RetreatStageCommand represents a request to move an open pickup session
// back to its previous stage.
type RetreatStageCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetreatStageCommand creates a stage retreat command.
func NewRetreatStageCommand(sessionID, partnerID kernel.UUID) (RetreatStageCommand, error) {
	cmd := RetreatStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return RetreatStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RetreatStageCommand) Validate() error {
	return c.guard.Validate(ErrRetreatStageCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c RetreatStageCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// PartnerID returns the acting delivery partner.
func (c RetreatStageCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *RetreatStageCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *RetreatStageCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
