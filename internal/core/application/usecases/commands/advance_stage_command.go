package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var ErrAdvanceStageCommandIsNotConstructed = errors.New(
	"AdvanceStageCommand must be created via NewAdvanceStageCommand constructor",
)

// AdvanceStageCommand represents a request to move an open pickup session
// to its next stage.
type AdvanceStageCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceStageCommand creates a stage advance command.
func NewAdvanceStageCommand(sessionID, partnerID kernel.UUID) (AdvanceStageCommand, error) {
	cmd := AdvanceStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return AdvanceStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStageCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c AdvanceStageCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// PartnerID returns the acting delivery partner.
func (c AdvanceStageCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *AdvanceStageCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *AdvanceStageCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
