package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var ErrCaptureSignatureCommandIsNotConstructed = errors.New(
	"CaptureSignatureCommand must be created via NewCaptureSignatureCommand constructor",
)

// CaptureSignatureCommand represents the handover signature capture in an
// open pickup session.
type CaptureSignatureCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCaptureSignatureCommand creates a signature capture command.
func NewCaptureSignatureCommand(sessionID, partnerID kernel.UUID) (CaptureSignatureCommand, error) {
	cmd := CaptureSignatureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return CaptureSignatureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CaptureSignatureCommand) Validate() error {
	return c.guard.Validate(ErrCaptureSignatureCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c CaptureSignatureCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// PartnerID returns the acting delivery partner.
func (c CaptureSignatureCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *CaptureSignatureCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *CaptureSignatureCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
