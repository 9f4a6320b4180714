package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var ErrCapturePhotoCommandIsNotConstructed = errors.New(
	"CapturePhotoCommand must be created via NewCapturePhotoCommand constructor",
)

// CapturePhotoCommand represents a photo evidence capture in an open
// pickup session.
type CapturePhotoCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCapturePhotoCommand creates a photo capture command.
func NewCapturePhotoCommand(sessionID, partnerID kernel.UUID) (CapturePhotoCommand, error) {
	cmd := CapturePhotoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return CapturePhotoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CapturePhotoCommand) Validate() error {
	return c.guard.Validate(ErrCapturePhotoCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c CapturePhotoCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// PartnerID returns the acting delivery partner.
func (c CapturePhotoCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *CapturePhotoCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *CapturePhotoCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
