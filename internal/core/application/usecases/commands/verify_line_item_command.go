package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var ErrVerifyLineItemCommandIsNotConstructed = errors.New(
	"VerifyLineItemCommand must be created via NewVerifyLineItemCommand constructor",
)

// VerifyLineItemCommand represents a partner's verdict on one order line
// item during the verification stage.
type VerifyLineItemCommand struct { //nolint:recvcheck //using for validation
	sessionID     kernel.UUID
	partnerID     kernel.UUID
	lineItemID    kernel.UUID
	verified      bool
	conditionNote string

	guard guard.ConstructorGuard
}

// NewVerifyLineItemCommand creates a line item verification command. The
// condition note is optional.
func NewVerifyLineItemCommand(
	sessionID, partnerID, lineItemID kernel.UUID,
	verified bool,
	conditionNote string,
) (VerifyLineItemCommand, error) {
	cmd := VerifyLineItemCommand{
		verified:      verified,
		conditionNote: conditionNote,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPartnerID(partnerID),
		cmd.setLineItemID(lineItemID),
	); err != nil {
		return VerifyLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyLineItemCommand) Validate() error {
	return c.guard.Validate(ErrVerifyLineItemCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c VerifyLineItemCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// PartnerID returns the acting delivery partner.
func (c VerifyLineItemCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// LineItemID returns the line item under verification.
func (c VerifyLineItemCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

// Verified returns the verdict.
func (c VerifyLineItemCommand) Verified() bool {
	return c.verified
}

// ConditionNote returns the free-text condition note, possibly empty.
func (c VerifyLineItemCommand) ConditionNote() string {
	return c.conditionNote
}

func (c *VerifyLineItemCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *VerifyLineItemCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *VerifyLineItemCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}
	c.lineItemID = lineItemID
	return nil
}
