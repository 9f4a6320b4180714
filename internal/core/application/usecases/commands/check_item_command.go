package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrCheckItemCommandIsNotConstructed = errors.New(
	"CheckItemCommand must be created via NewCheckItemCommand constructor",
)

// CheckItemCommand represents a checklist item toggle within an open
// pickup session.
type CheckItemCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	partnerID kernel.UUID
	itemID    string
	checked   bool

	guard guard.ConstructorGuard
}

// NewCheckItemCommand creates a checklist toggle command.
func NewCheckItemCommand(
	sessionID, partnerID kernel.UUID,
	itemID string,
	checked bool,
) (CheckItemCommand, error) {
	cmd := CheckItemCommand{
		checked: checked,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPartnerID(partnerID),
		cmd.setItemID(itemID),
	); err != nil {
		return CheckItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckItemCommand) Validate() error {
	return c.guard.Validate(ErrCheckItemCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c CheckItemCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// PartnerID returns the acting delivery partner.
func (c CheckItemCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// ItemID returns the checklist item to toggle.
func (c CheckItemCommand) ItemID() string {
	return c.itemID
}

// Checked returns the requested item state.
func (c CheckItemCommand) Checked() bool {
	return c.checked
}

func (c *CheckItemCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *CheckItemCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *CheckItemCommand) setItemID(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("itemID")
	}
	c.itemID = itemID
	return nil
}
