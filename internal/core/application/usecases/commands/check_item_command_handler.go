package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/ports"
)

// CheckItemCommandHandler toggles one checklist item in an open session.
type CheckItemCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewCheckItemCommandHandler creates a handler for checklist toggles.
func NewCheckItemCommandHandler(sessionStore ports.SessionStore) CheckItemCommandHandler {
	return CheckItemCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the toggle.
func (h *CheckItemCommandHandler) Handle(ctx context.Context, cmd CheckItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := loadOwnedSession(ctx, h.sessionStore, cmd.SessionID(), cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = session.CheckItem(cmd.ItemID(), cmd.Checked(), time.Now()); err != nil {
		return err
	}

	return h.sessionStore.Save(ctx, session)
}
