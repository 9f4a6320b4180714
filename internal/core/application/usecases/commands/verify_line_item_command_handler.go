package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/ports"
)

// VerifyLineItemCommandHandler records a line item verdict in an open
// session.
type VerifyLineItemCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewVerifyLineItemCommandHandler creates a handler for line item verification.
func NewVerifyLineItemCommandHandler(sessionStore ports.SessionStore) VerifyLineItemCommandHandler {
	return VerifyLineItemCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the verdict.
func (h *VerifyLineItemCommandHandler) Handle(ctx context.Context, cmd VerifyLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := loadOwnedSession(ctx, h.sessionStore, cmd.SessionID(), cmd.PartnerID())
	if err != nil {
		return err
	}

	err = session.VerifyLineItem(cmd.LineItemID(), cmd.Verified(), cmd.ConditionNote(), time.Now())
	if err != nil {
		return err
	}

	return h.sessionStore.Save(ctx, session)
}
