package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/ports"
)

// CaptureSignatureCommandHandler marks the handover signature captured in
// an open session.
type CaptureSignatureCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewCaptureSignatureCommandHandler creates a handler for signature captures.
func NewCaptureSignatureCommandHandler(sessionStore ports.SessionStore) CaptureSignatureCommandHandler {
	return CaptureSignatureCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the capture.
func (h *CaptureSignatureCommandHandler) Handle(ctx context.Context, cmd CaptureSignatureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := loadOwnedSession(ctx, h.sessionStore, cmd.SessionID(), cmd.PartnerID())
	if err != nil {
		return err
	}

	session.CaptureSignature(time.Now())

	return h.sessionStore.Save(ctx, session)
}
