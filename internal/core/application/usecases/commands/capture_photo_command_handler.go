package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/ports"
)

// CapturePhotoCommandHandler registers photo evidence in an open session
// and returns the minted evidence reference.
type CapturePhotoCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewCapturePhotoCommandHandler creates a handler for photo captures.
func NewCapturePhotoCommandHandler(sessionStore ports.SessionStore) CapturePhotoCommandHandler {
	return CapturePhotoCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the capture and returns the evidence reference.
func (h *CapturePhotoCommandHandler) Handle(
	ctx context.Context,
	cmd CapturePhotoCommand,
) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	session, err := loadOwnedSession(ctx, h.sessionStore, cmd.SessionID(), cmd.PartnerID())
	if err != nil {
		return "", err
	}

	ref := session.CapturePhoto(time.Now())

	if err = h.sessionStore.Save(ctx, session); err != nil {
		return "", err
	}

	return ref, nil
}
