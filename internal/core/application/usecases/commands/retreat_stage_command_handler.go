package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/core/ports"
)

// RetreatStageCommandHandler moves an open session back one stage.
// Backward navigation needs no gate; recorded state is kept.
type RetreatStageCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewRetreatStageCommandHandler creates a handler for stage retreat.
func NewRetreatStageCommandHandler(sessionStore ports.SessionStore) RetreatStageCommandHandler {
	return RetreatStageCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the retreat and returns the new stage.
func (h *RetreatStageCommandHandler) Handle(
	ctx context.Context,
	cmd RetreatStageCommand,
) (pickup.Stage, error) {
	if err := cmd.Validate(); err != nil {
		return pickup.StageUnknown, err
	}

	session, err := loadOwnedSession(ctx, h.sessionStore, cmd.SessionID(), cmd.PartnerID())
	if err != nil {
		return pickup.StageUnknown, err
	}

	stage, err := session.RetreatStage(time.Now())
	if err != nil {
		return pickup.StageUnknown, err
	}

	if err = h.sessionStore.Save(ctx, session); err != nil {
		return pickup.StageUnknown, err
	}

	return stage, nil
}
