package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/core/ports"
)

// AdvanceStageCommandHandler moves an open session to its next stage
// after re-validating the current stage's exit gate server-side. The UI
// disables the control when the gate is unmet, but that is a convenience,
// not a security boundary.
type AdvanceStageCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewAdvanceStageCommandHandler creates a handler for stage advancement.
func NewAdvanceStageCommandHandler(sessionStore ports.SessionStore) AdvanceStageCommandHandler {
	return AdvanceStageCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the advance and returns the new stage.
func (h *AdvanceStageCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceStageCommand,
) (pickup.Stage, error) {
	if err := cmd.Validate(); err != nil {
		return pickup.StageUnknown, err
	}

	session, err := loadOwnedSession(ctx, h.sessionStore, cmd.SessionID(), cmd.PartnerID())
	if err != nil {
		return pickup.StageUnknown, err
	}

	stage, err := session.AdvanceStage(time.Now())
	if err != nil {
		return pickup.StageUnknown, err
	}

	if err = h.sessionStore.Save(ctx, session); err != nil {
		return pickup.StageUnknown, err
	}

	return stage, nil
}
