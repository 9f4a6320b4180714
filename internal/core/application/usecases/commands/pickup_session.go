package commands

import (
	"context"

	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// loadOwnedSession fetches a pickup session and enforces that the caller
// is the partner who opened it. An open session is never mutated by any
// other actor.
func loadOwnedSession(
	ctx context.Context,
	store ports.SessionStore,
	sessionID, partnerID kernel.UUID,
) (*pickup.Session, error) {
	session, err := store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.PartnerID().IsEqual(partnerID) {
		return nil, errs.NewForbiddenError(
			actor.RoleDeliveryPartner.String(),
			"modify a pickup session opened by another partner",
		)
	}

	return session, nil
}
