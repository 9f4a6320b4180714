package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/core/domain/model/tracking"
	"agrimarket/internal/core/ports"
)

// CompletePickupCommandHandler finishes a pickup session: it re-validates
// the completion gate, moves the order into transit under the version
// check, appends one tracking event summarizing the pickup, and discards
// the session. The order is re-read inside the transaction, so a
// cancellation that landed while the session was open surfaces as
// ConflictError from the aggregate.
type CompletePickupCommandHandler struct {
	uowFactory   OrderTrackingUoWFactory
	sessionStore ports.SessionStore
	etaWindow    time.Duration
}

// NewCompletePickupCommandHandler creates a handler for pickup completion.
// The etaWindow is added to the pickup time to produce the delivery
// estimate shown in tracking views.
func NewCompletePickupCommandHandler(
	uowFactory OrderTrackingUoWFactory,
	sessionStore ports.SessionStore,
	etaWindow time.Duration,
) CompletePickupCommandHandler {
	return CompletePickupCommandHandler{
		uowFactory:   uowFactory,
		sessionStore: sessionStore,
		etaWindow:    etaWindow,
	}
}

// Handle processes the completion.
func (h *CompletePickupCommandHandler) Handle(ctx context.Context, cmd CompletePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := loadOwnedSession(ctx, h.sessionStore, cmd.SessionID(), cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = session.CompletionGate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, session.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = o.ConfirmPickup(cmd.PartnerID(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	trackingRepo := uow.TrackingRepository()
	tr, err := trackingRepo.Get(ctx, session.OrderID())
	if err != nil {
		return err
	}

	event, err := tracking.NewEvent(pickupSummary(session), "warehouse", now)
	if err != nil {
		return err
	}
	if err = tr.AppendEvent(event, now); err != nil {
		return err
	}
	if err = tr.SetEstimatedDelivery(now.Add(h.etaWindow), now); err != nil {
		return err
	}
	if err = trackingRepo.Update(ctx, tr); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.sessionStore.Delete(ctx, session.ID())
}

// pickupSummary condenses the session into the single tracking event
// message the customer sees.
func pickupSummary(session *pickup.Session) string {
	verifications := session.Verifications()
	var notes []string
	for _, id := range session.LineItemIDs() {
		if v, ok := verifications[id]; ok && v.ConditionNote != "" {
			notes = append(notes, v.ConditionNote)
		}
	}

	summary := fmt.Sprintf(
		"pickup verified: %d items checked, %d photos captured",
		len(session.LineItemIDs()), len(session.PhotoRefs()),
	)
	if len(notes) > 0 {
		summary += "; notes: " + strings.Join(notes, "; ")
	}
	return summary
}
