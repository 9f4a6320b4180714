package commands

import (
	"context"
	"errors"
	"time"

	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// StartPickupSessionCommandHandler opens a pickup verification session.
// A stale session left behind by an earlier attempt is discarded; nothing
// it recorded ever reached the order.
type StartPickupSessionCommandHandler struct {
	uowFactory   OrderUoWFactory
	sessionStore ports.SessionStore
}

// NewStartPickupSessionCommandHandler creates a handler for opening pickup sessions.
func NewStartPickupSessionCommandHandler(
	uowFactory OrderUoWFactory,
	sessionStore ports.SessionStore,
) StartPickupSessionCommandHandler {
	return StartPickupSessionCommandHandler{
		uowFactory:   uowFactory,
		sessionStore: sessionStore,
	}
}

// Handle opens the session. The order must be ready_for_pickup and the
// opener must be its assigned delivery partner.
func (h *StartPickupSessionCommandHandler) Handle(
	ctx context.Context,
	cmd StartPickupSessionCommand,
) (*pickup.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.loadOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if o.Status() != order.StatusReadyForPickup {
		return nil, errs.NewInvalidTransitionError(
			o.Status().String(), order.StatusInTransit.String())
	}
	if o.Partner() == nil || !o.Partner().IsEqual(cmd.PartnerID()) {
		return nil, errs.NewForbiddenError(
			actor.RoleDeliveryPartner.String(),
			"open a pickup session for an order assigned to another partner",
		)
	}

	if err = h.discardStale(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	lineItemIDs := make([]kernel.UUID, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		lineItemIDs = append(lineItemIDs, li.ProductID())
	}

	session, err := pickup.NewSession(cmd.OrderID(), cmd.PartnerID(), lineItemIDs, time.Now())
	if err != nil {
		return nil, err
	}

	if err = h.sessionStore.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (h *StartPickupSessionCommandHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().Get(ctx, orderID)
}

func (h *StartPickupSessionCommandHandler) discardStale(
	ctx context.Context,
	orderID kernel.UUID,
) error {
	stale, err := h.sessionStore.GetByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	return h.sessionStore.Delete(ctx, stale.ID())
}
