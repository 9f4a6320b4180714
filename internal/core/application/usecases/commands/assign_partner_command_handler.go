package commands

import (
	"context"
	"errors"
	"time"

	"agrimarket/internal/core/domain/model/tracking"
	"agrimarket/internal/pkg/errs"
)

// AssignPartnerCommandHandler attaches a delivery partner to an order and
// creates the order's tracking record if it does not exist yet.
type AssignPartnerCommandHandler struct {
	uowFactory OrderTrackingUoWFactory
}

// NewAssignPartnerCommandHandler creates a handler for partner assignment.
func NewAssignPartnerCommandHandler(uowFactory OrderTrackingUoWFactory) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment. Assignment is legal only while the
// order is processing or ready_for_pickup; a second assignment surfaces
// as ConflictError from the aggregate.
func (h *AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = o.AssignPartner(cmd.PartnerID(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = h.ensureTracking(ctx, uow, cmd, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *AssignPartnerCommandHandler) ensureTracking(
	ctx context.Context,
	uow OrderTrackingUoW,
	cmd AssignPartnerCommand,
	now time.Time,
) error {
	trackingRepo := uow.TrackingRepository()
	if _, err := trackingRepo.Get(ctx, cmd.OrderID()); err == nil {
		return nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	tr, err := tracking.NewTracking(cmd.OrderID(), now)
	if err != nil {
		return err
	}

	event, err := tracking.NewEvent("delivery partner assigned", "", now)
	if err != nil {
		return err
	}
	if err = tr.AppendEvent(event, now); err != nil {
		return err
	}

	return trackingRepo.Add(ctx, tr)
}
