package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agrimarket/internal/core/domain/model/tracking"
	"agrimarket/internal/pkg/errs"
)

// TransitionOrderCommandHandler handles role-gated lifecycle transitions.
// When the order has a tracking record, each transition appends a history
// event, and reaching a terminal status freezes the record.
type TransitionOrderCommandHandler struct {
	uowFactory OrderTrackingUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderTrackingUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command. The order is persisted under an
// optimistic version check; a concurrent writer surfaces as ConflictError.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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
	if err = o.TransitionTo(cmd.Target(), cmd.Actor(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = h.recordTransition(ctx, uow, cmd, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *TransitionOrderCommandHandler) recordTransition(
	ctx context.Context,
	uow OrderTrackingUoW,
	cmd TransitionOrderCommand,
	now time.Time,
) error {
	trackingRepo := uow.TrackingRepository()
	tr, err := trackingRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		// Orders without an assigned partner have no record yet.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	event, err := tracking.NewEvent(fmt.Sprintf("order %s", cmd.Target()), "", now)
	if err != nil {
		return err
	}
	if err = tr.AppendEvent(event, now); err != nil {
		return err
	}

	if cmd.Target().IsTerminal() {
		tr.Freeze(now)
	}

	return trackingRepo.Update(ctx, tr)
}
