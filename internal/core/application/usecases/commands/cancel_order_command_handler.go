package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agrimarket/internal/core/domain/model/tracking"
	"agrimarket/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order, records the reason, and
// freezes the tracking record if one exists. Racing against a concurrent
// pickup completion is resolved by the order version check: the loser
// gets ConflictError.
type CancelOrderCommandHandler struct {
	uowFactory OrderTrackingUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderTrackingUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if err = o.Cancel(cmd.Reason(), cmd.Actor(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = h.freezeTracking(ctx, uow, cmd, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CancelOrderCommandHandler) freezeTracking(
	ctx context.Context,
	uow OrderTrackingUoW,
	cmd CancelOrderCommand,
	now time.Time,
) error {
	trackingRepo := uow.TrackingRepository()
	tr, err := trackingRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	event, err := tracking.NewEvent(fmt.Sprintf("order cancelled: %s", cmd.Reason()), "", now)
	if err != nil {
		return err
	}
	if err = tr.AppendEvent(event, now); err != nil {
		return err
	}
	tr.Freeze(now)

	return trackingRepo.Update(ctx, tr)
}
