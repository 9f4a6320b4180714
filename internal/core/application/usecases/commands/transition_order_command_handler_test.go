package commands_test

import (
	"testing"
	"time"

	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/model/tracking"
	"agrimarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	o := newPendingOrder(t)
	cmd, err := commands.NewTransitionOrderCommand(
		o.ID(), order.StatusConfirmed, mustActor(t, actor.RoleWarehouse))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockOrderTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*order.Order)
				require.Equal(t, order.StatusConfirmed, updated.Status())
			}).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		// No partner assigned yet, so no record exists.
		trackingRepo.On("Get", mock.Anything, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("tracking", o.ID())).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_AppendsTrackingEvent(t *testing.T) {
	ctx := t.Context()

	o, partnerID := newReadyOrder(t)
	partner, err := actor.NewActor(actor.RoleDeliveryPartner, partnerID)
	require.NoError(t, err)
	require.NoError(t, o.ConfirmPickup(partnerID, time.Now()))

	tr, err := tracking.NewTracking(o.ID(), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewTransitionOrderCommand(o.ID(), order.StatusDelivered, partner)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockOrderTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Get", mock.Anything, o.ID()).Return(tr, nil).Once(),
		trackingRepo.On("Update", mock.Anything, mock.AnythingOfType("*tracking.Tracking")).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*tracking.Tracking)
				require.Len(t, updated.Events(), 1)
				require.Equal(t, "order delivered", updated.Events()[0].Message())
				require.True(t, updated.IsFrozen())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	trackingRepo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_ForbiddenRole(t *testing.T) {
	ctx := t.Context()

	o := newPendingOrder(t)
	cmd, err := commands.NewTransitionOrderCommand(
		o.ID(), order.StatusConfirmed, mustActor(t, actor.RoleCustomer))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	require.Equal(t, order.StatusPending, o.Status())
}

func TestTransitionOrderCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()

	o := newPendingOrder(t)
	cmd, err := commands.NewTransitionOrderCommand(
		o.ID(), order.StatusConfirmed, mustActor(t, actor.RoleWarehouse))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errs.NewConflictError("order", "version check failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestTransitionOrderCommandHandler_Handle_DirectInTransitIsForbidden(t *testing.T) {
	ctx := t.Context()

	o, _ := newReadyOrder(t)
	cmd, err := commands.NewTransitionOrderCommand(
		o.ID(), order.StatusInTransit, mustActor(t, actor.RoleAdmin))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
}
