package commands_test

import (
	"testing"
	"time"

	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(role, kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func newTestProduct(t *testing.T, name, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(), name, "kg", kernel.MustMoney(price))
	require.NoError(t, err)
	return p
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(), "Rice", "kg", 2, kernel.MustMoney("75"))
	require.NoError(t, err)

	address, err := order.NewAddress("12 Market Rd", "Pune", "411001", "+91 98200 00000")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, address,
		"", order.PaymentCashOnDelivery, order.DefaultPricingPolicy(), time.Now(),
	)
	require.NoError(t, err)
	return o
}

// newReadyOrder walks a fresh order to ready_for_pickup with a partner
// assigned and returns both.
func newReadyOrder(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()

	o := newPendingOrder(t)
	warehouse := mustActor(t, actor.RoleWarehouse)
	now := time.Now()

	require.NoError(t, o.TransitionTo(order.StatusConfirmed, warehouse, now))
	require.NoError(t, o.TransitionTo(order.StatusProcessing, warehouse, now))

	partnerID := kernel.NewUUID()
	require.NoError(t, o.AssignPartner(partnerID, now))
	require.NoError(t, o.TransitionTo(order.StatusReadyForPickup, warehouse, now))

	return o, partnerID
}

// newCompletedSession builds a session for the order that satisfies the
// completion gate.
func newCompletedSession(t *testing.T, o *order.Order, partnerID kernel.UUID) *pickup.Session {
	t.Helper()

	now := time.Now()
	lineItemIDs := make([]kernel.UUID, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		lineItemIDs = append(lineItemIDs, li.ProductID())
	}

	s, err := pickup.NewSession(o.ID(), partnerID, lineItemIDs, now)
	require.NoError(t, err)

	for _, item := range pickup.ChecklistItemsForStage(pickup.StageLocation) {
		require.NoError(t, s.CheckItem(item.ID, true, now))
	}
	_, err = s.AdvanceStage(now)
	require.NoError(t, err)

	for _, item := range pickup.ChecklistItemsForStage(pickup.StageVerification) {
		require.NoError(t, s.CheckItem(item.ID, true, now))
	}
	for _, id := range lineItemIDs {
		require.NoError(t, s.VerifyLineItem(id, true, "good condition", now))
		s.CapturePhoto(now)
	}
	_, err = s.AdvanceStage(now)
	require.NoError(t, err)

	for _, item := range pickup.ChecklistItemsForStage(pickup.StageConfirmation) {
		require.NoError(t, s.CheckItem(item.ID, true, now))
	}
	s.CaptureSignature(now)
	require.NoError(t, s.CompletionGate())

	return s
}
