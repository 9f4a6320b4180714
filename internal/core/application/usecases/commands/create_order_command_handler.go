package commands

import (
	"context"
	"time"

	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/pkg/errs"
)

// CreateOrderCommandHandler handles checkout. It resolves cart entries
// against the product catalog, prices the order server-side, and persists
// it in pending status.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	policy     order.PricingPolicy
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	policy order.PricingPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the checkout command. Every cart entry must resolve to
// an active catalog product; prices and the farmer attribution come from
// the catalog, never from the caller.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	productRepo := uow.ProductRepository()
	lineItems := make([]order.LineItem, 0, len(cmd.Cart()))
	for _, entry := range cmd.Cart() {
		p, err := productRepo.Get(ctx, entry.ProductID)
		if err != nil {
			return err
		}
		if !p.IsActive() {
			return errs.NewObjectNotFoundError("product", entry.ProductID)
		}

		lineItem, err := order.NewLineItem(
			p.ID(), p.FarmerID(), p.Name(), p.Unit(), entry.Quantity, p.Price())
		if err != nil {
			return err
		}
		lineItems = append(lineItems, lineItem)
	}

	address, err := order.NewAddress(cmd.Street(), cmd.City(), cmd.PostalCode(), cmd.Phone())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), lineItems, address,
		cmd.Instructions(), cmd.PaymentMethod(), h.policy, time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
