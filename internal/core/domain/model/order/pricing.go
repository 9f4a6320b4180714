package order

import (
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingPolicy computes the monetary breakdown of an order server-side.
// Client-supplied totals are never trusted: subtotal, fee, tax, and total
// are always recomputed from line items and this policy.
//
// Rules:
//   - delivery fee is waived when the subtotal reaches FreeDeliveryThreshold
//   - a flat CODFee is added to the delivery fee for cash_on_delivery orders
//   - tax = TaxRate × subtotal, rounded to two decimals
//   - total = subtotal + tax + fee
type PricingPolicy struct {
	taxRate               decimal.Decimal
	deliveryFee           kernel.Money
	freeDeliveryThreshold kernel.Money
	codFee                kernel.Money
}

// NewPricingPolicy creates a pricing policy. The tax rate must lie in
// [0, 1); fees must be non-negative (enforced by kernel.Money).
func NewPricingPolicy(
	taxRate decimal.Decimal,
	deliveryFee, freeDeliveryThreshold, codFee kernel.Money,
) (PricingPolicy, error) {
	if taxRate.IsNegative() || taxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return PricingPolicy{}, errs.NewValueIsOutOfRangeError("taxRate", taxRate.String(), "0", "1")
	}
	return PricingPolicy{
		taxRate:               taxRate,
		deliveryFee:           deliveryFee,
		freeDeliveryThreshold: freeDeliveryThreshold,
		codFee:                codFee,
	}, nil
}

// DefaultPricingPolicy returns the marketplace defaults: 5% tax, 50.00
// delivery fee waived at 500.00, 20.00 cash handling fee.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		taxRate:               decimal.NewFromFloat(0.05),
		deliveryFee:           kernel.MustMoney("50"),
		freeDeliveryThreshold: kernel.MustMoney("500"),
		codFee:                kernel.MustMoney("20"),
	}
}

// Quote is the priced breakdown of an order.
type Quote struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Tax         kernel.Money
	Total       kernel.Money
}

// Price computes the quote for a set of line items and a payment method.
func (p PricingPolicy) Price(items []LineItem, method PaymentMethod) Quote {
	subtotal := kernel.Zero()
	for _, li := range items {
		subtotal = subtotal.Add(li.Total())
	}

	fee := p.deliveryFee
	if subtotal.GreaterThanOrEqual(p.freeDeliveryThreshold) {
		fee = kernel.Zero()
	}
	if method == PaymentCashOnDelivery {
		fee = fee.Add(p.codFee)
	}

	tax := subtotal.MulRate(p.taxRate)

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal.Add(tax).Add(fee),
	}
}
