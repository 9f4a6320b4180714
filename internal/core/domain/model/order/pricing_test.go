package order_test

import (
	"testing"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, name, unit string, qty int, price string) order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(), name, unit, qty, kernel.MustMoney(price),
	)
	require.NoError(t, err)
	return li
}

func TestPricingPolicy_Price(t *testing.T) {
	policy := order.DefaultPricingPolicy()

	t.Run("cash on delivery order: 2kg rice at 75 plus 1kg tomato at 25", func(t *testing.T) {
		items := []order.LineItem{
			mustLineItem(t, "Rice", "kg", 2, "75"),
			mustLineItem(t, "Tomato", "kg", 1, "25"),
		}

		q := policy.Price(items, order.PaymentCashOnDelivery)

		assert.True(t, q.Subtotal.IsEqual(kernel.MustMoney("175")), "subtotal %s", q.Subtotal)
		// 50 delivery fee (below the 500 waiver) + 20 cash handling fee
		assert.True(t, q.DeliveryFee.IsEqual(kernel.MustMoney("70")), "fee %s", q.DeliveryFee)
		assert.True(t, q.Tax.IsEqual(kernel.MustMoney("8.75")), "tax %s", q.Tax)
		assert.True(t, q.Total.IsEqual(q.Subtotal.Add(q.Tax).Add(q.DeliveryFee)))
		assert.True(t, q.Total.IsEqual(kernel.MustMoney("253.75")), "total %s", q.Total)
	})

	t.Run("delivery fee waived above the threshold", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, "Potato", "kg", 20, "30")}

		q := policy.Price(items, order.PaymentOnline)

		assert.True(t, q.Subtotal.IsEqual(kernel.MustMoney("600")))
		assert.True(t, q.DeliveryFee.IsZero())
		assert.True(t, q.Total.IsEqual(q.Subtotal.Add(q.Tax)))
	})

	t.Run("waived delivery still charges the cash handling fee", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, "Potato", "kg", 20, "30")}

		q := policy.Price(items, order.PaymentCashOnDelivery)

		assert.True(t, q.DeliveryFee.IsEqual(kernel.MustMoney("20")))
	})

	t.Run("online payment below threshold pays only the delivery fee", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, "Okra", "kg", 1, "40")}

		q := policy.Price(items, order.PaymentOnline)

		assert.True(t, q.DeliveryFee.IsEqual(kernel.MustMoney("50")))
	})
}

func TestNewPricingPolicy(t *testing.T) {
	t.Run("rejects tax rate outside [0,1)", func(t *testing.T) {
		_, err := order.NewPricingPolicy(
			decimal.NewFromInt(1),
			kernel.Zero(), kernel.Zero(), kernel.Zero(),
		)
		require.Error(t, err)

		_, err = order.NewPricingPolicy(
			decimal.NewFromFloat(-0.1),
			kernel.Zero(), kernel.Zero(), kernel.Zero(),
		)
		require.Error(t, err)
	})

	t.Run("accepts zero tax", func(t *testing.T) {
		_, err := order.NewPricingPolicy(
			decimal.Zero,
			kernel.MustMoney("50"), kernel.MustMoney("500"), kernel.MustMoney("20"),
		)
		require.NoError(t, err)
	})
}
