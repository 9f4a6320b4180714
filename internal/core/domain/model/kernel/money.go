package kernel

import (
	"fmt"

	"agrimarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts (prices, fees, totals).
// It wraps shopspring/decimal so arithmetic on order totals never suffers
// binary floating-point drift. Amounts are non-negative; negative values
// are rejected at construction.
//
// Money is immutable: arithmetic methods return new values.
type Money struct {
	amount decimal.Decimal
}

// Zero is the zero amount. Unlike most kernel types the zero value of
// Money is valid and equal to Zero().
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error for negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a Money from its decimal string form
// (e.g. "75.00"). Used when reconstructing from persistence and when
// accepting prices from configuration.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MustMoney parses a Money and panics on failure. Intended for constants
// and tests only.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// MulRate returns the amount multiplied by a fractional rate (e.g. a tax
// rate of 0.05), rounded to two decimal places.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(2)}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// IsEqual reports whether two amounts are numerically equal
// ("10" equals "10.00").
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the fixed two-decimal representation, e.g. "175.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
