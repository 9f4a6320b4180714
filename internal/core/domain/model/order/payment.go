package order

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order.
type PaymentMethod int

const (
	// PaymentMethodUnknown catches uninitialized values (invalid).
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentCashOnDelivery settles in cash when the order is delivered.
	// It attracts a flat handling fee (see PricingPolicy).
	PaymentCashOnDelivery

	// PaymentOnline settles through the payment gateway at checkout.
	PaymentOnline
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentCashOnDelivery: "cash_on_delivery",
		PaymentOnline:         "online",
	}
}

// PaymentMethodFromString parses "cash_on_delivery" or "online".
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, str := range getPaymentMethodStrings() {
		if str == s {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a known payment method", s),
	)
}

// Validate checks the method is one of the defined options.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire form of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus tracks settlement of the order total.
type PaymentStatus int

const (
	// PaymentStatusUnknown catches uninitialized values (invalid).
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means no money has changed hands yet.
	PaymentPending

	// PaymentPaid means the total has been collected.
	PaymentPaid

	// PaymentRefunded means a paid order was cancelled and refunded.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses "pending", "paid", or "refunded".
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for st, str := range getPaymentStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a known payment status", s),
	)
}

// Validate checks the payment status is one of the defined states.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the wire form of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
