package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CartItem is one checkout cart entry: a product reference and how many
// units of it the customer wants.
type CartItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a checkout request: the customer, their
// cart, the delivery address, and the payment method. Prices are looked
// up server-side; the command never carries money.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	cart       []CartItem

	street     string
	city       string
	postalCode string
	phone      string

	instructions  string
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. The cart must be
// non-empty with positive quantities, the address must carry a street,
// city, and phone, and the payment method must be known.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	cart []CartItem,
	street, city, postalCode, phone string,
	instructions string,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		street:       street,
		city:         city,
		postalCode:   postalCode,
		phone:        phone,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setCart(cart),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier minted for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identity.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Cart returns a copy of the cart entries.
func (c CreateOrderCommand) Cart() []CartItem {
	return append([]CartItem(nil), c.cart...)
}

// Street returns the delivery street address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// City returns the delivery city.
func (c CreateOrderCommand) City() string {
	return c.city
}

// PostalCode returns the delivery postal code, possibly empty.
func (c CreateOrderCommand) PostalCode() string {
	return c.postalCode
}

// Phone returns the customer's contact number.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Instructions returns the customer's special instructions, possibly empty.
func (c CreateOrderCommand) Instructions() string {
	return c.instructions
}

// PaymentMethod returns how the order will be paid.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCart(cart []CartItem) error {
	if len(cart) == 0 {
		return errs.NewValueIsRequiredError("cart")
	}
	for _, item := range cart {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}
	c.cart = append([]CartItem(nil), cart...)
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
