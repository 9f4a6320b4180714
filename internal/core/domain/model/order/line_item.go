package order

import (
	"fmt"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed indicates a LineItem was not created via
// NewLineItem and is therefore an invalid zero value.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem",
)

// LineItem is one ordered product position. It carries a snapshot of the
// product (name, unit, price at order time) so historical orders are
// immune to later catalog edits. Quantity and unit price must be strictly
// positive; the line total is always computed, never supplied.
type LineItem struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	farmerID    kernel.UUID
	productName string
	unit        string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item from a product snapshot.
func NewLineItem(
	productID, farmerID kernel.UUID,
	productName, unit string,
	quantity int,
	unitPrice kernel.Money,
) (LineItem, error) {
	li := LineItem{guard: guard.NewConstructorGuard()}

	if err := li.setProductID(productID); err != nil {
		return LineItem{}, err
	}
	if err := li.setFarmerID(farmerID); err != nil {
		return LineItem{}, err
	}
	if err := li.setProductName(productName); err != nil {
		return LineItem{}, err
	}
	if err := li.setUnit(unit); err != nil {
		return LineItem{}, err
	}
	if err := li.setQuantity(quantity); err != nil {
		return LineItem{}, err
	}
	if err := li.setUnitPrice(unitPrice); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

// Validate ensures the line item was created via NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// FarmerID returns the supplying farmer's identity, used by the farmer
// projection to filter line items.
func (li LineItem) FarmerID() kernel.UUID {
	return li.farmerID
}

// ProductName returns the product name at order time.
func (li LineItem) ProductName() string {
	return li.productName
}

// Unit returns the sales unit at order time.
func (li LineItem) Unit() string {
	return li.unit
}

// Quantity returns the ordered quantity (> 0).
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price per unit at order time (> 0).
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Total returns quantity × unit price.
func (li LineItem) Total() kernel.Money {
	return li.unitPrice.MulInt(li.quantity)
}

func (li *LineItem) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.productID = id
	return nil
}

func (li *LineItem) setFarmerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.farmerID = id
	return nil
}

func (li *LineItem) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	li.productName = name
	return nil
}

func (li *LineItem) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	li.unit = unit
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	li.unitPrice = price
	return nil
}
