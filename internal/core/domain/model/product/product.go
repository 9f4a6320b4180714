// Package product holds the catalog entity orders snapshot from.
// Orders copy name, unit, and price at creation time, so later edits to a
// product never rewrite historical orders.
package product

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created
// through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a farmer's catalog entry.
type Product struct {
	id       kernel.UUID
	farmerID kernel.UUID
	name     string
	unit     string
	price    kernel.Money
	active   bool

	isConstructed bool
}

// NewProduct creates an active product after validating all fields.
// Price must be strictly positive.
func NewProduct(id, farmerID kernel.UUID, name, unit string, price kernel.Money) (*Product, error) {
	p := &Product{active: true, isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setFarmerID(farmerID),
		p.setName(name),
		p.setUnit(unit),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence, including its
// active flag.
func RestoreProduct(id, farmerID kernel.UUID, name, unit string, price kernel.Money, active bool) (*Product, error) {
	p, err := NewProduct(id, farmerID, name, unit, price)
	if err != nil {
		return nil, err
	}
	p.active = active
	return p, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// FarmerID returns the supplying farmer's identity.
func (p *Product) FarmerID() kernel.UUID {
	return p.farmerID
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Unit returns the sales unit (e.g. "kg", "dozen").
func (p *Product) Unit() string {
	return p.unit
}

// Price returns the current catalog price per unit.
func (p *Product) Price() kernel.Money {
	return p.price
}

// IsActive reports whether the product can currently be ordered.
func (p *Product) IsActive() bool {
	return p.active
}

// Deactivate removes the product from sale without touching past orders.
func (p *Product) Deactivate() {
	p.active = false
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setFarmerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.farmerID = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("product unit")
	}
	p.unit = unit
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("product price must be greater than 0")
	}
	p.price = price
	return nil
}
