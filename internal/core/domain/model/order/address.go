package order

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

// ErrAddressIsNotConstructed indicates an Address was not created via
// NewAddress and is therefore an invalid zero value.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress",
)

// Address is the delivery destination value object. Street, city, and a
// contact phone are required; the postal code is optional.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	postalCode string
	phone      string

	guard guard.ConstructorGuard
}

// NewAddress creates a delivery address after validating required fields.
func NewAddress(street, city, postalCode, phone string) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}

	if err := a.setStreet(street); err != nil {
		return Address{}, err
	}
	if err := a.setCity(city); err != nil {
		return Address{}, err
	}
	if err := a.setPhone(phone); err != nil {
		return Address{}, err
	}
	a.postalCode = postalCode

	return a, nil
}

// Validate ensures the address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city. This is the only address component exposed to
// farmers (city-level delivery area).
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code, possibly empty.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Phone returns the contact phone number.
func (a Address) Phone() string {
	return a.phone
}

// String returns a single-line rendering for tracking events and logs.
func (a Address) String() string {
	if a.postalCode == "" {
		return fmt.Sprintf("%s, %s", a.street, a.city)
	}
	return fmt.Sprintf("%s, %s %s", a.street, a.city, a.postalCode)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}
