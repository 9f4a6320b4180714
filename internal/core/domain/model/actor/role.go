// Package actor defines the explicit role model of the marketplace.
// A role is resolved once at session start and carried through every core
// call; the core never re-derives it from storage probing.
package actor

import (
	"fmt"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
)

// Role is the tagged union of marketplace participants.
type Role int

const (
	// RoleUnknown catches uninitialized Role values (invalid).
	RoleUnknown Role = iota

	// RoleCustomer places orders and may cancel them before pickup.
	RoleCustomer

	// RoleFarmer supplies products; sees only their own line items.
	RoleFarmer

	// RoleWarehouse prepares orders and hands them to delivery partners.
	RoleWarehouse

	// RoleDeliveryPartner picks up and delivers assigned orders.
	RoleDeliveryPartner

	// RoleAdmin has unrestricted access.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "unknown",
		RoleCustomer:        "customer",
		RoleFarmer:          "farmer",
		RoleWarehouse:       "warehouse",
		RoleDeliveryPartner: "delivery_partner",
		RoleAdmin:           "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:        "customer",
		RoleFarmer:          "farmer",
		RoleWarehouse:       "warehouse",
		RoleDeliveryPartner: "delivery_partner",
		RoleAdmin:           "admin",
	}
}

// RoleFromString parses the wire form of a role ("customer", "farmer",
// "warehouse", "delivery_partner", "admin").
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a known role", s),
	)
}

// Validate checks the Role is one of the five defined participants.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire form of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Actor pairs a resolved role with the identity it acts as.
type Actor struct {
	role Role
	id   kernel.UUID
}

// NewActor creates an Actor after validating both the role and identity.
func NewActor(role Role, id kernel.UUID) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, id: id}, nil
}

// Role returns the actor's resolved role.
func (a Actor) Role() Role {
	return a.role
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Validate ensures the actor carries a valid role and identity.
func (a Actor) Validate() error {
	if err := a.role.Validate(); err != nil {
		return err
	}
	return a.id.Validate()
}
