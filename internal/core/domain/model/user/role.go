package user

import (
	"fmt"

	"entregaloya/internal/pkg/errs"
)

// Role distinguishes the two kinds of accounts in the marketplace.
// Customers ("cliente") place orders; businesses ("negocio") own a catalog
// and answer orders. A user's role is fixed at registration.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer places orders against businesses.
	Customer

	// Business owns exactly one business entity and its product catalog.
	Business
)

// roleStrings maps roles to their wire representation. The Spanish names
// are the public API contract inherited by every client.
func roleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "desconocido",
		Customer:    "cliente",
		Business:    "negocio",
	}
}

func validRoleStrings() map[Role]string {
	return map[Role]string{
		Customer: "cliente",
		Business: "negocio",
	}
}

// Validate checks that the role is one of the two valid account kinds.
func (r Role) Validate() error {
	if _, ok := validRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role ("cliente" or "negocio").
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "desconocido"
}

// RoleFromString parses a wire role name. Returns a validation error for
// anything but "cliente" or "negocio".
func RoleFromString(s string) (Role, error) {
	for role, name := range validRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("tipo", fmt.Errorf("%q is not a valid role", s))
}
