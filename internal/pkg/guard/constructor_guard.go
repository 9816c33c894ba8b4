// Package guard provides a defensive construction pattern for value objects,
// commands and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect zero-value instances that bypassed the designated
// constructor, so validation can fail early instead of letting a half-built
// object reach the persistence layer.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for a non-constructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the enclosing object went through its
// constructor. The zero value is "not constructed" and fails validation.
//
// Example:
//
//	type LoginCommand struct {
//	    phone string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewLoginCommand(phone string) (LoginCommand, error) {
//	    if phone == "" {
//	        return LoginCommand{}, errs.NewValueIsRequiredError("phone")
//	    }
//	    return LoginCommand{phone: phone, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c LoginCommand) Validate() error {
//	    return c.guard.Validate(ErrLoginCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation. Call it only
// from the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed, otherwise
// the supplied error (or ErrDefaultConstructorGuard when nil is passed).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
