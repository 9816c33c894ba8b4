package order

import (
	"fmt"

	"entregaloya/internal/pkg/errs"
)

// Status represents the lifecycle state of an order ("estado").
// It implements a small state machine with defined transitions:
//
//	Pending ──┬──> Confirmed
//	          └──> Cancelled
//
// Confirmed and Cancelled are terminal: no further status transitions are
// allowed, although a business may still re-submit the same status to
// update its response text. Status is a value object that validates
// transitions and provides the wire names used for persistence and display.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status when an order is created.
	// Only pending orders can be edited or cancelled by the customer.
	Pending

	// Confirmed indicates the business accepted the order. Terminal.
	Confirmed

	// Cancelled indicates the order was rejected or withdrawn. Terminal.
	Cancelled
)

// statusStrings maps statuses to their wire representation. The Spanish
// names are the public API contract inherited by every client.
func statusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "desconocido",
		Pending:       "pendiente",
		Confirmed:     "confirmado",
		Cancelled:     "cancelado",
	}
}

func validStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "pendiente",
		Confirmed: "confirmado",
		Cancelled: "cancelado",
	}
}

// Validate checks that the status is one of the three valid lifecycle
// states. UnknownStatus and any other value are invalid.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("estado", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and
// is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "desconocido"
}

// StatusFromString parses a wire status name ("pendiente", "confirmado",
// "cancelado"). Anything else is a validation error.
func StatusFromString(raw string) (Status, error) {
	for status, name := range validStatusStrings() {
		if name == raw {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("estado",
		fmt.Errorf("%q is not a valid status", raw))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Cancelled
}

// TransitionTo validates the move from the current status to next and
// returns the resulting status.
//
// Valid transitions:
//   - Pending -> Confirmed, Pending -> Cancelled
//   - any status -> itself (lets a business revise its response text)
//
// Everything else, in particular reopening a terminal order back to
// Pending, is rejected.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return UnknownStatus, err
	}
	if err := next.Validate(); err != nil {
		return UnknownStatus, err
	}

	if s == next {
		return next, nil
	}
	if s == Pending {
		return next, nil
	}

	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("estado",
		fmt.Errorf("cannot transition from %s to %s", s, next))
}
