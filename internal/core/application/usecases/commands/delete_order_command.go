package commands

import (
	"errors"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order permanently. Customers may delete
// their own pending orders; the owning business may delete any of its
// orders. There is no soft delete or audit trail.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actor   session.Actor
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand validates the target order id.
func NewDeleteOrderCommand(actor session.Actor, orderID int64) (DeleteOrderCommand, error) {
	if orderID <= 0 {
		return DeleteOrderCommand{}, errs.NewValueIsInvalidError("pedido_id")
	}

	return DeleteOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Actor returns the resolved identity performing the request.
func (c DeleteOrderCommand) Actor() session.Actor { return c.actor }

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() int64 { return c.orderID }
