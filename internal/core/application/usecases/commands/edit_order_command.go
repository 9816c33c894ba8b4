package commands

import (
	"errors"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a customer changing the message and/or
// quantity of their own pending order. At least one field must be
// supplied; nil fields retain their prior value.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	actor    session.Actor
	orderID  int64
	message  *string
	quantity *int

	guard guard.ConstructorGuard
}

// NewEditOrderCommand validates the target id and that at least one of
// message/quantity is supplied. An explicitly supplied empty message is
// rejected.
func NewEditOrderCommand(actor session.Actor, orderID int64, message *string, quantity *int) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		actor:    actor,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMessage(message),
	); err != nil {
		return EditOrderCommand{}, err
	}

	if cmd.message == nil && cmd.quantity == nil {
		return EditOrderCommand{}, errs.NewValueIsRequiredError("nada que actualizar")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// Actor returns the resolved identity performing the request.
func (c EditOrderCommand) Actor() session.Actor { return c.actor }

// OrderID returns the order to edit.
func (c EditOrderCommand) OrderID() int64 { return c.orderID }

// Message returns the replacement message, nil to keep the current one.
func (c EditOrderCommand) Message() *string { return c.message }

// Quantity returns the replacement quantity, nil to keep the current one.
func (c EditOrderCommand) Quantity() *int { return c.quantity }

func (c *EditOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("pedido_id")
	}
	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setMessage(message *string) error {
	if message != nil && *message == "" {
		return errs.NewValueIsRequiredError("mensaje")
	}
	c.message = message
	return nil
}
