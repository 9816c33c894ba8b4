package commands

import (
	"errors"

	"entregaloya/internal/core/domain/model/order"
	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents the owning business moving an order
// through its lifecycle, recording a free-text response alongside.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor    session.Actor
	orderID  int64
	status   order.Status
	response string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates the target id and that the status
// is a member of the lifecycle enum. Transition validity against the
// order's current state is checked later, inside the transaction.
func NewUpdateOrderStatusCommand(actor session.Actor, orderID int64, status order.Status, response string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		actor:    actor,
		response: response,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Actor returns the resolved identity performing the request.
func (c UpdateOrderStatusCommand) Actor() session.Actor { return c.actor }

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() int64 { return c.orderID }

// Status returns the requested lifecycle status.
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

// Response returns the business free-text response.
func (c UpdateOrderStatusCommand) Response() string { return c.response }

func (c *UpdateOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("pedido_id")
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
