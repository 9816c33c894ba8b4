package commands

import (
	"errors"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand removes a catalog entry permanently.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	actor     session.Actor
	productID int64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand validates the target product id.
func NewDeleteProductCommand(actor session.Actor, productID int64) (DeleteProductCommand, error) {
	if productID <= 0 {
		return DeleteProductCommand{}, errs.NewValueIsInvalidError("producto_id")
	}

	return DeleteProductCommand{
		actor:     actor,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// Actor returns the resolved identity performing the request.
func (c DeleteProductCommand) Actor() session.Actor { return c.actor }

// ProductID returns the product to delete.
func (c DeleteProductCommand) ProductID() int64 { return c.productID }
