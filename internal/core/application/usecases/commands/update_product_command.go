package commands

import (
	"errors"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a partial product update. Nil fields
// retain their prior value; there is no way to blank a price through an
// update, matching the catalog's partial-field semantics.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	actor       session.Actor
	productID   int64
	name        *string
	description *string
	price       *decimal.Decimal
	image       *ImageAttachment

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand validates the target id and, when supplied, the
// replacement name and image extension.
func NewUpdateProductCommand(
	actor session.Actor,
	productID int64,
	name, description *string,
	price *decimal.Decimal,
	image *ImageAttachment,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		actor:       actor,
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setImage(image),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// Actor returns the resolved identity performing the request.
func (c UpdateProductCommand) Actor() session.Actor { return c.actor }

// ProductID returns the product to update.
func (c UpdateProductCommand) ProductID() int64 { return c.productID }

// Name returns the replacement name, nil to keep the current one.
func (c UpdateProductCommand) Name() *string { return c.name }

// Description returns the replacement description, nil to keep it.
func (c UpdateProductCommand) Description() *string { return c.description }

// Price returns the replacement price, nil to keep it.
func (c UpdateProductCommand) Price() *decimal.Decimal { return c.price }

// Image returns the replacement upload, nil to keep the current image.
func (c UpdateProductCommand) Image() *ImageAttachment { return c.image }

func (c *UpdateProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidError("producto_id")
	}
	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return errs.NewValueIsRequiredError("nombre")
	}
	c.name = name
	return nil
}

func (c *UpdateProductCommand) setImage(image *ImageAttachment) error {
	if image == nil {
		return nil
	}
	if err := image.Validate(); err != nil {
		return err
	}
	c.image = image
	return nil
}
