package commands

import (
	"errors"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a business adding a catalog entry,
// optionally with an image upload. Price and image are both optional.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actor       session.Actor
	businessID  int64
	name        string
	description string
	price       *decimal.Decimal
	image       *ImageAttachment

	guard guard.ConstructorGuard
}

// NewCreateProductCommand validates the target business id, the mandatory
// name, and the image extension when an upload is attached.
func NewCreateProductCommand(
	actor session.Actor,
	businessID int64,
	name, description string,
	price *decimal.Decimal,
	image *ImageAttachment,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		actor:       actor,
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBusinessID(businessID),
		cmd.setName(name),
		cmd.setImage(image),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Actor returns the resolved identity performing the request.
func (c CreateProductCommand) Actor() session.Actor { return c.actor }

// BusinessID returns the catalog's owning business.
func (c CreateProductCommand) BusinessID() int64 { return c.businessID }

// Name returns the mandatory product name.
func (c CreateProductCommand) Name() string { return c.name }

// Description returns the optional free-text description.
func (c CreateProductCommand) Description() string { return c.description }

// Price returns the optional price, nil when unset.
func (c CreateProductCommand) Price() *decimal.Decimal { return c.price }

// Image returns the optional upload, nil when none was attached.
func (c CreateProductCommand) Image() *ImageAttachment { return c.image }

func (c *CreateProductCommand) setBusinessID(businessID int64) error {
	if businessID <= 0 {
		return errs.NewValueIsInvalidError("negocio_id")
	}
	c.businessID = businessID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("nombre")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setImage(image *ImageAttachment) error {
	if image == nil {
		return nil
	}
	if err := image.Validate(); err != nil {
		return err
	}
	c.image = image
	return nil
}
