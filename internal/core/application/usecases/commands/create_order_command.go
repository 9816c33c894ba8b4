package commands

import (
	"errors"

	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer request against a business. The
// customer and product references are optional, but when supplied they
// must be well-formed positive ids: malformed optional ids are rejected
// here instead of being silently treated as absent.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID *int64
	businessID int64
	productID  *int64
	message    string
	quantity   int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the target business id and the mandatory
// message. Quantity values below 1 are clamped to 1.
func NewCreateOrderCommand(customerID *int64, businessID int64, productID *int64, message string, quantity int) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBusinessID(businessID),
		cmd.setCustomerID(customerID),
		cmd.setProductID(productID),
		cmd.setMessage(message),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if quantity < 1 {
		quantity = 1
	}
	cmd.quantity = quantity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the creating customer's id, nil for anonymous orders.
func (c CreateOrderCommand) CustomerID() *int64 { return c.customerID }

// BusinessID returns the target business.
func (c CreateOrderCommand) BusinessID() int64 { return c.businessID }

// ProductID returns the referenced product, nil for free-text orders.
func (c CreateOrderCommand) ProductID() *int64 { return c.productID }

// Message returns the customer's free-text message.
func (c CreateOrderCommand) Message() string { return c.message }

// Quantity returns the requested quantity, always >= 1.
func (c CreateOrderCommand) Quantity() int { return c.quantity }

func (c *CreateOrderCommand) setBusinessID(businessID int64) error {
	if businessID <= 0 {
		return errs.NewValueIsInvalidError("negocio_id")
	}
	c.businessID = businessID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *int64) error {
	if customerID != nil && *customerID <= 0 {
		return errs.NewValueIsInvalidError("cliente_id")
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID *int64) error {
	if productID != nil && *productID <= 0 {
		return errs.NewValueIsInvalidError("producto_id")
	}
	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("mensaje")
	}
	c.message = message
	return nil
}
