package order

import (
	"time"

	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"Order must be created via NewOrder or RestoreOrder",
)

// Order represents a customer request ("pedido") against a business. It is
// the aggregate root of the order lifecycle.
//
// Order maintains these invariants:
//   - businessID references an existing business (checked by the creating
//     use case against the repository)
//   - message is non-empty
//   - quantity is at least 1; lower values are clamped, never rejected
//   - status transitions follow the Status state machine
//   - customer and product references are optional: anonymous orders and
//     free-text orders without a concrete product are both legal
//
// Mutating methods do not perform authorization; callers consult the
// authorization policy first and treat a denial as a forbidden outcome.
type Order struct {
	id         int64
	customerID *int64
	businessID int64
	productID  *int64
	message    string
	quantity   int
	status     Status
	response   string
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an unsaved order in Pending status. Quantity values
// below 1 are clamped to 1.
func NewOrder(customerID *int64, businessID int64, productID *int64, message string, quantity int) (*Order, error) {
	if businessID <= 0 {
		return nil, errs.NewValueIsInvalidError("negocio_id")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("mensaje")
	}
	if customerID != nil && *customerID <= 0 {
		return nil, errs.NewValueIsInvalidError("cliente_id")
	}
	if productID != nil && *productID <= 0 {
		return nil, errs.NewValueIsInvalidError("producto_id")
	}
	if quantity < 1 {
		quantity = 1
	}

	return &Order{
		customerID: customerID,
		businessID: businessID,
		productID:  productID,
		message:    message,
		quantity:   quantity,
		status:     Pending,
		createdAt:  time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order from persistence, including its assigned
// id, current status, business response and creation timestamp.
func RestoreOrder(
	id int64,
	customerID *int64,
	businessID int64,
	productID *int64,
	message string,
	quantity int,
	status Status,
	response string,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(customerID, businessID, productID, message, quantity)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	o.response = response
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ChangeMessage replaces the customer message. Empty messages are rejected.
func (o *Order) ChangeMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("mensaje")
	}
	o.message = message
	return nil
}

// ChangeQuantity replaces the requested quantity, clamping values below 1
// to 1, same as at creation.
func (o *Order) ChangeQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	o.quantity = quantity
}

// UpdateStatus moves the order to next and records the business response.
// The transition must be legal per Status.TransitionTo; terminal states
// only accept a re-submission of the same status, which refreshes the
// response text.
func (o *Order) UpdateStatus(next Status, response string) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.response = response
	return nil
}

// ID returns the persistence-assigned identifier, 0 for unsaved orders.
func (o *Order) ID() int64 { return o.id }

// CustomerID returns the creating customer's user id, nil for anonymous
// orders.
func (o *Order) CustomerID() *int64 { return o.customerID }

// BusinessID returns the target business.
func (o *Order) BusinessID() int64 { return o.businessID }

// ProductID returns the referenced product, nil for free-text orders.
func (o *Order) ProductID() *int64 { return o.productID }

// Message returns the customer's free-text message.
func (o *Order) Message() string { return o.message }

// Quantity returns the requested quantity, always >= 1.
func (o *Order) Quantity() int { return o.quantity }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Response returns the business free-text response, empty until the first
// status update.
func (o *Order) Response() string { return o.response }

// CreatedAt returns the creation timestamp used for newest-first listing.
func (o *Order) CreatedAt() time.Time { return o.createdAt }
