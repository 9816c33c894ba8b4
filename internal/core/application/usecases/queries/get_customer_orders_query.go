package queries

import (
	"errors"
	"time"

	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves the order history of one customer,
// newest first, with the business and product names resolved for display.
type GetCustomerOrdersQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates an order history query for a positive
// customer id.
func NewGetCustomerOrdersQuery(customerID int64) (GetCustomerOrdersQuery, error) {
	if customerID <= 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidError("cliente_id")
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() int64 { return q.customerID }

// GetCustomerOrdersQueryResponse is one order row in the customer-facing
// read model. ProductName is nil for free-text orders.
type GetCustomerOrdersQueryResponse struct {
	ID           int64
	BusinessID   int64
	BusinessName string
	ProductID    *int64
	ProductName  *string
	Message      string
	Quantity     int
	Status       string
	Response     string
	CreatedAt    time.Time
}
