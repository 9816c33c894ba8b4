package queries

import (
	"errors"
	"time"

	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrGetBusinessOrdersQueryIsNotConstructed = errors.New(
	"GetBusinessOrdersQuery must be created via NewGetBusinessOrdersQuery constructor",
)

// GetBusinessOrdersQuery retrieves the incoming orders of one business,
// newest first, with the customer contact details and product name
// resolved for display.
type GetBusinessOrdersQuery struct {
	businessID int64

	guard guard.ConstructorGuard
}

// NewGetBusinessOrdersQuery creates an incoming-orders query for a
// positive business id.
func NewGetBusinessOrdersQuery(businessID int64) (GetBusinessOrdersQuery, error) {
	if businessID <= 0 {
		return GetBusinessOrdersQuery{}, errs.NewValueIsInvalidError("negocio_id")
	}

	return GetBusinessOrdersQuery{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBusinessOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessOrdersQueryIsNotConstructed)
}

// BusinessID returns the business whose incoming orders are listed.
func (q GetBusinessOrdersQuery) BusinessID() int64 { return q.businessID }

// GetBusinessOrdersQueryResponse is one order row in the business-facing
// read model. Customer fields are nil for anonymous orders, ProductName
// for free-text ones.
type GetBusinessOrdersQueryResponse struct {
	ID            int64
	CustomerID    *int64
	CustomerName  *string
	CustomerPhone *string
	ProductID     *int64
	ProductName   *string
	Message       string
	Quantity      int
	Status        string
	Response      string
	CreatedAt     time.Time
}
