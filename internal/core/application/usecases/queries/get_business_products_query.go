package queries

import (
	"errors"

	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBusinessProductsQueryIsNotConstructed = errors.New(
	"GetBusinessProductsQuery must be created via NewGetBusinessProductsQuery constructor",
)

// GetBusinessProductsQuery retrieves the product catalog of one business.
type GetBusinessProductsQuery struct {
	businessID int64

	guard guard.ConstructorGuard
}

// NewGetBusinessProductsQuery creates a catalog query for a positive
// business id.
func NewGetBusinessProductsQuery(businessID int64) (GetBusinessProductsQuery, error) {
	if businessID <= 0 {
		return GetBusinessProductsQuery{}, errs.NewValueIsInvalidError("negocio_id")
	}

	return GetBusinessProductsQuery{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBusinessProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessProductsQueryIsNotConstructed)
}

// BusinessID returns the catalog's owning business.
func (q GetBusinessProductsQuery) BusinessID() int64 { return q.businessID }

// GetBusinessProductsQueryResponse is one product row in the read model.
// Price is nil when the business has not published one.
type GetBusinessProductsQueryResponse struct {
	ID          int64
	BusinessID  int64
	Name        string
	Description string
	Price       *decimal.Decimal
	ImageURL    string
}
