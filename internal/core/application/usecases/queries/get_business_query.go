package queries

import (
	"errors"

	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrGetBusinessQueryIsNotConstructed = errors.New(
	"GetBusinessQuery must be created via NewGetBusinessQuery constructor",
)

// GetBusinessQuery retrieves one business by id.
type GetBusinessQuery struct {
	businessID int64

	guard guard.ConstructorGuard
}

// NewGetBusinessQuery creates a single-business query for a positive id.
func NewGetBusinessQuery(businessID int64) (GetBusinessQuery, error) {
	if businessID <= 0 {
		return GetBusinessQuery{}, errs.NewValueIsInvalidError("negocio_id")
	}

	return GetBusinessQuery{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBusinessQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessQueryIsNotConstructed)
}

// BusinessID returns the id to look up.
func (q GetBusinessQuery) BusinessID() int64 { return q.businessID }
