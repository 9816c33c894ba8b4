package queries

import (
	"errors"

	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrGetBusinessesQueryIsNotConstructed = errors.New(
	"GetBusinessesQuery must be created via NewGetBusinessesQuery constructor",
)

// GetBusinessesQuery retrieves the business directory, newest first, joined
// with the category name. An optional owner filter narrows the listing to
// the businesses of one user account.
//
// Example:
//
//	query, _ := NewGetBusinessesQuery(nil)
//	handler := NewGetBusinessesQueryHandler(db)
//
//	businesses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list businesses: %w", err)
//	}
type GetBusinessesQuery struct {
	ownerUserID *int64

	guard guard.ConstructorGuard
}

// NewGetBusinessesQuery creates a business directory query. A nil
// ownerUserID lists everything; a supplied id must be positive.
func NewGetBusinessesQuery(ownerUserID *int64) (GetBusinessesQuery, error) {
	if ownerUserID != nil && *ownerUserID <= 0 {
		return GetBusinessesQuery{}, errs.NewValueIsInvalidError("usuario_id")
	}

	return GetBusinessesQuery{
		ownerUserID: ownerUserID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBusinessesQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessesQueryIsNotConstructed)
}

// OwnerUserID returns the optional owner filter, nil for the full listing.
func (q GetBusinessesQuery) OwnerUserID() *int64 { return q.ownerUserID }

// GetBusinessesQueryResponse is one business row in the read model.
// CategoryName is resolved through the join and nil for uncategorized
// businesses.
type GetBusinessesQueryResponse struct {
	ID           int64
	OwnerUserID  int64
	Name         string
	CategoryID   *int64
	CategoryName *string
}
