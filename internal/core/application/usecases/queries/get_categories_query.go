// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return denormalized read models shaped for the HTTP layer and read
// directly off the database, bypassing the aggregates.
package queries

import (
	"errors"

	"entregaloya/internal/pkg/guard"
)

var ErrGetCategoriesQueryIsNotConstructed = errors.New(
	"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
)

// GetCategoriesQuery retrieves the business category catalog, ordered by
// name. Categories are reference data; there is no write path for them.
type GetCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCategoriesQuery creates a query to retrieve all categories.
func NewGetCategoriesQuery() GetCategoriesQuery {
	return GetCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}

// GetCategoriesQueryResponse is one category row in the read model.
type GetCategoriesQueryResponse struct {
	ID          int64
	Name        string
	Description string
}
