package queries

import (
	"context"
	"database/sql"

	"entregaloya/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetBusinessQueryHandler retrieves one business from the database.
type GetBusinessQueryHandler struct {
	db *gorm.DB
}

// NewGetBusinessQueryHandler creates a handler for single-business
// queries.
func NewGetBusinessQueryHandler(db *gorm.DB) GetBusinessQueryHandler {
	return GetBusinessQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when no business has
// the requested id.
func (h GetBusinessQueryHandler) Handle(
	ctx context.Context,
	query GetBusinessQuery,
) (GetBusinessesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBusinessesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.owner_user_id,
			b.name,
			b.category_id,
			c.name
		FROM businesses b
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.id = ?
	`, query.BusinessID()).Rows()
	if err != nil {
		return GetBusinessesQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetBusinessesQueryResponse{}, err
		}
		return GetBusinessesQueryResponse{},
			errs.NewObjectNotFoundError("negocio_id", query.BusinessID())
	}

	var businessResp GetBusinessesQueryResponse
	var categoryID sql.NullInt64
	var categoryName sql.NullString

	if err = rows.Scan(
		&businessResp.ID,
		&businessResp.OwnerUserID,
		&businessResp.Name,
		&categoryID,
		&categoryName,
	); err != nil {
		return GetBusinessesQueryResponse{}, err
	}

	if categoryID.Valid {
		businessResp.CategoryID = &categoryID.Int64
	}
	if categoryName.Valid {
		businessResp.CategoryName = &categoryName.String
	}

	return businessResp, nil
}
