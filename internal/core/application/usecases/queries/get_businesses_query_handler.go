package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetBusinessesQueryHandler retrieves the business directory from the
// database.
type GetBusinessesQueryHandler struct {
	db *gorm.DB
}

// NewGetBusinessesQueryHandler creates a handler for business directory
// queries.
func NewGetBusinessesQueryHandler(db *gorm.DB) GetBusinessesQueryHandler {
	return GetBusinessesQueryHandler{db: db}
}

// Handle executes the query. Results come back newest first with the
// category name resolved, optionally filtered by owner.
func (h GetBusinessesQueryHandler) Handle(
	ctx context.Context,
	query GetBusinessesQuery,
) ([]GetBusinessesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			b.id,
			b.owner_user_id,
			b.name,
			b.category_id,
			c.name
		FROM businesses b
		LEFT JOIN categories c ON c.id = b.category_id
	`
	args := make([]any, 0, 1)

	if ownerUserID := query.OwnerUserID(); ownerUserID != nil {
		sqlQuery += ` WHERE b.owner_user_id = ?`
		args = append(args, *ownerUserID)
	}
	sqlQuery += ` ORDER BY b.id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	businesses := make([]GetBusinessesQueryResponse, 0)

	for rows.Next() {
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
			return nil, err
		}

		if categoryID.Valid {
			businessResp.CategoryID = &categoryID.Int64
		}
		if categoryName.Valid {
			businessResp.CategoryName = &categoryName.String
		}

		businesses = append(businesses, businessResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return businesses, nil
}
