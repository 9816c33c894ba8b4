package queries

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBusinessProductsQueryHandler retrieves a business's catalog from the
// database.
type GetBusinessProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetBusinessProductsQueryHandler creates a handler for catalog
// queries.
func NewGetBusinessProductsQueryHandler(db *gorm.DB) GetBusinessProductsQueryHandler {
	return GetBusinessProductsQueryHandler{db: db}
}

// Handle executes the query and returns the catalog newest first.
func (h GetBusinessProductsQueryHandler) Handle(
	ctx context.Context,
	query GetBusinessProductsQuery,
) ([]GetBusinessProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			business_id,
			name,
			description,
			price,
			image_url
		FROM products
		WHERE business_id = ?
		ORDER BY id DESC
	`, query.BusinessID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetBusinessProductsQueryResponse, 0)

	for rows.Next() {
		var productResp GetBusinessProductsQueryResponse
		var price sql.NullString

		if err = rows.Scan(
			&productResp.ID,
			&productResp.BusinessID,
			&productResp.Name,
			&productResp.Description,
			&price,
			&productResp.ImageURL,
		); err != nil {
			return nil, err
		}

		if price.Valid {
			parsed, parseErr := decimal.NewFromString(price.String)
			if parseErr != nil {
				return nil, parseErr
			}
			productResp.Price = &parsed
		}

		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
