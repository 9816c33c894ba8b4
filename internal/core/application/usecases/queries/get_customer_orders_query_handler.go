package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history from
// the database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the customer's orders newest
// first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.business_id,
			b.name,
			o.product_id,
			p.name,
			o.message,
			o.quantity,
			o.status,
			o.response,
			o.created_at
		FROM orders o
		JOIN businesses b ON b.id = o.business_id
		LEFT JOIN products p ON p.id = o.product_id
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	for rows.Next() {
		var orderResp GetCustomerOrdersQueryResponse
		var productID sql.NullInt64
		var productName sql.NullString

		if err = rows.Scan(
			&orderResp.ID,
			&orderResp.BusinessID,
			&orderResp.BusinessName,
			&productID,
			&productName,
			&orderResp.Message,
			&orderResp.Quantity,
			&orderResp.Status,
			&orderResp.Response,
			&orderResp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if productID.Valid {
			orderResp.ProductID = &productID.Int64
		}
		if productName.Valid {
			orderResp.ProductName = &productName.String
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
