package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetBusinessOrdersQueryHandler retrieves a business's incoming orders
// from the database.
type GetBusinessOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBusinessOrdersQueryHandler creates a handler for incoming-order
// queries.
func NewGetBusinessOrdersQueryHandler(db *gorm.DB) GetBusinessOrdersQueryHandler {
	return GetBusinessOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the business's orders newest
// first.
func (h GetBusinessOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBusinessOrdersQuery,
) ([]GetBusinessOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			u.name,
			u.phone,
			o.product_id,
			p.name,
			o.message,
			o.quantity,
			o.status,
			o.response,
			o.created_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.customer_id
		LEFT JOIN products p ON p.id = o.product_id
		WHERE o.business_id = ?
		ORDER BY o.created_at DESC, o.id DESC
	`, query.BusinessID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetBusinessOrdersQueryResponse, 0)

	for rows.Next() {
		var orderResp GetBusinessOrdersQueryResponse
		var customerID, productID sql.NullInt64
		var customerName, customerPhone, productName sql.NullString

		if err = rows.Scan(
			&orderResp.ID,
			&customerID,
			&customerName,
			&customerPhone,
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

		if customerID.Valid {
			orderResp.CustomerID = &customerID.Int64
		}
		if customerName.Valid {
			orderResp.CustomerName = &customerName.String
		}
		if customerPhone.Valid {
			orderResp.CustomerPhone = &customerPhone.String
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
