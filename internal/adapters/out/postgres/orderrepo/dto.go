// Package orderrepo provides persistence for the order aggregate. Status
// is stored as its wire string (pendiente/confirmado/cancelado) so the
// rows stay readable next to the frontend and the original schema.
package orderrepo

import (
	"time"

	"entregaloya/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
type OrderDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID *int64 `gorm:"index"`
	BusinessID int64  `gorm:"not null;index"`
	ProductID  *int64 `gorm:"index"`
	Message    string `gorm:"not null"`
	Quantity   int    `gorm:"not null"`
	Status     string `gorm:"not null;index"`
	Response   string
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		BusinessID: aggregate.BusinessID(),
		ProductID:  aggregate.ProductID(),
		Message:    aggregate.Message(),
		Quantity:   aggregate.Quantity(),
		Status:     aggregate.Status().String(),
		Response:   aggregate.Response(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.BusinessID,
		dto.ProductID,
		dto.Message,
		dto.Quantity,
		status,
		dto.Response,
		dto.CreatedAt,
	)
}
