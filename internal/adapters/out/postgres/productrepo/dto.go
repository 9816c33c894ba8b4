// Package productrepo provides persistence for the product aggregate.
package productrepo

import (
	"entregaloya/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// Price maps to a nullable numeric column through decimal.NullDecimal.
type ProductDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	BusinessID  int64  `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	Price       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	ImageURL    string
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	var price decimal.NullDecimal
	if p := aggregate.Price(); p != nil {
		price = decimal.NullDecimal{Decimal: *p, Valid: true}
	}

	return ProductDTO{
		ID:          aggregate.ID(),
		BusinessID:  aggregate.BusinessID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       price,
		ImageURL:    aggregate.ImageURL(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	var price *decimal.Decimal
	if dto.Price.Valid {
		price = &dto.Price.Decimal
	}

	return product.RestoreProduct(dto.ID, dto.BusinessID, dto.Name, dto.Description, price, dto.ImageURL)
}
