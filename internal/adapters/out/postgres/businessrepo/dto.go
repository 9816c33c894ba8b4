// Package businessrepo provides persistence for the business aggregate and
// the read-only category reference table it points into.
package businessrepo

import (
	"entregaloya/internal/core/domain/model/business"
)

// BusinessDTO represents the database structure for persisting businesses.
type BusinessDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	OwnerUserID int64  `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	CategoryID  *int64 `gorm:"index"`
}

// TableName overrides GORM's default naming to use "businesses".
func (BusinessDTO) TableName() string {
	return "businesses"
}

// CategoryDTO represents the category reference table. Categories have no
// write path in the application; rows are seeded outside of it.
type CategoryDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null;uniqueIndex"`
	Description string
}

// TableName overrides GORM's default naming to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

func fromDomain(aggregate *business.Business) BusinessDTO {
	return BusinessDTO{
		ID:          aggregate.ID(),
		OwnerUserID: aggregate.OwnerUserID(),
		Name:        aggregate.Name(),
		CategoryID:  aggregate.CategoryID(),
	}
}

func toDomain(dto BusinessDTO) (*business.Business, error) {
	return business.RestoreBusiness(dto.ID, dto.OwnerUserID, dto.Name, dto.CategoryID)
}
