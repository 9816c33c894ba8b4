// Package userrepo provides persistence for the user aggregate. The unique
// index on phone is the backstop for concurrent registrations that slip
// past the use case's existence pre-check.
package userrepo

import (
	"entregaloya/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"not null"`
	Phone        string `gorm:"not null;uniqueIndex"`
	Role         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		Role:         aggregate.Role().String(),
		PasswordHash: aggregate.PasswordHash(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(dto.ID, dto.Name, dto.Phone, role, dto.PasswordHash)
}
