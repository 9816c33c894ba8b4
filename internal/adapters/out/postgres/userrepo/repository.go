package userrepo

import (
	"context"
	"errors"

	"entregaloya/internal/core/domain/model/user"
	"entregaloya/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user and returns its assigned id. A duplicate phone
// violating the unique index surfaces as a Conflict.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.NewConflictErrorWithCause("telefono", aggregate.Phone(), err)
		}
		return 0, err
	}

	return dto.ID, nil
}

// Get retrieves a user by id.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPhoneAndRole retrieves the account registered under the phone
// number for the given role.
func (r *GormUserRepository) GetByPhoneAndRole(ctx context.Context, phone string, role user.Role) (*user.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "phone = ? AND role = ?", phone, role.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("telefono", phone)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByPhone reports whether any account uses the phone number.
func (r *GormUserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("phone = ?", phone).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
