package businessrepo

import (
	"context"
	"errors"

	"entregaloya/internal/core/domain/model/business"
	"entregaloya/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBusinessRepository implements BusinessRepository using GORM.
type GormBusinessRepository struct {
	db *gorm.DB
}

// NewGormBusinessRepository creates a new GORM business repository.
func NewGormBusinessRepository(db *gorm.DB) *GormBusinessRepository {
	return &GormBusinessRepository{db: db}
}

// Add saves a new business and returns its assigned id.
func (r *GormBusinessRepository) Add(ctx context.Context, aggregate *business.Business) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Get retrieves a business by id.
func (r *GormBusinessRepository) Get(ctx context.Context, id int64) (*business.Business, error) {
	var dto BusinessDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("negocio_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwner retrieves the business owned by the given user. With the 1:1
// owner relationship the first row is the only row.
func (r *GormBusinessRepository) GetByOwner(ctx context.Context, ownerUserID int64) (*business.Business, error) {
	var dto BusinessDTO
	err := r.db.WithContext(ctx).First(&dto, "owner_user_id = ?", ownerUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("owner user id", ownerUserID)
		}
		return nil, err
	}

	return toDomain(dto)
}
