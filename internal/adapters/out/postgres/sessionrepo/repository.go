package sessionrepo

import (
	"context"
	"errors"
	"time"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Add saves a freshly created session.
func (r *GormSessionRepository) Add(ctx context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a session by token. Expiry is the caller's concern.
func (r *GormSessionRepository) Get(ctx context.Context, token session.Token) (*session.Session, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session token", token.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a session. Deleting an unknown token is not an error, so
// logout stays idempotent.
func (r *GormSessionRepository) Delete(ctx context.Context, token session.Token) error {
	if err := token.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&SessionDTO{}, "token = ?", token.Bytes()).Error
}

// DeleteExpired removes all sessions expired at the given instant and
// returns how many rows went away.
func (r *GormSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&SessionDTO{}, "expires_at <= ?", now)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
