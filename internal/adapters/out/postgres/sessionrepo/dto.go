// Package sessionrepo provides persistence for server-side sessions. The
// token is the primary key; the expires_at index serves the purge job.
package sessionrepo

import (
	"time"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting sessions.
type SessionDTO struct {
	Token     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    int64     `gorm:"not null;index"`
	Role      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "sessions".
func (SessionDTO) TableName() string {
	return "sessions"
}

func fromDomain(aggregate *session.Session) SessionDTO {
	return SessionDTO{
		Token:     aggregate.Token().Bytes(),
		UserID:    aggregate.UserID(),
		Role:      aggregate.Role().String(),
		CreatedAt: aggregate.CreatedAt(),
		ExpiresAt: aggregate.ExpiresAt(),
	}
}

func toDomain(dto SessionDTO) (*session.Session, error) {
	token, err := session.TokenFromString(dto.Token.String())
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return session.RestoreSession(token, dto.UserID, role, dto.CreatedAt, dto.ExpiresAt)
}
