package queries

import (
	"context"
	"database/sql"
	"time"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/core/domain/model/user"
	"entregaloya/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetSessionActorQueryHandler resolves session tokens against the
// database. For business-role users the owned business id is resolved in
// the same round trip so the policy checks never need another lookup.
type GetSessionActorQueryHandler struct {
	db *gorm.DB
}

// NewGetSessionActorQueryHandler creates a handler for actor resolution.
func NewGetSessionActorQueryHandler(db *gorm.DB) GetSessionActorQueryHandler {
	return GetSessionActorQueryHandler{db: db}
}

// Handle resolves the token. Unknown tokens and expired sessions both come
// back as NotAuthenticated; expired rows stay in place for the purge job.
func (h GetSessionActorQueryHandler) Handle(
	ctx context.Context,
	query GetSessionActorQuery,
) (session.Actor, error) {
	if err := query.Validate(); err != nil {
		return session.Actor{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.user_id,
			s.role,
			s.expires_at,
			b.id
		FROM sessions s
		LEFT JOIN businesses b ON b.owner_user_id = s.user_id
		WHERE s.token = ?
	`, query.Token().String()).Rows()
	if err != nil {
		return session.Actor{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return session.Actor{}, err
		}
		return session.Actor{}, errs.NewNotAuthenticatedError("sesion desconocida")
	}

	var userID int64
	var roleRaw string
	var expiresAt time.Time
	var businessID sql.NullInt64

	if err = rows.Scan(&userID, &roleRaw, &expiresAt, &businessID); err != nil {
		return session.Actor{}, err
	}

	if !query.Now().Before(expiresAt) {
		return session.Actor{}, errs.NewNotAuthenticatedError("sesion expirada")
	}

	role, err := user.RoleFromString(roleRaw)
	if err != nil {
		return session.Actor{}, err
	}

	actor := session.Actor{UserID: userID, Role: role}
	if role == user.Business && businessID.Valid {
		actor.BusinessID = &businessID.Int64
	}

	return actor, nil
}
