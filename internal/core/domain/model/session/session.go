// Package session provides server-side session state and the resolved
// Actor identity consumed by every core operation. Sessions are opaque
// random tokens stored in the database; logging out deletes the row, so
// revocation is immediate. Expired rows are swept by a scheduled job.
package session

import (
	"time"

	"entregaloya/internal/core/domain/model/user"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

// ErrSessionIsNotConstructed is returned when a Session instance was not
// created through NewSession or RestoreSession.
var ErrSessionIsNotConstructed = errs.NewValueIsRequiredError(
	"Session must be created via NewSession or RestoreSession",
)

// Session binds a token to an authenticated user for a bounded lifetime.
type Session struct {
	token     Token
	userID    int64
	role      user.Role
	createdAt time.Time
	expiresAt time.Time

	guard guard.ConstructorGuard
}

// NewSession creates a session for a freshly authenticated user with a
// random token and the given time to live.
func NewSession(userID int64, role user.Role, ttl time.Duration) (*Session, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidError("user id")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("session ttl")
	}

	now := time.Now().UTC()
	return &Session{
		token:     NewToken(),
		userID:    userID,
		role:      role,
		createdAt: now,
		expiresAt: now.Add(ttl),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreSession rebuilds a session from persistence.
func RestoreSession(token Token, userID int64, role user.Role, createdAt, expiresAt time.Time) (*Session, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidError("user id")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		token:     token,
		userID:    userID,
		role:      role,
		createdAt: createdAt,
		expiresAt: expiresAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the session was created through a constructor.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// IsExpired reports whether the session has outlived its TTL at the given
// instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

// Token returns the opaque session token.
func (s *Session) Token() Token { return s.token }

// UserID returns the authenticated user's id.
func (s *Session) UserID() int64 { return s.userID }

// Role returns the authenticated user's role.
func (s *Session) Role() user.Role { return s.role }

// CreatedAt returns when the session was established.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// ExpiresAt returns the hard expiry instant.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }
