package queries

import (
	"errors"
	"time"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/pkg/guard"
)

var ErrGetSessionActorQueryIsNotConstructed = errors.New(
	"GetSessionActorQuery must be created via NewGetSessionActorQuery constructor",
)

// GetSessionActorQuery resolves a session token into the acting identity.
// The session middleware runs it once per authenticated request.
type GetSessionActorQuery struct {
	token session.Token
	now   time.Time

	guard guard.ConstructorGuard
}

// NewGetSessionActorQuery creates an actor resolution query for the given
// token, checking expiry against the given instant.
func NewGetSessionActorQuery(token session.Token, now time.Time) (GetSessionActorQuery, error) {
	if err := token.Validate(); err != nil {
		return GetSessionActorQuery{}, err
	}

	return GetSessionActorQuery{
		token: token,
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionActorQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionActorQueryIsNotConstructed)
}

// Token returns the session token to resolve.
func (q GetSessionActorQuery) Token() session.Token { return q.token }

// Now returns the instant expiry is checked against.
func (q GetSessionActorQuery) Now() time.Time { return q.now }
