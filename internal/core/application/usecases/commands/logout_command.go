package commands

import (
	"errors"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand revokes the session behind a token. Logging out an unknown
// or already-expired token succeeds; the operation is idempotent.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	token session.Token

	guard guard.ConstructorGuard
}

// NewLogoutCommand validates that a token is present.
func NewLogoutCommand(token session.Token) (LogoutCommand, error) {
	if err := token.Validate(); err != nil {
		return LogoutCommand{}, err
	}

	return LogoutCommand{
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// Token returns the session token to revoke.
func (c LogoutCommand) Token() session.Token { return c.token }
