package commands

import (
	"context"
	"errors"
	"time"

	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/core/domain/model/user"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/hash"
)

// LoginResult is what a successful authentication hands back to the HTTP
// layer: the session token for the cookie plus the user view the client
// renders. BusinessID is set for business-role users.
type LoginResult struct {
	Token      session.Token
	UserID     int64
	Name       string
	Role       user.Role
	BusinessID *int64
	ExpiresAt  time.Time
}

// LoginCommandHandler verifies credentials and establishes a server-side
// session. Password verification is bcrypt only; there is no fallback for
// legacy cleartext rows, those accounts must re-register.
type LoginCommandHandler struct {
	uowFactory IdentityUoWFactory
	sessionTTL time.Duration
}

// NewLoginCommandHandler creates a handler that issues sessions with the
// given time to live.
func NewLoginCommandHandler(uowFactory IdentityUoWFactory, sessionTTL time.Duration) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		sessionTTL: sessionTTL,
	}
}

// Handle authenticates the account and persists a new session. Returns
// ObjectNotFound when no account matches phone+role and NotAuthenticated
// when the password does not check out.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().GetByPhoneAndRole(ctx, cmd.Phone(), cmd.Role())
	if err != nil {
		return LoginResult{}, err
	}

	if !hash.Check(account.PasswordHash(), cmd.Password()) {
		return LoginResult{}, errs.NewNotAuthenticatedError("credenciales incorrectas")
	}

	newSession, err := session.NewSession(account.ID(), account.Role(), h.sessionTTL)
	if err != nil {
		return LoginResult{}, err
	}

	if err = uow.SessionRepository().Add(ctx, newSession); err != nil {
		return LoginResult{}, err
	}

	result := LoginResult{
		Token:     newSession.Token(),
		UserID:    account.ID(),
		Name:      account.Name(),
		Role:      account.Role(),
		ExpiresAt: newSession.ExpiresAt(),
	}

	if account.Role() == user.Business {
		owned, businessErr := uow.BusinessRepository().GetByOwner(ctx, account.ID())
		switch {
		case businessErr == nil:
			id := owned.ID()
			result.BusinessID = &id
		case errors.Is(businessErr, errs.ErrObjectNotFound):
			// A business account without its business row is legacy data;
			// the client simply gets no negocio_id.
		default:
			return LoginResult{}, businessErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}

	return result, nil
}
