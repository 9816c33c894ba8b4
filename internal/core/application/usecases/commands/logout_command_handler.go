package commands

import (
	"context"
)

// LogoutCommandHandler deletes the server-side session row, revoking the
// cookie immediately.
type LogoutCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewLogoutCommandHandler creates a handler for session revocation.
func NewLogoutCommandHandler(uowFactory SessionUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle revokes the session. Unknown tokens are not an error.
func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SessionRepository().Delete(ctx, cmd.Token()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
