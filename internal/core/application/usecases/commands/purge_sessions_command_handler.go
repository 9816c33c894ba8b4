package commands

import (
	"context"
)

// PurgeSessionsCommandHandler removes expired session rows so the
// sessions table does not grow without bound.
type PurgeSessionsCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewPurgeSessionsCommandHandler creates a handler for session sweeping.
func NewPurgeSessionsCommandHandler(uowFactory SessionUoWFactory) PurgeSessionsCommandHandler {
	return PurgeSessionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes all sessions expired at the command's cutoff and returns
// how many rows were removed.
func (h *PurgeSessionsCommandHandler) Handle(ctx context.Context, cmd PurgeSessionsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.SessionRepository().DeleteExpired(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
