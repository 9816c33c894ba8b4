package commands

import (
	"errors"
	"time"

	"entregaloya/internal/pkg/guard"
)

var ErrPurgeSessionsCommandIsNotConstructed = errors.New(
	"PurgeSessionsCommand must be created via NewPurgeSessionsCommand constructor",
)

// PurgeSessionsCommand sweeps sessions that expired before the given
// instant. Issued periodically by the session cleanup job.
type PurgeSessionsCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewPurgeSessionsCommand creates a purge command for the given instant.
func NewPurgeSessionsCommand(now time.Time) PurgeSessionsCommand {
	return PurgeSessionsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PurgeSessionsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeSessionsCommandIsNotConstructed)
}

// Now returns the expiry cutoff instant.
func (c PurgeSessionsCommand) Now() time.Time { return c.now }
