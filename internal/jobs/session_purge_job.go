package jobs

import (
	"context"
	"log/slog"
	"time"

	"entregaloya/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionPurgeJob removes expired session rows on a schedule. The session
// middleware already rejects expired tokens, so this job only keeps the
// sessions table from growing without bound.
type SessionPurgeJob struct {
	handler commands.PurgeSessionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionPurgeJob creates a job that purges expired sessions hourly.
func NewSessionPurgeJob(handler commands.PurgeSessionsCommandHandler, logger *slog.Logger) *SessionPurgeJob {
	return &SessionPurgeJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "session_purge_job"),
	}
}

// Start begins the session purge job on its hourly schedule.
func (j *SessionPurgeJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()
		cmd := commands.NewPurgeSessionsCommand(time.Now().UTC())

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session purge job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged expired sessions", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session purge job started (running hourly)")
	return nil
}

// Stop stops the session purge job.
func (j *SessionPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session purge job stopped")
}
