package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleSessionJob periodically scans the running sessions and logs every
// session that has been open longer than the configured threshold. The job
// is read-only: abandoning a session stays a deliberate operator decision,
// the job only surfaces the candidates.
type StaleSessionJob struct {
	handler   queries.GetActiveSessionsQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleSessionJob creates a job that reports long-running sessions.
// The threshold controls how old a session must be before it is reported.
func NewStaleSessionJob(
	handler queries.GetActiveSessionsQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleSessionJob {
	return &StaleSessionJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_session_job"),
	}
}

// Start begins the stale session scan, running once per minute.
func (j *StaleSessionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		sessions, handleErr := j.handler.Handle(ctx, queries.NewGetActiveSessionsQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale session scan failed", "error", handleErr)
			return
		}

		cutoff := time.Now().Add(-j.threshold)
		for _, active := range sessions {
			if active.CreatedAt.After(cutoff) {
				continue
			}

			j.logger.WarnContext(ctx, "Session has been open for a long time",
				"sessionId", active.ID.String(),
				"code", active.Code,
				"status", active.Status,
				"orderCount", active.OrderCount,
				"openFor", time.Since(active.CreatedAt).Round(time.Second).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale session job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the stale session job.
func (j *StaleSessionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale session job stopped")
}
