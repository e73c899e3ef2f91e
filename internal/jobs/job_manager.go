package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleSessionJob *StaleSessionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getActiveSessionsHandler queries.GetActiveSessionsQueryHandler,
	staleSessionAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleSessionJob: NewStaleSessionJob(getActiveSessionsHandler, staleSessionAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleSessionJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale session job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleSessionJob.Stop()
}
