package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"tracking/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleDispatchJob *StaleDispatchJob
}

// StaleDispatchSettings configures the stale-dispatch report.
type StaleDispatchSettings struct {
	Threshold time.Duration
	Schedule  string
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleDispatchesHandler queries.GetStaleDispatchesQueryHandler,
	reporter StaleDispatchReporter,
	settings StaleDispatchSettings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleDispatchJob: NewStaleDispatchJob(
			staleDispatchesHandler, reporter, settings.Threshold, settings.Schedule, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale dispatch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleDispatchJob.Stop()
}
