package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleScheduledSweepJob *StaleScheduledSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	cancelHandler commands.CancelOrderCommandHandler,
	sweepSchedule string,
	sweepMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleScheduledSweepJob: NewStaleScheduledSweepJob(
			uowFactory, cancelHandler, sweepSchedule, sweepMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleScheduledSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale scheduled order sweep: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleScheduledSweepJob.Stop()
}
