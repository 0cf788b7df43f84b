package jobs

import (
	"fmt"
	"log/slog"

	"litstock/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockSweepJob *LowStockSweepJob
}

// NewJobManager creates a job manager with all required jobs wired to their
// handlers.
func NewJobManager(
	lowStockHandler queries.GetLowStockQueryHandler,
	lowStockThreshold int,
	lowStockSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockSweepJob: NewLowStockSweepJob(lowStockHandler, lowStockThreshold, lowStockSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockSweepJob.Stop()
}
