package jobs

import (
	"fmt"
	"log/slog"

	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueSweepJob *OverdueSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers and the action dispatcher as dependencies.
func NewJobManager(
	overdueParcelsHandler queries.GetOverdueParcelsQueryHandler,
	overdueShipmentsHandler queries.GetOverdueShipmentsQueryHandler,
	dispatcher ports.ActionDispatcher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueSweepJob: NewOverdueSweepJob(
			overdueParcelsHandler, overdueShipmentsHandler, dispatcher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueSweepJob.Stop()
}
