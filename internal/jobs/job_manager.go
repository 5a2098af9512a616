package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryAssignmentJob *DeliveryAssignmentJob
	vacationSyncJob       *VacationSyncJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	autoAssignHandler commands.AutoAssignDeliveryCommandHandler,
	syncHandler commands.SyncDriverVacationStatusCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryAssignmentJob: NewDeliveryAssignmentJob(autoAssignHandler, logger),
		vacationSyncJob:       NewVacationSyncJob(syncHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery assignment job: %w", err)
	}

	if err := jm.vacationSyncJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.deliveryAssignmentJob.Stop()
		return fmt.Errorf("failed to start vacation sync job: %w", err)
	}

	return nil
}

// SyncVacationsNow runs a vacation status audit pass immediately.
func (jm *JobManager) SyncVacationsNow() {
	jm.vacationSyncJob.Run()
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.vacationSyncJob.Stop()
	jm.deliveryAssignmentJob.Stop()
}
