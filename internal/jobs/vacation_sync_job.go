package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// VacationSyncJob audits driver statuses against the vacation calendar.
// Runs daily at midnight and reports drivers whose stored status disagrees
// with the approved vacations covering the day. Statuses are left for
// operators to correct so that a driver on vacation today stays assignable
// to deliveries dated after the vacation ends.
type VacationSyncJob struct {
	handler commands.SyncDriverVacationStatusCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewVacationSyncJob creates a new job for vacation status auditing.
func NewVacationSyncJob(
	handler commands.SyncDriverVacationStatusCommandHandler,
	logger *slog.Logger,
) *VacationSyncJob {
	return &VacationSyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "vacation_sync_job"),
	}
}

// Start begins the sync job to run daily at midnight.
func (j *VacationSyncJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		j.Run()
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Vacation sync job started (running daily at midnight)")
	return nil
}

// Run executes one audit pass. Exposed so the application can report status
// drift at startup instead of waiting for the next midnight.
func (j *VacationSyncJob) Run() {
	ctx := context.Background()
	cmd := commands.NewSyncDriverVacationStatusCommand()

	drifted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Vacation sync job failed", "error", err)
		return
	}

	if drifted > 0 {
		j.logger.WarnContext(ctx, "Driver statuses disagree with the vacation calendar", "drifted", drifted)
	}
}

// Stop stops the sync job.
func (j *VacationSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Vacation sync job stopped")
}
