package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryAssignmentJob manages the scheduled assignment of drivers to
// deliveries. Runs every 30 seconds to match the oldest pending delivery
// with the least loaded available driver.
type DeliveryAssignmentJob struct {
	handler commands.AutoAssignDeliveryCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryAssignmentJob creates a new job for automatic driver assignment.
func NewDeliveryAssignmentJob(
	handler commands.AutoAssignDeliveryCommandHandler,
	logger *slog.Logger,
) *DeliveryAssignmentJob {
	return &DeliveryAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_assignment_job"),
	}
}

// Start begins the assignment job to run every 30 seconds.
func (j *DeliveryAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAutoAssignDeliveryCommand()

		assigned, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			// An empty backlog and a fully booked driver pool are normal.
			if !errors.Is(handleErr, commands.ErrNoPendingDelivery) &&
				!errors.Is(handleErr, commands.ErrNoCandidateDriver) {
				j.logger.ErrorContext(ctx, "Delivery assignment job failed", "error", handleErr)
			}
			return
		}

		j.logger.InfoContext(ctx, "Delivery assigned automatically",
			"delivery_id", assigned.ID().String(),
			"driver_id", assigned.Driver().String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery assignment job started (running every 30 seconds)")
	return nil
}

// Stop stops the assignment job.
func (j *DeliveryAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery assignment job stopped")
}
