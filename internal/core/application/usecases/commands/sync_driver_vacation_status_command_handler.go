package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// SyncDriverVacationStatusCommandHandler audits driver statuses against the
// vacation calendar. It counts drivers whose stored status disagrees with
// today's approved vacations: active drivers covered by a vacation and
// on-vacation drivers whose vacation has ended. Inactive drivers are never
// considered. Statuses are not mutated here. Availability is resolved from
// the vacation intervals per queried date, and moving a covered driver out
// of active would hide them from future dates their vacation does not reach.
type SyncDriverVacationStatusCommandHandler struct {
	uowFactory VacationUoWFactory
}

// NewSyncDriverVacationStatusCommandHandler creates a handler for status auditing.
func NewSyncDriverVacationStatusCommandHandler(
	uowFactory VacationUoWFactory,
) SyncDriverVacationStatusCommandHandler {
	return SyncDriverVacationStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one audit round and returns the number of drivers whose
// status disagrees with the vacation calendar.
func (h SyncDriverVacationStatusCommandHandler) Handle(
	ctx context.Context, cmd SyncDriverVacationStatusCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	vacationRepo := uow.VacationRepository()

	vacations, err := vacationRepo.GetApprovedCoveringDate(ctx, kernel.Today())
	if err != nil {
		return 0, err
	}

	onVacation := make(map[string]struct{}, len(vacations))
	for _, v := range vacations {
		onVacation[v.Driver().String()] = struct{}{}
	}

	drivers, err := driverRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	drifted := 0
	for _, drv := range drivers {
		if drv.Status() == driver.Inactive {
			continue
		}

		_, covered := onVacation[drv.ID().String()]
		if covered != (drv.Status() == driver.OnVacation) {
			drifted++
		}
	}

	return drifted, nil
}
