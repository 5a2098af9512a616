// Package cmd wires the application together: configuration, database,
// cache, and the construction of every command and query handler.
package cmd

import (
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot builds every handler from shared infrastructure. Command
// handlers get fresh unit of work instances per call; query handlers read
// straight from the database connection.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vacationUoWFactory() commands.VacationUoWFactory {
	return FuncVacationUoWFactory(func() commands.VacationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAutoAssignDeliveryCommandHandler() commands.AutoAssignDeliveryCommandHandler {
	return commands.NewAutoAssignDeliveryCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCancelAssignmentCommandHandler() commands.CancelAssignmentCommandHandler {
	return commands.NewCancelAssignmentCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	return commands.NewUpdateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateRequestVacationCommandHandler() commands.RequestVacationCommandHandler {
	return commands.NewRequestVacationCommandHandler(c.vacationUoWFactory())
}

func (c *CompositionRoot) CreateApproveVacationCommandHandler() commands.ApproveVacationCommandHandler {
	return commands.NewApproveVacationCommandHandler(c.vacationUoWFactory())
}

func (c *CompositionRoot) CreateRejectVacationCommandHandler() commands.RejectVacationCommandHandler {
	return commands.NewRejectVacationCommandHandler(c.vacationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteVacationCommandHandler() commands.DeleteVacationCommandHandler {
	return commands.NewDeleteVacationCommandHandler(c.vacationUoWFactory())
}

func (c *CompositionRoot) CreateSyncDriverVacationStatusCommandHandler() commands.SyncDriverVacationStatusCommandHandler {
	return commands.NewSyncDriverVacationStatusCommandHandler(c.vacationUoWFactory())
}

func (c *CompositionRoot) CreateGetPendingDeliveriesQueryHandler() queries.GetPendingDeliveriesQueryHandler {
	return queries.NewGetPendingDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDeliveriesQueryHandler() queries.GetAllDeliveriesQueryHandler {
	return queries.NewGetAllDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDriversQueryHandler() queries.GetActiveDriversQueryHandler {
	return queries.NewGetActiveDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVacationsQueryHandler() queries.GetVacationsQueryHandler {
	return queries.NewGetVacationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateMonthlyRevenueQueryHandler() queries.MonthlyRevenueQueryHandler {
	return queries.NewMonthlyRevenueQueryHandler(c.gormDB)
}

// CreateRecommendDriverQueryHandler builds the recommendation handler on
// repositories outside any transaction, recommendations are read-only.
func (c *CompositionRoot) CreateRecommendDriverQueryHandler() queries.RecommendDriverQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewRecommendDriverQueryHandler(uow.DeliveryRepository(), uow.DriverRepository())
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncVacationUoWFactory func() commands.VacationUoW

func (f FuncVacationUoWFactory) Create() commands.VacationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
