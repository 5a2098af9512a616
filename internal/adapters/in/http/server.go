// Package http exposes the application's use cases over a REST API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/adapters/out/rediscache"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Cache keys for the cached read endpoints.
const (
	driverListCacheKey  = "drivers:all"
	revenueCacheKeyBase = "revenue:"
)

// Server coordinates between HTTP handlers and application use cases.
// Driver lists and revenue summaries are served through the cache; the
// availability endpoint is always computed fresh.
type Server struct {
	// Command handlers
	createDeliveryHandler   commands.CreateDeliveryCommandHandler
	updateDeliveryHandler   commands.UpdateDeliveryCommandHandler
	deleteDeliveryHandler   commands.DeleteDeliveryCommandHandler
	assignDeliveryHandler   commands.AssignDeliveryCommandHandler
	autoAssignHandler       commands.AutoAssignDeliveryCommandHandler
	startDeliveryHandler    commands.StartDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	cancelAssignmentHandler commands.CancelAssignmentCommandHandler
	createDriverHandler     commands.CreateDriverCommandHandler
	updateDriverHandler     commands.UpdateDriverCommandHandler
	deleteDriverHandler     commands.DeleteDriverCommandHandler
	requestVacationHandler  commands.RequestVacationCommandHandler
	approveVacationHandler  commands.ApproveVacationCommandHandler
	rejectVacationHandler   commands.RejectVacationCommandHandler
	deleteVacationHandler   commands.DeleteVacationCommandHandler
	syncVacationHandler     commands.SyncDriverVacationStatusCommandHandler

	// Query handlers
	pendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler
	activeDeliveriesHandler  queries.GetActiveDeliveriesQueryHandler
	allDeliveriesHandler     queries.GetAllDeliveriesQueryHandler
	getDeliveryHandler       queries.GetDeliveryQueryHandler
	allDriversHandler        queries.GetAllDriversQueryHandler
	activeDriversHandler     queries.GetActiveDriversQueryHandler
	getDriverHandler         queries.GetDriverQueryHandler
	availableDriversHandler  queries.GetAvailableDriversQueryHandler
	vacationsHandler         queries.GetVacationsQueryHandler
	monthlyRevenueHandler    queries.MonthlyRevenueQueryHandler
	recommendDriverHandler   queries.RecommendDriverQueryHandler

	cache  *rediscache.Cache
	logger *slog.Logger
}

// ServerHandlers bundles every command and query handler the server routes to.
type ServerHandlers struct {
	CreateDelivery   commands.CreateDeliveryCommandHandler
	UpdateDelivery   commands.UpdateDeliveryCommandHandler
	DeleteDelivery   commands.DeleteDeliveryCommandHandler
	AssignDelivery   commands.AssignDeliveryCommandHandler
	AutoAssign       commands.AutoAssignDeliveryCommandHandler
	StartDelivery    commands.StartDeliveryCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler
	CancelAssignment commands.CancelAssignmentCommandHandler
	CreateDriver     commands.CreateDriverCommandHandler
	UpdateDriver     commands.UpdateDriverCommandHandler
	DeleteDriver     commands.DeleteDriverCommandHandler
	RequestVacation  commands.RequestVacationCommandHandler
	ApproveVacation  commands.ApproveVacationCommandHandler
	RejectVacation   commands.RejectVacationCommandHandler
	DeleteVacation   commands.DeleteVacationCommandHandler
	SyncVacations    commands.SyncDriverVacationStatusCommandHandler

	PendingDeliveries queries.GetPendingDeliveriesQueryHandler
	ActiveDeliveries  queries.GetActiveDeliveriesQueryHandler
	AllDeliveries     queries.GetAllDeliveriesQueryHandler
	GetDelivery       queries.GetDeliveryQueryHandler
	AllDrivers        queries.GetAllDriversQueryHandler
	ActiveDrivers     queries.GetActiveDriversQueryHandler
	GetDriver         queries.GetDriverQueryHandler
	AvailableDrivers  queries.GetAvailableDriversQueryHandler
	Vacations         queries.GetVacationsQueryHandler
	MonthlyRevenue    queries.MonthlyRevenueQueryHandler
	RecommendDriver   queries.RecommendDriverQueryHandler
}

// NewServer creates an HTTP server. The cache may be nil, in which case
// every read goes to the database.
func NewServer(handlers ServerHandlers, cache *rediscache.Cache, logger *slog.Logger) *Server {
	return &Server{
		createDeliveryHandler:   handlers.CreateDelivery,
		updateDeliveryHandler:   handlers.UpdateDelivery,
		deleteDeliveryHandler:   handlers.DeleteDelivery,
		assignDeliveryHandler:   handlers.AssignDelivery,
		autoAssignHandler:       handlers.AutoAssign,
		startDeliveryHandler:    handlers.StartDelivery,
		completeDeliveryHandler: handlers.CompleteDelivery,
		cancelAssignmentHandler: handlers.CancelAssignment,
		createDriverHandler:     handlers.CreateDriver,
		updateDriverHandler:     handlers.UpdateDriver,
		deleteDriverHandler:     handlers.DeleteDriver,
		requestVacationHandler:  handlers.RequestVacation,
		approveVacationHandler:  handlers.ApproveVacation,
		rejectVacationHandler:   handlers.RejectVacation,
		deleteVacationHandler:   handlers.DeleteVacation,
		syncVacationHandler:     handlers.SyncVacations,

		pendingDeliveriesHandler: handlers.PendingDeliveries,
		activeDeliveriesHandler:  handlers.ActiveDeliveries,
		allDeliveriesHandler:     handlers.AllDeliveries,
		getDeliveryHandler:       handlers.GetDelivery,
		allDriversHandler:        handlers.AllDrivers,
		activeDriversHandler:     handlers.ActiveDrivers,
		getDriverHandler:         handlers.GetDriver,
		availableDriversHandler:  handlers.AvailableDrivers,
		vacationsHandler:         handlers.Vacations,
		monthlyRevenueHandler:    handlers.MonthlyRevenue,
		recommendDriverHandler:   handlers.RecommendDriver,

		cache:  cache,
		logger: logger,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries", s.GetAllDeliveries)
	api.GET("/deliveries/pending", s.GetPendingDeliveries)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.POST("/deliveries/auto-assign", s.AutoAssignDelivery)
	api.GET("/deliveries/:id", s.GetDelivery)
	api.PUT("/deliveries/:id", s.UpdateDelivery)
	api.DELETE("/deliveries/:id", s.DeleteDelivery)
	api.POST("/deliveries/:id/assign", s.AssignDelivery)
	api.POST("/deliveries/:id/start", s.StartDelivery)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)
	api.POST("/deliveries/:id/cancel-assignment", s.CancelAssignment)
	api.GET("/deliveries/:id/recommendation", s.RecommendDriver)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetAllDrivers)
	api.GET("/drivers/active", s.GetActiveDrivers)
	api.GET("/drivers/available", s.GetAvailableDrivers)
	api.GET("/drivers/:id", s.GetDriver)
	api.PUT("/drivers/:id", s.UpdateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)
	api.GET("/drivers/:id/revenue", s.GetDriverMonthlyRevenue)
	api.POST("/drivers/sync-vacation-status", s.SyncDriverVacationStatus)

	api.GET("/revenue", s.GetMonthlyRevenue)

	api.POST("/vacations", s.RequestVacation)
	api.GET("/vacations", s.GetVacations)
	api.POST("/vacations/:id/approve", s.ApproveVacation)
	api.POST("/vacations/:id/reject", s.RejectVacation)
	api.DELETE("/vacations/:id", s.DeleteVacation)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	deliveryDate, err := kernel.ParseDate(req.DeliveryDate)
	if err != nil {
		return respondError(ctx, err)
	}

	var cmd commands.CreateDeliveryCommand
	if req.Historical {
		driverID, idErr := kernel.UUIDFromString(req.DriverID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		cmd, err = commands.NewCreateHistoricalDeliveryCommand(
			kernel.NewUUID(), req.Destination, req.Address,
			req.Price, req.FeedTonnage, deliveryDate, driverID, req.Notes)
	} else {
		cmd, err = commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), req.Destination, req.Address,
			req.Price, req.FeedTonnage, deliveryDate, req.Notes)
	}
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.invalidateRevenue(ctx.Request().Context(), created.DeliveryDate())
	return ctx.JSON(http.StatusCreated, deliveryFromAggregate(created))
}

// UpdateDelivery handles PUT /api/v1/deliveries/:id.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	deliveryDate, err := kernel.ParseDate(req.DeliveryDate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryCommand(
		id, req.Destination, req.Address, req.Price, req.FeedTonnage, deliveryDate, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.invalidateRevenue(ctx.Request().Context(), updated.DeliveryDate())
	return ctx.JSON(http.StatusOK, deliveryFromAggregate(updated))
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:id.
func (s *Server) DeleteDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteDeliveryCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/v1/deliveries/:id/assign.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(id, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	assigned, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(assigned))
}

// AutoAssignDelivery handles POST /api/v1/deliveries/auto-assign. It picks
// the oldest pending delivery and assigns the least loaded eligible driver.
func (s *Server) AutoAssignDelivery(ctx echo.Context) error {
	assigned, err := s.autoAssignHandler.Handle(
		ctx.Request().Context(), commands.NewAutoAssignDeliveryCommand())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(assigned))
}

// StartDelivery handles POST /api/v1/deliveries/:id/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartDeliveryCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	started, err := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(started))
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	completed, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.invalidateRevenue(ctx.Request().Context(), completed.DeliveryDate())
	return ctx.JSON(http.StatusOK, deliveryFromAggregate(completed))
}

// CancelAssignment handles POST /api/v1/deliveries/:id/cancel-assignment.
func (s *Server) CancelAssignment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelAssignmentCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(cancelled))
}

// GetAllDeliveries handles GET /api/v1/deliveries.
func (s *Server) GetAllDeliveries(ctx echo.Context) error {
	deliveries, err := s.allDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllDeliveriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveriesFromResponses(deliveries))
}

// GetPendingDeliveries handles GET /api/v1/deliveries/pending.
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	deliveries, err := s.pendingDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingDeliveriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveriesFromResponses(deliveries))
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	deliveries, err := s.activeDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveriesFromResponses(deliveries))
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromResponse(found))
}

// RecommendDriver handles GET /api/v1/deliveries/:id/recommendation.
func (s *Server) RecommendDriver(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewRecommendDriverQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.recommendDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, recommendationFromResult(result))
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	joinDate, err := kernel.ParseDate(req.JoinDate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateDriverCommand(
		kernel.NewUUID(), req.Name, req.PhoneNumber,
		req.VehicleNumber, req.VehicleType, req.Tonnage, joinDate)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.invalidateDriverList(ctx.Request().Context())
	return ctx.JSON(http.StatusCreated, driverFromAggregate(created))
}

// UpdateDriver handles PUT /api/v1/drivers/:id.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateDriverCommand(
		id, req.Name, req.PhoneNumber, req.VehicleNumber, req.VehicleType, req.Tonnage)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.invalidateDriverList(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, driverFromAggregate(updated))
}

// DeleteDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateDriverList(ctx.Request().Context())
	return ctx.NoContent(http.StatusNoContent)
}

// GetAllDrivers handles GET /api/v1/drivers. The list is served from the
// cache when possible.
func (s *Server) GetAllDrivers(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if payload, ok := s.cacheGet(reqCtx, driverListCacheKey); ok {
		return ctx.JSONBlob(http.StatusOK, payload)
	}

	drivers, err := s.allDriversHandler.Handle(reqCtx, queries.NewGetAllDriversQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := driversFromResponses(drivers)
	s.cacheSet(reqCtx, driverListCacheKey, response, rediscache.DriverListTTL)
	return ctx.JSON(http.StatusOK, response)
}

// GetActiveDrivers handles GET /api/v1/drivers/active.
func (s *Server) GetActiveDrivers(ctx echo.Context) error {
	drivers, err := s.activeDriversHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveDriversQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driversFromResponses(drivers))
}

// GetDriver handles GET /api/v1/drivers/:id.
func (s *Server) GetDriver(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDriverQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverFromResponse(found))
}

// GetAvailableDrivers handles GET /api/v1/drivers/available?date=YYYY-MM-DD.
// Availability is never cached.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	date, err := kernel.ParseDate(ctx.QueryParam("date"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAvailableDriversQuery(date)
	if err != nil {
		return respondError(ctx, err)
	}

	drivers, err := s.availableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driversFromResponses(drivers))
}

// SyncDriverVacationStatus handles POST /api/v1/drivers/sync-vacation-status.
// The audit is read only, so the cached driver list stays valid.
func (s *Server) SyncDriverVacationStatus(ctx echo.Context) error {
	drifted, err := s.syncVacationHandler.Handle(
		ctx.Request().Context(), commands.NewSyncDriverVacationStatusCommand())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SyncResult{Drifted: drifted})
}

// GetMonthlyRevenue handles GET /api/v1/revenue?month=YYYY-MM.
func (s *Server) GetMonthlyRevenue(ctx echo.Context) error {
	month, err := kernel.ParseYearMonth(ctx.QueryParam("month"))
	if err != nil {
		return respondError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	cacheKey := revenueCacheKeyBase + month.String()

	if payload, ok := s.cacheGet(reqCtx, cacheKey); ok {
		return ctx.JSONBlob(http.StatusOK, payload)
	}

	query, err := queries.NewMonthlyRevenueQuery(month)
	if err != nil {
		return respondError(ctx, err)
	}

	summaries, err := s.monthlyRevenueHandler.Handle(reqCtx, query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := revenueFromSummaries(summaries)
	s.cacheSet(reqCtx, cacheKey, response, rediscache.RevenueTTL)
	return ctx.JSON(http.StatusOK, response)
}

// GetDriverMonthlyRevenue handles GET /api/v1/drivers/:id/revenue?month=YYYY-MM.
func (s *Server) GetDriverMonthlyRevenue(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	month, err := kernel.ParseYearMonth(ctx.QueryParam("month"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewMonthlyRevenueByDriverQuery(month, id)
	if err != nil {
		return respondError(ctx, err)
	}

	summaries, err := s.monthlyRevenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, revenueFromSummaries(summaries))
}

// RequestVacation handles POST /api/v1/vacations.
func (s *Server) RequestVacation(ctx echo.Context) error {
	var req RequestVacationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	startDate, err := kernel.ParseDate(req.StartDate)
	if err != nil {
		return respondError(ctx, err)
	}

	endDate, err := kernel.ParseDate(req.EndDate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRequestVacationCommand(
		kernel.NewUUID(), driverID, startDate, endDate, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.requestVacationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, vacationFromAggregate(created))
}

// GetVacations handles GET /api/v1/vacations with an optional driver_id filter.
func (s *Server) GetVacations(ctx echo.Context) error {
	query := queries.NewGetVacationsQuery()

	if raw := ctx.QueryParam("driver_id"); raw != "" {
		driverID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		var qErr error
		query, qErr = queries.NewGetVacationsByDriverQuery(driverID)
		if qErr != nil {
			return respondError(ctx, qErr)
		}
	}

	vacations, err := s.vacationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vacationsFromResponses(vacations))
}

// ApproveVacation handles POST /api/v1/vacations/:id/approve. Approval can
// change which drivers count as available, so the driver list cache is
// dropped.
func (s *Server) ApproveVacation(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewApproveVacationCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	approved, err := s.approveVacationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.invalidateDriverList(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, vacationFromAggregate(approved))
}

// RejectVacation handles POST /api/v1/vacations/:id/reject.
func (s *Server) RejectVacation(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectVacationCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	rejected, err := s.rejectVacationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vacationFromAggregate(rejected))
}

// DeleteVacation handles DELETE /api/v1/vacations/:id.
func (s *Server) DeleteVacation(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteVacationCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteVacationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateDriverList(ctx.Request().Context())
	return ctx.NoContent(http.StatusNoContent)
}

// cacheGet reads a cached JSON payload. Cache failures degrade to a
// database read, they are logged but never surfaced to the client.
func (s *Server) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}

	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, rediscache.ErrCacheMiss) {
			s.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	return payload, true
}

func (s *Server) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache serialization failed", "key", key, "error", err)
		return
	}

	if err := s.cache.Set(ctx, key, payload, ttl); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func (s *Server) invalidateDriverList(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Invalidate(ctx, driverListCacheKey); err != nil {
		s.logger.Warn("cache invalidation failed", "key", driverListCacheKey, "error", err)
	}
}

// invalidateRevenue drops the cached revenue summary for the month the
// delivery date falls in. Keys are per-month, so only the affected month
// needs dropping.
func (s *Server) invalidateRevenue(ctx context.Context, deliveryDate kernel.Date) {
	if s.cache == nil {
		return
	}

	key := revenueCacheKeyBase + deliveryDate.String()[:7]
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.logger.Warn("cache invalidation failed", "key", key, "error", err)
	}
}
