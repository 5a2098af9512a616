package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAutoAssignDeliveryCommandHandler_Handle_PicksLeastLoadedDriver(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAutoAssignDeliveryCommand()

	testDelivery := newPendingDelivery(t, "2.0")
	busy := newActiveDriver(t, "Kim Cheol-su", "010-1234-5678", "5.0")
	idle := newActiveDriver(t, "Lee Young-hee", "010-2222-3333", "5.0")

	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	deliveryRepo.On("GetFirstInPendingStatus", ctx).Return(testDelivery, nil).Once()
	driverRepo.On("GetAllAvailableOnDate", ctx, testDelivery.DeliveryDate()).
		Return([]*driver.Driver{busy, idle}, nil).Once()
	deliveryRepo.On("CountByDriverAndDateRange", ctx, busy.ID(),
		mock.AnythingOfType("kernel.Date"), mock.AnythingOfType("kernel.Date")).Return(7, nil).Once()
	deliveryRepo.On("CountByDriverAndDateRange", ctx, idle.ID(),
		mock.AnythingOfType("kernel.Date"), mock.AnythingOfType("kernel.Date")).Return(2, nil).Once()
	deliveryRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*delivery.Delivery"), delivery.Pending).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignDeliveryCommandHandler(factory)
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, assigned)
	assert.Equal(t, delivery.Assigned, assigned.Status())
	require.NotNil(t, assigned.Driver())
	assert.True(t, assigned.Driver().IsEqual(idle.ID()))
	deliveryRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAutoAssignDeliveryCommandHandler_Handle_NoPendingDelivery(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAutoAssignDeliveryCommand()

	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		deliveryRepo.On("GetFirstInPendingStatus", ctx).
			Return(nil, errs.NewObjectNotFoundError("delivery", nil)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignDeliveryCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoPendingDelivery)
}

func TestAutoAssignDeliveryCommandHandler_Handle_NoCandidateDriver(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAutoAssignDeliveryCommand()

	testDelivery := newPendingDelivery(t, "9.0")
	small := newActiveDriver(t, "Kim Cheol-su", "010-1234-5678", "2.0")

	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	deliveryRepo.On("GetFirstInPendingStatus", ctx).Return(testDelivery, nil).Once()
	driverRepo.On("GetAllAvailableOnDate", ctx, testDelivery.DeliveryDate()).
		Return([]*driver.Driver{small}, nil).Once()
	deliveryRepo.On("CountByDriverAndDateRange", ctx, small.ID(),
		mock.AnythingOfType("kernel.Date"), mock.AnythingOfType("kernel.Date")).Return(0, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignDeliveryCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoCandidateDriver)
	deliveryRepo.AssertNotCalled(t, "UpdateInStatus", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, delivery.Pending, testDelivery.Status())
}

func TestAutoAssignDeliveryCommandHandler_Handle_WorkloadWindowBounds(t *testing.T) {
	// The workload count covers the 30 days up to and including today.
	ctx := t.Context()
	cmd := commands.NewAutoAssignDeliveryCommand()

	testDelivery := newPendingDelivery(t, "2.0")
	drv := newActiveDriver(t, "Kim Cheol-su", "010-1234-5678", "5.0")

	today := kernel.Today()
	from := today.AddDays(-30)

	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	deliveryRepo.On("GetFirstInPendingStatus", ctx).Return(testDelivery, nil).Once()
	driverRepo.On("GetAllAvailableOnDate", ctx, testDelivery.DeliveryDate()).
		Return([]*driver.Driver{drv}, nil).Once()
	deliveryRepo.On("CountByDriverAndDateRange", ctx, drv.ID(), from, today).Return(0, nil).Once()
	deliveryRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*delivery.Delivery"), delivery.Pending).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignDeliveryCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	deliveryRepo.AssertExpectations(t)
}
