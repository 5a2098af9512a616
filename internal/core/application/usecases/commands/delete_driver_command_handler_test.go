package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDriver := newActiveDriver(t, "Kim Cheol-su", "010-1234-5678", "5.0")
	cmd, err := commands.NewDeleteDriverCommand(testDriver.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		deliveryRepo.On("CountByDriverInStatuses", ctx, testDriver.ID(),
			delivery.Assigned, delivery.InProgress).Return(0, nil).Once(),
		driverRepo.On("Delete", ctx, testDriver.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	driverRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
}

func TestDeleteDriverCommandHandler_Handle_DriverHasActiveDeliveries(t *testing.T) {
	ctx := t.Context()

	testDriver := newActiveDriver(t, "Kim Cheol-su", "010-1234-5678", "5.0")
	cmd, err := commands.NewDeleteDriverCommand(testDriver.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		deliveryRepo.On("CountByDriverInStatuses", ctx, testDriver.ID(),
			delivery.Assigned, delivery.InProgress).Return(2, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	driverRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
