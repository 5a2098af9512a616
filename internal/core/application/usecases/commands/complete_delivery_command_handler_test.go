package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInProgressDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d := newPendingDelivery(t, "3.5")
	require.NoError(t, d.Assign(kernel.NewUUID()))
	require.NoError(t, d.Start())
	return d
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDelivery := newInProgressDelivery(t)
	cmd, err := commands.NewCompleteDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*delivery.Delivery"), delivery.InProgress).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	completed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, completed)
	assert.Equal(t, delivery.Completed, completed.Status())
	assert.NotNil(t, completed.CompletedAt())
	assert.NotNil(t, completed.Driver()) // driver reference survives completion
	deliveryRepo.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_FromAssigned(t *testing.T) {
	ctx := t.Context()

	// A delivery can be completed without ever being started.
	testDelivery := newPendingDelivery(t, "3.5")
	require.NoError(t, testDelivery.Assign(kernel.NewUUID()))

	cmd, err := commands.NewCompleteDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*delivery.Delivery"), delivery.Assigned).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	completed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, completed)
	assert.Equal(t, delivery.Completed, completed.Status())
	assert.NotNil(t, completed.CompletedAt())
	assert.Nil(t, completed.StartedAt())
	deliveryRepo.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_NotInProgress(t *testing.T) {
	ctx := t.Context()

	testDelivery := newPendingDelivery(t, "3.5")
	cmd, err := commands.NewCompleteDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	deliveryRepo.AssertNotCalled(t, "UpdateInStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_ConcurrentCompletion(t *testing.T) {
	ctx := t.Context()

	testDelivery := newInProgressDelivery(t)
	cmd, err := commands.NewCompleteDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*delivery.Delivery"), delivery.InProgress).
			Return(ports.ErrStaleDelivery).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	assert.Contains(t, err.Error(), "already processed")
}

func TestCancelAssignmentCommandHandler_Handle_ClearsDriver(t *testing.T) {
	ctx := t.Context()

	testDelivery := newPendingDelivery(t, "3.5")
	require.NoError(t, testDelivery.Assign(kernel.NewUUID()))

	cmd, err := commands.NewCancelAssignmentCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*delivery.Delivery"), delivery.Assigned).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelAssignmentCommandHandler(factory)
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, cancelled)
	assert.Equal(t, delivery.Pending, cancelled.Status())
	assert.Nil(t, cancelled.Driver())
	assert.Nil(t, cancelled.AssignedAt())
}

func TestCancelAssignmentCommandHandler_Handle_FromInProgress(t *testing.T) {
	ctx := t.Context()

	// Cancelling a started delivery returns it to the pending pool and
	// clears the start timestamp along with the assignment.
	testDelivery := newInProgressDelivery(t)
	cmd, err := commands.NewCancelAssignmentCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*delivery.Delivery"), delivery.InProgress).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelAssignmentCommandHandler(factory)
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, cancelled)
	assert.Equal(t, delivery.Pending, cancelled.Status())
	assert.Nil(t, cancelled.Driver())
	assert.Nil(t, cancelled.AssignedAt())
	assert.Nil(t, cancelled.StartedAt())
	deliveryRepo.AssertExpectations(t)
}
