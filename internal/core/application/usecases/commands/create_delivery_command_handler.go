package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles the business logic for delivery creation.
// Regular deliveries start in the pending status; historical deliveries are
// persisted as already completed with the driver who carried them out.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation operations.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command and returns the created aggregate.
func (h CreateDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.buildDelivery(cmd)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h CreateDeliveryCommandHandler) buildDelivery(cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if cmd.Historical() {
		return delivery.NewHistoricalDelivery(
			cmd.DeliveryID(),
			cmd.Destination(),
			cmd.Address(),
			cmd.Price(),
			cmd.FeedTonnage(),
			cmd.DeliveryDate(),
			cmd.DriverID(),
			cmd.Notes(),
		)
	}

	return delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.Destination(),
		cmd.Address(),
		cmd.Price(),
		cmd.FeedTonnage(),
		cmd.DeliveryDate(),
		cmd.Notes(),
	)
}
