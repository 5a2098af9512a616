package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
)

// UpdateDeliveryCommandHandler handles detail changes on pending deliveries.
// Deliveries that already left the pending status reject the update.
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery update operations.
func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery update command and returns the updated aggregate.
func (h UpdateDeliveryCommandHandler) Handle(
	ctx context.Context, cmd UpdateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateDetails(
		cmd.Destination(),
		cmd.Address(),
		cmd.Price(),
		cmd.FeedTonnage(),
		cmd.DeliveryDate(),
		cmd.Notes(),
	); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
