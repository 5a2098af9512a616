package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand represents a request to change the details of a
// pending delivery. All detail fields are replaced at once.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID   kernel.UUID
	destination  string
	address      string
	price        decimal.Decimal
	feedTonnage  decimal.Decimal
	deliveryDate kernel.Date
	notes        string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to update a delivery's details.
// Applies the same field validation as delivery creation.
func NewUpdateDeliveryCommand(
	deliveryID kernel.UUID,
	destination string,
	address string,
	price decimal.Decimal,
	feedTonnage decimal.Decimal,
	deliveryDate kernel.Date,
	notes string,
) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDestination(destination),
		cmd.setAddress(address),
		cmd.setPrice(price),
		cmd.setFeedTonnage(feedTonnage),
		cmd.setDeliveryDate(deliveryDate),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Destination returns the new destination farm name.
func (c UpdateDeliveryCommand) Destination() string {
	return c.destination
}

// Address returns the new shipping address.
func (c UpdateDeliveryCommand) Address() string {
	return c.address
}

// Price returns the new delivery price.
func (c UpdateDeliveryCommand) Price() decimal.Decimal {
	return c.price
}

// FeedTonnage returns the new feed tonnage.
func (c UpdateDeliveryCommand) FeedTonnage() decimal.Decimal {
	return c.feedTonnage
}

// DeliveryDate returns the new scheduled delivery date.
func (c UpdateDeliveryCommand) DeliveryDate() kernel.Date {
	return c.deliveryDate
}

// Notes returns the new delivery notes.
func (c UpdateDeliveryCommand) Notes() string {
	return c.notes
}

func (c *UpdateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *UpdateDeliveryCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *UpdateDeliveryCommand) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *UpdateDeliveryCommand) setFeedTonnage(feedTonnage decimal.Decimal) error {
	if !feedTonnage.IsPositive() {
		return ErrFeedTonnageIsInvalid
	}

	c.feedTonnage = feedTonnage
	return nil
}

func (c *UpdateDeliveryCommand) setDeliveryDate(deliveryDate kernel.Date) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}

	c.deliveryDate = deliveryDate
	return nil
}
