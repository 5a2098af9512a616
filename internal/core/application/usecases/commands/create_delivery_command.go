package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrDestinationIsRequired = errors.New("destination is required")
	ErrAddressIsRequired     = errors.New("address is required")
	ErrPriceIsInvalid        = errors.New("price must be greater than 0")
	ErrFeedTonnageIsInvalid  = errors.New("feed tonnage must be greater than 0")
)

// CreateDeliveryCommand represents a request to register a new feed delivery.
// Encapsulates the destination farm, shipping address, price, feed tonnage
// and the scheduled delivery date.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(
//	    deliveryID, "Gimpo Farm", "77 Airport-ro, Gimpo",
//	    decimal.NewFromInt(450000), decimal.RequireFromString("3.5"),
//	    deliveryDate, "call before arrival")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID   kernel.UUID
	destination  string
	address      string
	price        decimal.Decimal
	feedTonnage  decimal.Decimal
	deliveryDate kernel.Date
	notes        string

	historical bool
	driverID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new pending delivery.
// Validates that the ID and date are constructed, the destination and address
// are non-empty, and the price and tonnage are positive.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	destination string,
	address string,
	price decimal.Decimal,
	feedTonnage decimal.Decimal,
	deliveryDate kernel.Date,
	notes string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
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
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// NewCreateHistoricalDeliveryCommand creates a command to backfill a completed
// delivery. The delivery date may lie in the past and the driver who carried
// it out is recorded directly.
func NewCreateHistoricalDeliveryCommand(
	deliveryID kernel.UUID,
	destination string,
	address string,
	price decimal.Decimal,
	feedTonnage decimal.Decimal,
	deliveryDate kernel.Date,
	driverID kernel.UUID,
	notes string,
) (CreateDeliveryCommand, error) {
	cmd, err := NewCreateDeliveryCommand(
		deliveryID, destination, address, price, feedTonnage, deliveryDate, notes)
	if err != nil {
		return CreateDeliveryCommand{}, err
	}

	if err := driverID.Validate(); err != nil {
		return CreateDeliveryCommand{}, err
	}

	cmd.historical = true
	cmd.driverID = &driverID
	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Destination returns the destination farm name.
func (c CreateDeliveryCommand) Destination() string {
	return c.destination
}

// Address returns the shipping address.
func (c CreateDeliveryCommand) Address() string {
	return c.address
}

// Price returns the delivery price.
func (c CreateDeliveryCommand) Price() decimal.Decimal {
	return c.price
}

// FeedTonnage returns the feed tonnage to deliver.
func (c CreateDeliveryCommand) FeedTonnage() decimal.Decimal {
	return c.feedTonnage
}

// DeliveryDate returns the scheduled delivery date.
func (c CreateDeliveryCommand) DeliveryDate() kernel.Date {
	return c.deliveryDate
}

// Notes returns the free-form delivery notes.
func (c CreateDeliveryCommand) Notes() string {
	return c.notes
}

// Historical reports whether the command backfills an already completed delivery.
func (c CreateDeliveryCommand) Historical() bool {
	return c.historical
}

// DriverID returns the driver recorded for a historical delivery, nil otherwise.
func (c CreateDeliveryCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateDeliveryCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateDeliveryCommand) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *CreateDeliveryCommand) setFeedTonnage(feedTonnage decimal.Decimal) error {
	if !feedTonnage.IsPositive() {
		return ErrFeedTonnageIsInvalid
	}

	c.feedTonnage = feedTonnage
	return nil
}

func (c *CreateDeliveryCommand) setDeliveryDate(deliveryDate kernel.Date) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}

	c.deliveryDate = deliveryDate
	return nil
}
