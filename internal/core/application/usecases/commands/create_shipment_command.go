package commands

import (
	"errors"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrReferenceIsRequired = errors.New("shipment reference is required")
)

// CreateShipmentCommand represents a request to open a new consolidated
// shipment for a customer. The shipment starts its lifecycle in
// awaiting_quote.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	ownerID    kernel.UUID
	reference  string
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a new shipment.
// Validates that both identifiers are valid, the reference is not empty and
// the timestamp is set.
func NewCreateShipmentCommand(
	shipmentID, ownerID kernel.UUID,
	reference string,
	createdAt time.Time,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setOwnerID(ownerID),
		shipmentCommand.setReference(reference),
		shipmentCommand.setCreatedAt(createdAt),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OwnerID returns the identifier of the customer who owns the shipment.
func (c CreateShipmentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Reference returns the human-readable shipment reference.
func (c CreateShipmentCommand) Reference() string {
	return c.reference
}

// CreatedAt returns the registration timestamp.
func (c CreateShipmentCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateShipmentCommand) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}

	c.reference = reference
	return nil
}

func (c *CreateShipmentCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}

	c.createdAt = createdAt
	return nil
}
