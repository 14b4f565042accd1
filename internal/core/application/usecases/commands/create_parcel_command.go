package commands

import (
	"errors"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
	ErrCreatedAtIsRequired      = errors.New("created at timestamp is required")
)

// CreateParcelCommand represents a request to register a new parcel that a
// customer expects to arrive at the warehouse. The parcel starts its
// lifecycle in pending_arrival.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(parcelID, ownerID, "1Z999AA10123456784", time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID       kernel.UUID
	ownerID        kernel.UUID
	trackingNumber string
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates that both identifiers are valid, the tracking number is not
// empty and the timestamp is set.
func NewCreateParcelCommand(
	parcelID, ownerID kernel.UUID,
	trackingNumber string,
	createdAt time.Time,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setOwnerID(ownerID),
		parcelCommand.setTrackingNumber(trackingNumber),
		parcelCommand.setCreatedAt(createdAt),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// OwnerID returns the identifier of the customer who owns the parcel.
func (c CreateParcelCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// TrackingNumber returns the carrier tracking number for the inbound parcel.
func (c CreateParcelCommand) TrackingNumber() string {
	return c.trackingNumber
}

// CreatedAt returns the registration timestamp.
func (c CreateParcelCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateParcelCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *CreateParcelCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}

	c.createdAt = createdAt
	return nil
}
