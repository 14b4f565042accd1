package commands

import (
	"errors"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/guard"
)

var ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
	"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
)

// ChangeShipmentStatusCommand represents a request by an actor to move a
// shipment to a new lifecycle status. See ChangeParcelStatusCommand for the
// validation split between construction time and handling time.
type ChangeShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	newStatus  status.Value
	actorRole  status.Role
	actorID    string
	notes      string
	changedAt  time.Time

	guard guard.ConstructorGuard
}

// NewChangeShipmentStatusCommand creates a command to change a shipment's
// status. Validates the shipment ID, the new status, the actor role and the
// timestamp. The actor ID and notes are optional free text.
func NewChangeShipmentStatusCommand(
	shipmentID kernel.UUID,
	newStatus status.Value,
	actorRole status.Role,
	actorID string,
	notes string,
	changedAt time.Time,
) (ChangeShipmentStatusCommand, error) {
	statusCommand := ChangeShipmentStatusCommand{
		actorID: actorID,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setShipmentID(shipmentID),
		statusCommand.setNewStatus(newStatus),
		statusCommand.setActorRole(actorRole),
		statusCommand.setChangedAt(changedAt),
	); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeShipmentStatusCommandIsNotConstructed if validation fails.
func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to move.
func (c ChangeShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// NewStatus returns the requested destination status.
func (c ChangeShipmentStatusCommand) NewStatus() status.Value {
	return c.newStatus
}

// ActorRole returns the role of the actor requesting the change.
func (c ChangeShipmentStatusCommand) ActorRole() status.Role {
	return c.actorRole
}

// ActorID returns the identifier of the requesting actor, if supplied.
func (c ChangeShipmentStatusCommand) ActorID() string {
	return c.actorID
}

// Notes returns the free-text annotation attached to the change.
func (c ChangeShipmentStatusCommand) Notes() string {
	return c.notes
}

// ChangedAt returns the timestamp the change takes effect.
func (c ChangeShipmentStatusCommand) ChangedAt() time.Time {
	return c.changedAt
}

func (c *ChangeShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ChangeShipmentStatusCommand) setNewStatus(newStatus status.Value) error {
	if newStatus == "" {
		return ErrNewStatusIsRequired
	}

	c.newStatus = newStatus
	return nil
}

func (c *ChangeShipmentStatusCommand) setActorRole(actorRole status.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *ChangeShipmentStatusCommand) setChangedAt(changedAt time.Time) error {
	if changedAt.IsZero() {
		return ErrChangedAtIsRequired
	}

	c.changedAt = changedAt
	return nil
}
