package commands

import (
	"errors"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/guard"
)

var (
	ErrChangeParcelStatusCommandIsNotConstructed = errors.New(
		"ChangeParcelStatusCommand must be created via NewChangeParcelStatusCommand constructor",
	)
	ErrNewStatusIsRequired = errors.New("new status is required")
	ErrChangedAtIsRequired = errors.New("changed at timestamp is required")
)

// ChangeParcelStatusCommand represents a request by an actor to move a
// parcel to a new lifecycle status. The command captures who asked and when;
// whether the move is allowed is decided by the workflow validator at
// handling time, against the parcel's current persisted status.
//
// Example:
//
//	cmd, err := NewChangeParcelStatusCommand(
//	    parcelID, status.Shipped, status.RoleWarehouseAdmin, "ops-17", "left dock 4", time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid status change request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !result.Applied() {
//	    // result.Validation explains the rejection
//	}
type ChangeParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	newStatus status.Value
	actorRole status.Role
	actorID   string
	notes     string
	changedAt time.Time

	guard guard.ConstructorGuard
}

// NewChangeParcelStatusCommand creates a command to change a parcel's
// status. Validates the parcel ID, that the new status is a registered
// package status, that the actor role is known and the timestamp is set.
// The actor ID and notes are optional free text.
func NewChangeParcelStatusCommand(
	parcelID kernel.UUID,
	newStatus status.Value,
	actorRole status.Role,
	actorID string,
	notes string,
	changedAt time.Time,
) (ChangeParcelStatusCommand, error) {
	statusCommand := ChangeParcelStatusCommand{
		actorID: actorID,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setParcelID(parcelID),
		statusCommand.setNewStatus(newStatus),
		statusCommand.setActorRole(actorRole),
		statusCommand.setChangedAt(changedAt),
	); err != nil {
		return ChangeParcelStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeParcelStatusCommandIsNotConstructed if validation fails.
func (c ChangeParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to move.
func (c ChangeParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// NewStatus returns the requested destination status.
func (c ChangeParcelStatusCommand) NewStatus() status.Value {
	return c.newStatus
}

// ActorRole returns the role of the actor requesting the change.
func (c ChangeParcelStatusCommand) ActorRole() status.Role {
	return c.actorRole
}

// ActorID returns the identifier of the requesting actor, if supplied.
func (c ChangeParcelStatusCommand) ActorID() string {
	return c.actorID
}

// Notes returns the free-text annotation attached to the change.
func (c ChangeParcelStatusCommand) Notes() string {
	return c.notes
}

// ChangedAt returns the timestamp the change takes effect.
func (c ChangeParcelStatusCommand) ChangedAt() time.Time {
	return c.changedAt
}

func (c *ChangeParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *ChangeParcelStatusCommand) setNewStatus(newStatus status.Value) error {
	if newStatus == "" {
		return ErrNewStatusIsRequired
	}

	c.newStatus = newStatus
	return nil
}

func (c *ChangeParcelStatusCommand) setActorRole(actorRole status.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *ChangeParcelStatusCommand) setChangedAt(changedAt time.Time) error {
	if changedAt.IsZero() {
		return ErrChangedAtIsRequired
	}

	c.changedAt = changedAt
	return nil
}
