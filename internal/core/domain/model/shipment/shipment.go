package shipment

import (
	"errors"
	"fmt"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate for a consolidated group of parcels dispatched
// together (entity kind "shipment"). Like Parcel, it records lifecycle state
// without judging transitions; that is the workflow validator's job.
type Shipment struct {
	id              kernel.UUID
	ownerID         kernel.UUID
	reference       string
	statusValue     status.Value
	statusChangedAt time.Time

	isConstructed bool
}

// NewShipment creates a shipment in the initial awaiting_quote state.
func NewShipment(id, ownerID kernel.UUID, reference string, createdAt time.Time) (*Shipment, error) {
	s := &Shipment{
		statusValue:     status.Initial(status.KindShipment),
		statusChangedAt: createdAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setReference(reference),
		validateTimestamp(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence. Legacy status
// spellings on old rows are accepted; they are registry members.
func RestoreShipment(
	id, ownerID kernel.UUID,
	reference string,
	statusValue status.Value,
	statusChangedAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, ownerID, reference, statusChangedAt)
	if err != nil {
		return nil, err
	}

	if !status.IsKnown(status.KindShipment, statusValue) {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a shipment status", statusValue))
	}
	s.statusValue = statusValue

	return s, nil
}

// Validate ensures the instance came from a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) OwnerID() kernel.UUID {
	return s.ownerID
}

func (s *Shipment) Reference() string {
	return s.reference
}

func (s *Shipment) Status() status.Value {
	return s.statusValue
}

func (s *Shipment) StatusChangedAt() time.Time {
	return s.statusChangedAt
}

// ApplyStatus records an accepted transition on the aggregate.
func (s *Shipment) ApplyStatus(newStatus status.Value, at time.Time) error {
	if !status.IsKnown(status.KindShipment, newStatus) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a shipment status", newStatus))
	}
	if at.Before(s.statusChangedAt) {
		return errs.NewValueIsInvalidErrorWithCause("status changed at",
			fmt.Errorf("%s is before the current status timestamp %s", at, s.statusChangedAt))
	}

	s.statusValue = newStatus
	s.statusChangedAt = at
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.ownerID = id
	return nil
}

func (s *Shipment) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	s.reference = reference
	return nil
}

func validateTimestamp(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("status changed at")
	}
	return nil
}
