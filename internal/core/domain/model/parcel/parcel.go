package parcel

import (
	"errors"
	"fmt"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

// Parcel is the aggregate for an individual package moving through the
// warehouse (entity kind "package"). The aggregate records which lifecycle
// state it is in and since when; whether a state change is legal is decided
// by the workflow validator, not here.
//
// Invariants:
//   - Must have valid identifiers for itself and its owning customer
//   - Status is always a registered package status
//   - StatusChangedAt moves forward with every applied status
type Parcel struct {
	id              kernel.UUID
	ownerID         kernel.UUID
	trackingNumber  string
	statusValue     status.Value
	statusChangedAt time.Time

	isConstructed bool
}

// NewParcel creates a parcel in the initial pending_arrival state.
func NewParcel(id, ownerID kernel.UUID, trackingNumber string, createdAt time.Time) (*Parcel, error) {
	p := &Parcel{
		statusValue:     status.Initial(status.KindPackage),
		statusChangedAt: createdAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOwnerID(ownerID),
		p.setTrackingNumber(trackingNumber),
		validateTimestamp(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence with its stored
// status and timestamp.
func RestoreParcel(
	id, ownerID kernel.UUID,
	trackingNumber string,
	statusValue status.Value,
	statusChangedAt time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, ownerID, trackingNumber, statusChangedAt)
	if err != nil {
		return nil, err
	}

	if !status.IsKnown(status.KindPackage, statusValue) {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a package status", statusValue))
	}
	p.statusValue = statusValue

	return p, nil
}

// Validate ensures the instance came from a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Parcel) ID() kernel.UUID {
	return p.id
}

func (p *Parcel) OwnerID() kernel.UUID {
	return p.ownerID
}

func (p *Parcel) TrackingNumber() string {
	return p.trackingNumber
}

func (p *Parcel) Status() status.Value {
	return p.statusValue
}

func (p *Parcel) StatusChangedAt() time.Time {
	return p.statusChangedAt
}

// ApplyStatus records an accepted transition on the aggregate. The caller
// must have validated the transition first; ApplyStatus only refuses values
// outside the package status registry and non-monotonic timestamps.
func (p *Parcel) ApplyStatus(newStatus status.Value, at time.Time) error {
	if !status.IsKnown(status.KindPackage, newStatus) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a package status", newStatus))
	}
	if at.Before(p.statusChangedAt) {
		return errs.NewValueIsInvalidErrorWithCause("status changed at",
			fmt.Errorf("%s is before the current status timestamp %s", at, p.statusChangedAt))
	}

	p.statusValue = newStatus
	p.statusChangedAt = at
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.ownerID = id
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	p.trackingNumber = trackingNumber
	return nil
}

func validateTimestamp(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("status changed at")
	}
	return nil
}
