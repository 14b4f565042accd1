package ports

import (
	"context"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/parcel"
	"lifecycle/internal/core/domain/model/status"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its unique identifier, including its current
	// status and the time it entered that status.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// UpdateStatus performs the conditional status write for an accepted
	// transition: the row is updated only if its persisted status still
	// equals from. A stale read (another actor won the race) yields
	// errs.VersionIsInvalidError so the caller can re-read and re-validate;
	// a missing row yields errs.ObjectNotFoundError. The write is never a
	// silent overwrite.
	UpdateStatus(ctx context.Context, id kernel.UUID, from, to status.Value, at time.Time) error

	// GetAllInStatus retrieves all parcels currently in the given status.
	GetAllInStatus(ctx context.Context, value status.Value) ([]*parcel.Parcel, error)
}
