// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. This package implements the repository pattern for the
// parcel domain aggregate, handling the conversion between domain entities and
// database representations.
package parcelrepo

import (
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/parcel"
	"lifecycle/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Status and status_changed_at are indexed because the overdue
// sweep and the status-filtered reads drive the hot queries.
type ParcelDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber  string
	Status          string    `gorm:"index"`
	StatusChangedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:              aggregate.ID().Bytes(),
		OwnerID:         aggregate.OwnerID().Bytes(),
		TrackingNumber:  aggregate.TrackingNumber(),
		Status:          string(aggregate.Status()),
		StatusChangedAt: aggregate.StatusChangedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using
// RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(id, ownerID, dto.TrackingNumber,
		status.Value(dto.Status), dto.StatusChangedAt)
}
