// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence, mirroring parcelrepo for the shipment aggregate.
package shipmentrepo

import (
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/shipment"
	"lifecycle/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The status column stores the raw string, which for old rows may
// be one of the legacy spellings; the domain registry accepts those on
// restore.
type ShipmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;index"`
	Reference       string
	Status          string    `gorm:"index"`
	StatusChangedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:              aggregate.ID().Bytes(),
		OwnerID:         aggregate.OwnerID().Bytes(),
		Reference:       aggregate.Reference(),
		Status:          string(aggregate.Status()),
		StatusChangedAt: aggregate.StatusChangedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, ownerID, dto.Reference,
		status.Value(dto.Status), dto.StatusChangedAt)
}
