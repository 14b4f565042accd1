package ports

import (
	"context"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/shipment"
	"lifecycle/internal/core/domain/model/status"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. See ParcelRepository for the conditional-update semantics of
// UpdateStatus.
type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	UpdateStatus(ctx context.Context, id kernel.UUID, from, to status.Value, at time.Time) error

	GetAllInStatus(ctx context.Context, value status.Value) ([]*shipment.Shipment, error)
}
