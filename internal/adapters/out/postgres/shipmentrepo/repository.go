package shipmentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/shipment"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus performs the conditional status write. See
// parcelrepo.GormParcelRepository.UpdateStatus for the zero-row
// classification.
func (r *GormShipmentRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	from, to status.Value,
	at time.Time,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), string(from)).
		Updates(map[string]any{
			"status":            string(to),
			"status_changed_at": at,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&ShipmentDTO{}).
			Where("id = ?", id.Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("shipment", id.String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("shipment status",
			fmt.Errorf("shipment %s is no longer in status %s", id, from))
	}

	return nil
}

// GetAllInStatus retrieves all shipments currently in the given status.
func (r *GormShipmentRepository) GetAllInStatus(ctx context.Context, value status.Value) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", string(value)).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
