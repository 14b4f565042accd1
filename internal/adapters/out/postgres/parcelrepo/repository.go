package parcelrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/parcel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
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

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus performs the conditional status write: the row is touched only
// if its persisted status still equals from. A zero-row update is classified
// by a follow-up read: a missing row is ObjectNotFoundError, a row whose
// status moved underneath the caller is VersionIsInvalidError.
func (r *GormParcelRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	from, to status.Value,
	at time.Time,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
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
			Model(&ParcelDTO{}).
			Where("id = ?", id.Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("parcel", id.String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("parcel status",
			fmt.Errorf("parcel %s is no longer in status %s", id, from))
	}

	return nil
}

// GetAllInStatus retrieves all parcels currently in the given status.
func (r *GormParcelRepository) GetAllInStatus(ctx context.Context, value status.Value) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", string(value)).Error; err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
