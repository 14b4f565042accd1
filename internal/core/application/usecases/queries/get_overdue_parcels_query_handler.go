package queries

import (
	"context"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/core/domain/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueParcelsQueryHandler scans the parcel table for entries whose
// dwell in their current status has run past the policy expectation. The
// dwell tables live in code, so the handler reads candidate rows and applies
// the policy in process rather than pushing thresholds into SQL.
type GetOverdueParcelsQueryHandler struct {
	db     *gorm.DB
	policy *workflow.DurationPolicy
}

// NewGetOverdueParcelsQueryHandler creates a handler for overdue parcel
// queries. Requires a GORM database connection and the dwell-time policy.
func NewGetOverdueParcelsQueryHandler(db *gorm.DB, policy *workflow.DurationPolicy) GetOverdueParcelsQueryHandler {
	return GetOverdueParcelsQueryHandler{db: db, policy: policy}
}

// Handle executes the query. Statuses without a dwell expectation (final
// states and customer-wait states) never appear in the result. Results come
// back oldest dwell first.
func (h GetOverdueParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueParcelsQuery,
) ([]GetOverdueParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			tracking_number,
			status,
			status_changed_at
		FROM parcels
		ORDER BY status_changed_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, ownerID uuid.UUID
		var trackingNumber, statusValue string
		var statusChangedAt time.Time

		err = rows.Scan(
			&id,
			&ownerID,
			&trackingNumber,
			&statusValue,
			&statusChangedAt,
		)
		if err != nil {
			return nil, err
		}

		value := status.Value(statusValue)
		expected, ok := h.policy.ExpectedDuration(status.KindPackage, value)
		if !ok {
			continue
		}
		elapsed := query.AsOf().Sub(statusChangedAt)
		if elapsed <= expected {
			continue
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		owner, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}

		overdue = append(overdue, GetOverdueParcelsQueryResponse{
			ID:              parcelID,
			OwnerID:         owner,
			TrackingNumber:  trackingNumber,
			Status:          value,
			StatusChangedAt: statusChangedAt,
			Expected:        expected,
			OverdueBy:       elapsed - expected,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
