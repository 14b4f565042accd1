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

// GetOverdueShipmentsQueryHandler scans the shipment table for entries whose
// dwell in their current status has run past the policy expectation. See
// GetOverdueParcelsQueryHandler for why the policy is applied in process.
type GetOverdueShipmentsQueryHandler struct {
	db     *gorm.DB
	policy *workflow.DurationPolicy
}

// NewGetOverdueShipmentsQueryHandler creates a handler for overdue shipment
// queries. Requires a GORM database connection and the dwell-time policy.
func NewGetOverdueShipmentsQueryHandler(db *gorm.DB, policy *workflow.DurationPolicy) GetOverdueShipmentsQueryHandler {
	return GetOverdueShipmentsQueryHandler{db: db, policy: policy}
}

// Handle executes the query. Results come back oldest dwell first.
func (h GetOverdueShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueShipmentsQuery,
) ([]GetOverdueShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			reference,
			status,
			status_changed_at
		FROM shipments
		ORDER BY status_changed_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, ownerID uuid.UUID
		var reference, statusValue string
		var statusChangedAt time.Time

		err = rows.Scan(
			&id,
			&ownerID,
			&reference,
			&statusValue,
			&statusChangedAt,
		)
		if err != nil {
			return nil, err
		}

		value := status.Value(statusValue)
		expected, ok := h.policy.ExpectedDuration(status.KindShipment, value)
		if !ok {
			continue
		}
		elapsed := query.AsOf().Sub(statusChangedAt)
		if elapsed <= expected {
			continue
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		owner, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}

		overdue = append(overdue, GetOverdueShipmentsQueryResponse{
			ID:              shipmentID,
			OwnerID:         owner,
			Reference:       reference,
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
