package queries

import (
	"errors"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/guard"
)

var ErrGetOverdueShipmentsQueryIsNotConstructed = errors.New(
	"GetOverdueShipmentsQuery must be created via NewGetOverdueShipmentsQuery constructor",
)

// GetOverdueShipmentsQuery retrieves all shipments that have dwelt in their
// current status longer than the expected duration for that status. Legacy
// status spellings carry the same dwell expectations as their modern
// equivalents, so old records surface here too.
type GetOverdueShipmentsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueShipmentsQuery creates a query to retrieve overdue shipments.
// The asOf time anchors the dwell calculation, normally time.Now().
func NewGetOverdueShipmentsQuery(asOf time.Time) (GetOverdueShipmentsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueShipmentsQuery{}, ErrAsOfIsRequired
	}
	return GetOverdueShipmentsQuery{asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueShipmentsQueryIsNotConstructed if validation fails.
func (q GetOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueShipmentsQueryIsNotConstructed)
}

// AsOf returns the reference time for the dwell calculation.
func (q GetOverdueShipmentsQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueShipmentsQueryResponse describes one overdue shipment.
type GetOverdueShipmentsQueryResponse struct {
	ID              kernel.UUID
	OwnerID         kernel.UUID
	Reference       string
	Status          status.Value
	StatusChangedAt time.Time
	Expected        time.Duration
	OverdueBy       time.Duration
}
