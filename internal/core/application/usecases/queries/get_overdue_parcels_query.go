// Package queries contains read-only operations over the lifecycle store.
// Query handlers bypass the aggregates and read the database directly,
// implementing the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/guard"
)

var (
	ErrGetOverdueParcelsQueryIsNotConstructed = errors.New(
		"GetOverdueParcelsQuery must be created via NewGetOverdueParcelsQuery constructor",
	)
	ErrAsOfIsRequired = errors.New("as-of timestamp is required")
)

// GetOverdueParcelsQuery retrieves all parcels that have dwelt in their
// current status longer than the expected duration for that status, measured
// against the supplied reference time.
//
// Example:
//
//	query, _ := NewGetOverdueParcelsQuery(time.Now())
//	handler := NewGetOverdueParcelsQueryHandler(db, workflow.NewDurationPolicy())
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get overdue parcels: %w", err)
//	}
//	fmt.Printf("%d parcels need attention\n", len(overdue))
type GetOverdueParcelsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueParcelsQuery creates a query to retrieve overdue parcels.
// The asOf time anchors the dwell calculation, normally time.Now().
func NewGetOverdueParcelsQuery(asOf time.Time) (GetOverdueParcelsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueParcelsQuery{}, ErrAsOfIsRequired
	}
	return GetOverdueParcelsQuery{asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueParcelsQueryIsNotConstructed if validation fails.
func (q GetOverdueParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueParcelsQueryIsNotConstructed)
}

// AsOf returns the reference time for the dwell calculation.
func (q GetOverdueParcelsQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueParcelsQueryResponse describes one overdue parcel: where it is
// stuck, for how long, and by how much it has run over.
type GetOverdueParcelsQueryResponse struct {
	ID              kernel.UUID
	OwnerID         kernel.UUID
	TrackingNumber  string
	Status          status.Value
	StatusChangedAt time.Time
	Expected        time.Duration
	OverdueBy       time.Duration
}
