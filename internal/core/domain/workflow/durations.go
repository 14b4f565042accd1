package workflow

import (
	"time"

	"lifecycle/internal/core/domain/model/status"
)

// packageDwellHours is the expected dwell time per package status.
// Statuses absent from the table (final states, and states waiting on the
// customer such as pending_action and on_hold) are indefinite and never
// overdue.
var packageDwellHours = map[status.Value]int{
	status.PendingArrival:   336,
	status.Arrived:          48,
	status.Inspected:        24,
	status.ReadyForReview:   72,
	status.Approved:         48,
	status.Consolidated:     72,
	status.ReadyForShipment: 48,
	status.Shipped:          24,
	status.InTransit:        240,
	status.CustomsClearance: 120,
	status.OutForDelivery:   24,
}

// shipmentDwellHours is the expected dwell time per shipment status.
// Legacy spellings carry the same dwell as their modern equivalents.
var shipmentDwellHours = map[status.Value]int{
	status.AwaitingQuote:    24,
	status.QuoteReady:       72,
	status.PaymentPending:   168,
	status.Processing:       48,
	status.Shipped:          24,
	status.InTransit:        336,
	status.CustomsClearance: 120,
	status.Arrived:          48,
	status.OutForDelivery:   24,
	status.LegacyPending:    24,
	status.LegacyReceived:   48,
	status.LegacyTransit:    336,
}

// DurationPolicy answers how long an entity is expected to dwell in each
// status, and whether a given dwell has run over.
type DurationPolicy struct {
	hours map[status.Kind]map[status.Value]int
}

// NewDurationPolicy builds the production dwell-time policy.
func NewDurationPolicy() *DurationPolicy {
	return NewDurationPolicyFromHours(map[status.Kind]map[status.Value]int{
		status.KindPackage:  packageDwellHours,
		status.KindShipment: shipmentDwellHours,
	})
}

// NewDurationPolicyFromHours builds a policy from caller-supplied tables.
func NewDurationPolicyFromHours(hours map[status.Kind]map[status.Value]int) *DurationPolicy {
	copied := make(map[status.Kind]map[status.Value]int, len(hours))
	for kind, table := range hours {
		copied[kind] = make(map[status.Value]int, len(table))
		for v, h := range table {
			copied[kind][v] = h
		}
	}
	return &DurationPolicy{hours: copied}
}

// ExpectedDuration returns the expected dwell time for a status.
// ok is false for statuses with no dwell expectation; those are indefinite.
func (p *DurationPolicy) ExpectedDuration(kind status.Kind, value status.Value) (time.Duration, bool) {
	h, ok := p.hours[kind][value]
	if !ok {
		return 0, false
	}
	return time.Duration(h) * time.Hour, true
}

// IsOverdue reports whether an entity has dwelt in its status strictly longer
// than expected. Elapsed time exactly equal to the expectation is not
// overdue. Indefinite statuses are never overdue regardless of elapsed time.
func (p *DurationPolicy) IsOverdue(kind status.Kind, value status.Value, statusChangedAt, now time.Time) bool {
	expected, ok := p.ExpectedDuration(kind, value)
	if !ok {
		return false
	}
	return now.Sub(statusChangedAt) > expected
}
