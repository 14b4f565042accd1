package workflow

import (
	"fmt"
	"strings"

	"lifecycle/internal/core/domain/model/status"
)

// PreconditionTable holds the entity-specific guards that restrict a
// transition beyond mere graph membership. Guards are keyed by destination
// status and check the current status against an allow-list: the graph says
// an edge is theoretically reachable, a guard says whether this particular
// request is actually legal for the business.
type PreconditionTable struct {
	required map[status.Kind]map[status.Value][]status.Value
}

// packagePreconditions: a package may only be marked arrived straight from
// intake, inspection must follow arrival, review must follow inspection, and
// dispatch requires a packed or consolidated package.
var packagePreconditions = map[status.Value][]status.Value{
	status.Arrived:        {status.PendingArrival},
	status.Inspected:      {status.Arrived},
	status.ReadyForReview: {status.Inspected},
	status.Shipped:        {status.ReadyForShipment, status.Consolidated},
}

// shipmentPreconditions: arrival requires the shipment to have actually been
// dispatched, processing requires settled payment, and customs only makes
// sense for a shipment already in the destination flow. Legacy spellings are
// included where the graph lets old records move forward through the guard.
var shipmentPreconditions = map[status.Value][]status.Value{
	status.Arrived:          {status.Shipped, status.InTransit, status.LegacyTransit},
	status.Processing:       {status.PaymentPending},
	status.CustomsClearance: {status.InTransit, status.Arrived, status.LegacyTransit, status.LegacyReceived},
}

// NewPreconditionTable builds the production guard table.
func NewPreconditionTable() *PreconditionTable {
	return NewPreconditionTableFromGuards(map[status.Kind]map[status.Value][]status.Value{
		status.KindPackage:  packagePreconditions,
		status.KindShipment: shipmentPreconditions,
	})
}

// NewPreconditionTableFromGuards builds a table from caller-supplied guards.
func NewPreconditionTableFromGuards(guards map[status.Kind]map[status.Value][]status.Value) *PreconditionTable {
	copied := make(map[status.Kind]map[status.Value][]status.Value, len(guards))
	for kind, table := range guards {
		copied[kind] = make(map[status.Value][]status.Value, len(table))
		for dest, allowed := range table {
			list := make([]status.Value, len(allowed))
			copy(list, allowed)
			copied[kind][dest] = list
		}
	}
	return &PreconditionTable{required: copied}
}

// Check evaluates the guard for a destination status. Destinations without a
// guard always pass. On failure the returned message names the required
// prior state so the caller can render an actionable rejection.
func (t *PreconditionTable) Check(kind status.Kind, current, destination status.Value) (bool, string) {
	allowed, guarded := t.required[kind][destination]
	if !guarded {
		return true, ""
	}
	for _, v := range allowed {
		if v == current {
			return true, ""
		}
	}
	return false, fmt.Sprintf("%s %s requires current status %s, current status is %s",
		kind, destination, joinValues(allowed), current)
}

// RequiredCurrent returns the guard allow-list for a destination, if any.
func (t *PreconditionTable) RequiredCurrent(kind status.Kind, destination status.Value) ([]status.Value, bool) {
	allowed, ok := t.required[kind][destination]
	if !ok {
		return nil, false
	}
	out := make([]status.Value, len(allowed))
	copy(out, allowed)
	return out, true
}

func joinValues(values []status.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, " or ")
}
