package status

import (
	"fmt"

	"lifecycle/internal/pkg/errs"
)

// Kind identifies which entity lifecycle a status belongs to.
// The set of kinds is fixed at compile time; there are no dynamically
// defined workflows.
type Kind string

const (
	// KindPackage is the lifecycle of an individual parcel moving through
	// the warehouse from intake to delivery.
	KindPackage Kind = "package"

	// KindShipment is the lifecycle of a consolidated group of parcels
	// dispatched together, from quoting to delivery.
	KindShipment Kind = "shipment"
)

// Validate rejects unknown kinds. An unknown kind is a caller-side
// integration bug, not a business outcome, so it surfaces as a hard error.
func (k Kind) Validate() error {
	switch k {
	case KindPackage, KindShipment:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("entity kind",
			fmt.Errorf("%q is not a known entity kind", string(k)))
	}
}

func (k Kind) String() string {
	return string(k)
}

// Value is one named state in an entity kind's lifecycle. Values are
// string-backed so they persist and serialize as their wire form, but all
// lookups in the engine are kind-qualified: the same string (e.g. "arrived")
// names different states for packages and shipments.
type Value string

func (v Value) String() string {
	return string(v)
}

// Package lifecycle states.
const (
	PendingArrival   Value = "pending_arrival"
	Arrived          Value = "arrived"
	Inspected        Value = "inspected"
	ReadyForReview   Value = "ready_for_review"
	PendingAction    Value = "pending_action"
	Approved         Value = "approved"
	Consolidated     Value = "consolidated"
	OnHold           Value = "on_hold"
	ReadyForShipment Value = "ready_for_shipment"
	Shipped          Value = "shipped"
	InTransit        Value = "in_transit"
	CustomsClearance Value = "customs_clearance"
	OutForDelivery   Value = "out_for_delivery"
	Delivered        Value = "delivered"
	Returned         Value = "returned"
	Lost             Value = "lost"
	Damaged          Value = "damaged"
)

// Shipment lifecycle states. Shipped, InTransit, CustomsClearance, Arrived,
// OutForDelivery and Delivered are shared spellings with the package
// lifecycle but are distinct states with their own edges and dwell times.
const (
	AwaitingQuote  Value = "awaiting_quote"
	QuoteReady     Value = "quote_ready"
	PaymentPending Value = "payment_pending"
	Processing     Value = "processing"
	Cancelled      Value = "cancelled"
)

// Legacy shipment statuses still present on records created before the
// status model was reworked. They are registry members so old rows keep
// rendering, but no new transition targets them.
const (
	LegacyPending  Value = "pending"
	LegacyReceived Value = "received"
	LegacyTransit  Value = "transit"
)

// Initial returns the status attached to a freshly created entity of the
// given kind.
func Initial(kind Kind) Value {
	if kind == KindShipment {
		return AwaitingQuote
	}
	return PendingArrival
}
