package workflow

import (
	"lifecycle/internal/core/domain/model/status"
)

// Edge is one legal status change. Rule is the human-readable business
// justification surfaced to operators and audit logs; it is never parsed.
type Edge struct {
	From status.Value
	To   status.Value
	Rule string
}

// edgeKey is the composite lookup key for an edge. Keying on the pair (rather
// than a concatenated string) makes duplicate edges a compile-visible map
// collision instead of a silent overwrite.
type edgeKey struct {
	from status.Value
	to   status.Value
}

// packageEdges declares the package transition graph. The graph is a DAG
// except for the documented recovery cycle through on_hold, and the four
// terminal states (delivered, returned, lost, damaged) have no outgoing
// edges.
var packageEdges = []Edge{
	{status.PendingArrival, status.Arrived, "Package has been physically received at the warehouse"},
	{status.PendingArrival, status.Lost, "Package never arrived and the carrier confirmed loss in inbound transit"},
	{status.Arrived, status.Inspected, "Package contents have been opened and verified against the declaration"},
	{status.Arrived, status.OnHold, "Received package cannot be processed and is parked pending resolution"},
	{status.Arrived, status.Damaged, "Package was received visibly damaged and cannot be processed"},
	{status.Inspected, status.ReadyForReview, "Inspection results and photos are ready for the customer to review"},
	{status.Inspected, status.OnHold, "Inspection found an issue that needs resolution before review"},
	{status.Inspected, status.Damaged, "Inspection revealed damage that prevents forwarding"},
	{status.ReadyForReview, status.PendingAction, "Customer must decide how to proceed with the reviewed package"},
	{status.ReadyForReview, status.Approved, "Customer reviewed and approved the package for forwarding"},
	{status.ReadyForReview, status.OnHold, "Review raised an issue that suspends processing"},
	{status.PendingAction, status.Approved, "Customer resolved the pending question and approved forwarding"},
	{status.PendingAction, status.OnHold, "Customer response requires operational follow-up before proceeding"},
	{status.PendingAction, status.Returned, "Customer elected to return the package to the sender"},
	{status.Approved, status.Consolidated, "Approved package grouped into a consolidated shipment"},
	{status.Approved, status.ReadyForShipment, "Approved package packed for individual dispatch"},
	{status.Approved, status.OnHold, "Approved package held back before packing"},
	{status.Consolidated, status.ReadyForShipment, "Consolidated group packed and cleared for carrier handover"},
	{status.Consolidated, status.Shipped, "Consolidated group handed directly to the carrier"},
	{status.OnHold, status.ReadyForReview, "Hold resolved, package returned to the customer review queue"},
	{status.OnHold, status.Returned, "Hold could not be resolved and the package is being returned"},
	{status.ReadyForShipment, status.Shipped, "Package handed to the carrier and dispatched"},
	{status.ReadyForShipment, status.OnHold, "Dispatch blocked, package parked pending resolution"},
	{status.Shipped, status.InTransit, "Carrier confirmed the package is moving through its network"},
	{status.Shipped, status.Lost, "Carrier reported the package lost after handover"},
	{status.InTransit, status.CustomsClearance, "Package held at the destination border for customs clearance"},
	{status.InTransit, status.OutForDelivery, "Package reached the destination depot and is out for delivery"},
	{status.InTransit, status.Lost, "Carrier reported the package lost in transit"},
	{status.CustomsClearance, status.OutForDelivery, "Customs released the package for final delivery"},
	{status.CustomsClearance, status.Returned, "Customs rejected the package and it is being returned"},
	{status.OutForDelivery, status.Delivered, "Carrier confirmed delivery to the customer"},
	{status.OutForDelivery, status.Returned, "Delivery failed and the package is being returned"},
	{status.OutForDelivery, status.Lost, "Package lost during final-mile delivery"},
}

// shipmentEdges declares the shipment transition graph. The three legacy
// statuses keep outgoing edges so old records can move forward, but nothing
// transitions into them. Terminal states: delivered and cancelled.
var shipmentEdges = []Edge{
	{status.AwaitingQuote, status.QuoteReady, "Freight quote prepared and sent to the customer"},
	{status.AwaitingQuote, status.Cancelled, "Customer withdrew the shipment request before quoting"},
	{status.QuoteReady, status.PaymentPending, "Customer accepted the quote, awaiting payment"},
	{status.QuoteReady, status.Cancelled, "Customer declined the quote"},
	{status.PaymentPending, status.Processing, "Payment received, shipment preparation started"},
	{status.PaymentPending, status.Cancelled, "Payment not received within the allowed window"},
	{status.Processing, status.Shipped, "Shipment handed to the carrier and dispatched"},
	{status.Processing, status.Cancelled, "Shipment cancelled during preparation"},
	{status.Shipped, status.InTransit, "Carrier confirmed the shipment is moving through its network"},
	{status.Shipped, status.Arrived, "Shipment arrived at the destination hub"},
	{status.InTransit, status.CustomsClearance, "Shipment held at the destination border for customs clearance"},
	{status.InTransit, status.Arrived, "Shipment arrived at the destination hub"},
	{status.CustomsClearance, status.InTransit, "Customs released the shipment back into the carrier network"},
	{status.CustomsClearance, status.Arrived, "Customs released the shipment at the destination hub"},
	{status.Arrived, status.CustomsClearance, "Destination hub routed the shipment into customs inspection"},
	{status.Arrived, status.OutForDelivery, "Shipment loaded for final-mile delivery"},
	{status.OutForDelivery, status.Delivered, "Carrier confirmed delivery to the customer"},

	{status.LegacyPending, status.QuoteReady, "Freight quote prepared for a legacy shipment record"},
	{status.LegacyPending, status.Cancelled, "Legacy shipment request withdrawn"},
	{status.LegacyReceived, status.CustomsClearance, "Legacy arrived shipment routed into customs inspection"},
	{status.LegacyReceived, status.OutForDelivery, "Legacy arrived shipment loaded for final-mile delivery"},
	{status.LegacyTransit, status.CustomsClearance, "Legacy in-transit shipment held at the destination border"},
	{status.LegacyTransit, status.Arrived, "Legacy in-transit shipment arrived at the destination hub"},
}

// TransitionGraph answers reachability questions over the static edge tables.
// Finality is derived from an empty outgoing edge set rather than maintained
// as a second list that could drift.
type TransitionGraph struct {
	rules map[status.Kind]map[edgeKey]string
	next  map[status.Kind]map[status.Value][]status.Value
}

// NewTransitionGraph builds the production graph from the declared edge
// tables. Declaration order is preserved in ValidNext results.
func NewTransitionGraph() *TransitionGraph {
	return newGraph(map[status.Kind][]Edge{
		status.KindPackage:  packageEdges,
		status.KindShipment: shipmentEdges,
	})
}

// NewTransitionGraphFromEdges builds a graph from caller-supplied edges.
// Tests use this to validate against a reduced graph without touching the
// production tables.
func NewTransitionGraphFromEdges(edges map[status.Kind][]Edge) *TransitionGraph {
	return newGraph(edges)
}

func newGraph(edges map[status.Kind][]Edge) *TransitionGraph {
	g := &TransitionGraph{
		rules: make(map[status.Kind]map[edgeKey]string),
		next:  make(map[status.Kind]map[status.Value][]status.Value),
	}
	for kind, kindEdges := range edges {
		g.rules[kind] = make(map[edgeKey]string, len(kindEdges))
		g.next[kind] = make(map[status.Value][]status.Value)
		for _, e := range kindEdges {
			key := edgeKey{from: e.From, to: e.To}
			if _, exists := g.rules[kind][key]; exists {
				// Duplicate declarations were a data-quality defect in the
				// legacy rule tables; first declaration wins.
				continue
			}
			g.rules[kind][key] = e.Rule
			g.next[kind][e.From] = append(g.next[kind][e.From], e.To)
		}
	}
	return g
}

// ValidNext returns the statuses reachable from current, in declaration
// order. Final statuses and unknown statuses both yield an empty set; neither
// is an error.
func (g *TransitionGraph) ValidNext(kind status.Kind, current status.Value) []status.Value {
	next := g.next[kind][current]
	out := make([]status.Value, len(next))
	copy(out, next)
	return out
}

// IsLegal reports whether the edge from→to exists for the kind.
func (g *TransitionGraph) IsLegal(kind status.Kind, from, to status.Value) bool {
	_, ok := g.rules[kind][edgeKey{from: from, to: to}]
	return ok
}

// RuleFor returns the business-rule text attached to an edge.
func (g *TransitionGraph) RuleFor(kind status.Kind, from, to status.Value) (string, bool) {
	rule, ok := g.rules[kind][edgeKey{from: from, to: to}]
	return rule, ok
}

// IsFinal reports whether a status has no outgoing edges. Once an entity
// reaches a final status no further transition is legal.
func (g *TransitionGraph) IsFinal(kind status.Kind, value status.Value) bool {
	return len(g.next[kind][value]) == 0
}
