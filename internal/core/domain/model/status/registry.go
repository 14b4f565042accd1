package status

// Info carries the display metadata for a single lifecycle state.
// It is purely descriptive: labels, colors and descriptions are surfaced to
// operators and customers but never consulted by validation logic.
type Info struct {
	Value       Value
	Label       string
	Color       string
	Description string
}

// packageStatuses is the canonical, ordered catalog of package lifecycle
// states. Order matches the operational flow and is preserved by AllStatuses.
var packageStatuses = []Info{
	{PendingArrival, "Pending Arrival", "#6b7280", "Package announced by the customer but not yet received at the warehouse"},
	{Arrived, "Arrived", "#3b82f6", "Package has been physically received at the warehouse"},
	{Inspected, "Inspected", "#06b6d4", "Package contents verified against the customer declaration"},
	{ReadyForReview, "Ready for Review", "#8b5cf6", "Inspection complete, awaiting customer review of contents and photos"},
	{PendingAction, "Pending Action", "#f59e0b", "Customer input required before processing can continue"},
	{Approved, "Approved", "#10b981", "Customer approved the package for forwarding"},
	{Consolidated, "Consolidated", "#14b8a6", "Package grouped with others into a consolidated shipment"},
	{OnHold, "On Hold", "#f97316", "Processing suspended pending resolution of an issue"},
	{ReadyForShipment, "Ready for Shipment", "#84cc16", "Package packed and cleared for carrier handover"},
	{Shipped, "Shipped", "#2563eb", "Package handed to the carrier and dispatched"},
	{InTransit, "In Transit", "#1d4ed8", "Package moving through the carrier network"},
	{CustomsClearance, "Customs Clearance", "#a855f7", "Package held at customs for clearance"},
	{OutForDelivery, "Out for Delivery", "#22c55e", "Package on the final delivery vehicle"},
	{Delivered, "Delivered", "#16a34a", "Package delivered to the customer"},
	{Returned, "Returned", "#dc2626", "Package returned to sender"},
	{Lost, "Lost", "#991b1b", "Package declared lost in transit"},
	{Damaged, "Damaged", "#b91c1c", "Package damaged beyond forwarding"},
}

// shipmentStatuses is the canonical, ordered catalog of shipment lifecycle
// states, including three legacy spellings kept for records that predate the
// current status model.
var shipmentStatuses = []Info{
	{AwaitingQuote, "Awaiting Quote", "#6b7280", "Shipment requested, freight quote not yet prepared"},
	{QuoteReady, "Quote Ready", "#8b5cf6", "Freight quote prepared and sent to the customer"},
	{PaymentPending, "Payment Pending", "#f59e0b", "Quote accepted, awaiting customer payment"},
	{Processing, "Processing", "#06b6d4", "Payment received, shipment being prepared for dispatch"},
	{Shipped, "Shipped", "#2563eb", "Shipment handed to the carrier and dispatched"},
	{InTransit, "In Transit", "#1d4ed8", "Shipment moving through the carrier network"},
	{CustomsClearance, "Customs Clearance", "#a855f7", "Shipment held at customs for clearance"},
	{Arrived, "Arrived", "#3b82f6", "Shipment arrived at the destination hub"},
	{OutForDelivery, "Out for Delivery", "#22c55e", "Shipment on the final delivery vehicle"},
	{Delivered, "Delivered", "#16a34a", "Shipment delivered to the customer"},
	{Cancelled, "Cancelled", "#dc2626", "Shipment cancelled before dispatch"},
	{LegacyPending, "Awaiting Quote", "#6b7280", "Legacy spelling of awaiting_quote on older records"},
	{LegacyReceived, "Arrived", "#3b82f6", "Legacy spelling of arrived on older records"},
	{LegacyTransit, "In Transit", "#1d4ed8", "Legacy spelling of in_transit on older records"},
}

func catalog(kind Kind) []Info {
	switch kind {
	case KindPackage:
		return packageStatuses
	case KindShipment:
		return shipmentStatuses
	default:
		return nil
	}
}

// AllStatuses returns the ordered catalog for a kind. The returned slice is a
// copy; callers may not mutate the registry. An unknown kind yields an empty
// catalog.
func AllStatuses(kind Kind) []Info {
	src := catalog(kind)
	out := make([]Info, len(src))
	copy(out, src)
	return out
}

// Lookup returns the display metadata for a status within a kind.
// Unknown statuses report ok=false; they are never an error.
func Lookup(kind Kind, value Value) (Info, bool) {
	for _, info := range catalog(kind) {
		if info.Value == value {
			return info, true
		}
	}
	return Info{}, false
}

// IsKnown reports whether value is a registered status of the given kind.
func IsKnown(kind Kind, value Value) bool {
	_, ok := Lookup(kind, value)
	return ok
}
