package workflow

import (
	"lifecycle/internal/core/domain/model/status"
)

// Action and notification tags handed to external collaborators. The engine
// only names what should happen; the mapping from tag to concrete behavior is
// entirely the collaborator's responsibility.
const (
	ActionSendCustomerNotification = "send_customer_notification"
	ActionUpdateInventory          = "update_inventory"
	ActionGenerateTracking         = "generate_tracking"
	ActionUpdateCarrierSystem      = "update_carrier_system"
	ActionCreateAuditEntry         = "create_audit_entry"
	ActionAttachInspectionReport   = "attach_inspection_report"
	ActionReleaseStorageSlot       = "release_storage_slot"
	ActionReserveCarrierCapacity   = "reserve_carrier_capacity"
	ActionScheduleFinalMile        = "schedule_final_mile"
	ActionGenerateQuoteDocument    = "generate_quote_document"
	ActionGenerateInvoice          = "generate_invoice"
	ActionIssueRefundRequest       = "issue_refund_request"
	ActionCloseStorageRecord       = "close_storage_record"
	ActionRequestFeedback          = "request_feedback"

	NotifyCustomerEmail    = "customer_email"
	NotifyCustomerSMS      = "customer_sms"
	NotifyCustomerWhatsApp = "customer_whatsapp"
	NotifyOpsDashboard     = "ops_dashboard"
)

// AutomationRule maps a resulting status to the follow-up actions and
// notification channels an accepted transition should enqueue.
type AutomationRule struct {
	Trigger       string
	Status        status.Value
	Actions       []string
	Notifications []string
}

// TriggerStatusChange is the only trigger the engine knows: all automation is
// a one-shot fan-out after a committed transition, never a polling process.
const TriggerStatusChange = "status_change"

var packageAutomation = []AutomationRule{
	{TriggerStatusChange, status.Arrived,
		[]string{ActionUpdateInventory, ActionCreateAuditEntry},
		[]string{NotifyCustomerEmail}},
	{TriggerStatusChange, status.Inspected,
		[]string{ActionAttachInspectionReport, ActionCreateAuditEntry},
		[]string{NotifyCustomerEmail}},
	{TriggerStatusChange, status.ReadyForReview,
		[]string{ActionSendCustomerNotification},
		[]string{NotifyCustomerEmail, NotifyCustomerSMS}},
	{TriggerStatusChange, status.PendingAction,
		[]string{ActionSendCustomerNotification},
		[]string{NotifyCustomerEmail, NotifyCustomerSMS, NotifyCustomerWhatsApp}},
	{TriggerStatusChange, status.Approved,
		[]string{ActionUpdateInventory},
		[]string{NotifyCustomerEmail}},
	{TriggerStatusChange, status.Consolidated,
		[]string{ActionUpdateInventory, ActionReleaseStorageSlot},
		[]string{NotifyCustomerEmail}},
	{TriggerStatusChange, status.OnHold,
		[]string{ActionSendCustomerNotification, ActionCreateAuditEntry},
		[]string{NotifyCustomerEmail, NotifyOpsDashboard}},
	{TriggerStatusChange, status.ReadyForShipment,
		[]string{ActionReserveCarrierCapacity},
		[]string{NotifyCustomerEmail}},
	{TriggerStatusChange, status.Shipped,
		[]string{ActionGenerateTracking, ActionUpdateCarrierSystem},
		[]string{NotifyCustomerEmail, NotifyCustomerSMS, NotifyCustomerWhatsApp}},
	{TriggerStatusChange, status.OutForDelivery,
		[]string{ActionSendCustomerNotification},
		[]string{NotifyCustomerSMS, NotifyCustomerWhatsApp}},
	{TriggerStatusChange, status.Delivered,
		[]string{ActionCloseStorageRecord, ActionRequestFeedback},
		[]string{NotifyCustomerEmail}},
	{TriggerStatusChange, status.Returned,
		[]string{ActionUpdateInventory, ActionCreateAuditEntry},
		[]string{NotifyCustomerEmail, NotifyOpsDashboard}},
	{TriggerStatusChange, status.Lost,
		[]string{ActionCreateAuditEntry},
		[]string{NotifyCustomerEmail, NotifyOpsDashboard}},
	{TriggerStatusChange, status.Damaged,
		[]string{ActionCreateAuditEntry},
		[]string{NotifyCustomerEmail, NotifyOpsDashboard}},
}

var shipmentAutomation = []AutomationRule{
	{TriggerStatusChange, status.QuoteReady,
		[]string{ActionGenerateQuoteDocument, ActionSendCustomerNotification},
		[]string{NotifyCustomerEmail}},
	{TriggerStatusChange, status.PaymentPending,
		[]string{ActionGenerateInvoice},
		[]string{NotifyCustomerEmail, NotifyCustomerSMS}},
	{TriggerStatusChange, status.Processing,
		[]string{ActionUpdateInventory, ActionCreateAuditEntry},
		[]string{NotifyCustomerEmail}},
	{TriggerStatusChange, status.Shipped,
		[]string{ActionGenerateTracking, ActionUpdateCarrierSystem},
		[]string{NotifyCustomerEmail, NotifyCustomerSMS, NotifyCustomerWhatsApp}},
	{TriggerStatusChange, status.Arrived,
		[]string{ActionScheduleFinalMile},
		[]string{NotifyCustomerEmail, NotifyCustomerSMS}},
	{TriggerStatusChange, status.OutForDelivery,
		[]string{ActionSendCustomerNotification},
		[]string{NotifyCustomerSMS, NotifyCustomerWhatsApp}},
	{TriggerStatusChange, status.Delivered,
		[]string{ActionCloseStorageRecord, ActionRequestFeedback},
		[]string{NotifyCustomerEmail}},
	{TriggerStatusChange, status.Cancelled,
		[]string{ActionIssueRefundRequest, ActionCreateAuditEntry},
		[]string{NotifyCustomerEmail, NotifyOpsDashboard}},
}

// AutomationTable resolves the automation rules triggered by a resulting
// status. Resolution is a pure lookup; execution lives in the application
// layer.
type AutomationTable struct {
	rules map[status.Kind][]AutomationRule
}

// NewAutomationTable builds the production automation table.
func NewAutomationTable() *AutomationTable {
	return NewAutomationTableFromRules(map[status.Kind][]AutomationRule{
		status.KindPackage:  packageAutomation,
		status.KindShipment: shipmentAutomation,
	})
}

// NewAutomationTableFromRules builds a table from caller-supplied rules.
func NewAutomationTableFromRules(rules map[status.Kind][]AutomationRule) *AutomationTable {
	copied := make(map[status.Kind][]AutomationRule, len(rules))
	for kind, kindRules := range rules {
		copied[kind] = append([]AutomationRule(nil), kindRules...)
	}
	return &AutomationTable{rules: copied}
}

// Resolve returns the rules whose condition matches the new status of the
// kind. Zero matches is a normal outcome: most administrative statuses have
// no automation.
func (t *AutomationTable) Resolve(kind status.Kind, newStatus status.Value) []AutomationRule {
	var matched []AutomationRule
	for _, rule := range t.rules[kind] {
		if rule.Status == newStatus {
			matched = append(matched, rule)
		}
	}
	return matched
}

// SuggestedActions flattens the action names across all rules matching the
// new status, preserving rule order.
func (t *AutomationTable) SuggestedActions(kind status.Kind, newStatus status.Value) []string {
	var actions []string
	for _, rule := range t.Resolve(kind, newStatus) {
		actions = append(actions, rule.Actions...)
	}
	return actions
}
