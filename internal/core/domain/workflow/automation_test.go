package workflow_test

import (
	"testing"

	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/core/domain/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomationTable_Resolve(t *testing.T) {
	table := workflow.NewAutomationTable()

	t.Run("package shipped triggers tracking and carrier actions", func(t *testing.T) {
		rules := table.Resolve(status.KindPackage, status.Shipped)

		require.NotEmpty(t, rules)

		var actions, notifications []string
		for _, rule := range rules {
			assert.Equal(t, workflow.TriggerStatusChange, rule.Trigger)
			actions = append(actions, rule.Actions...)
			notifications = append(notifications, rule.Notifications...)
		}

		assert.Contains(t, actions, workflow.ActionGenerateTracking)
		assert.Contains(t, actions, workflow.ActionUpdateCarrierSystem)
		assert.Contains(t, notifications, workflow.NotifyCustomerEmail)
		assert.Contains(t, notifications, workflow.NotifyCustomerSMS)
		assert.Contains(t, notifications, workflow.NotifyCustomerWhatsApp)
	})

	t.Run("statuses without automation resolve to zero rules", func(t *testing.T) {
		assert.Empty(t, table.Resolve(status.KindPackage, status.PendingArrival))
		assert.Empty(t, table.Resolve(status.KindShipment, status.AwaitingQuote))
	})

	t.Run("resolution is kind qualified", func(t *testing.T) {
		packageRules := table.Resolve(status.KindPackage, status.Delivered)
		shipmentRules := table.Resolve(status.KindShipment, status.Delivered)

		require.NotEmpty(t, packageRules)
		require.NotEmpty(t, shipmentRules)
	})

	t.Run("every referenced status is registered for its kind", func(t *testing.T) {
		for _, kind := range []status.Kind{status.KindPackage, status.KindShipment} {
			for _, info := range status.AllStatuses(kind) {
				for _, rule := range table.Resolve(kind, info.Value) {
					assert.True(t, status.IsKnown(kind, rule.Status))
				}
			}
		}
	})
}

func TestAutomationTable_SuggestedActions(t *testing.T) {
	table := workflow.NewAutomationTable()

	t.Run("flattens actions across matched rules", func(t *testing.T) {
		actions := table.SuggestedActions(status.KindShipment, status.Cancelled)

		assert.Equal(t, []string{
			workflow.ActionIssueRefundRequest,
			workflow.ActionCreateAuditEntry,
		}, actions)
	})

	t.Run("empty for statuses without automation", func(t *testing.T) {
		assert.Empty(t, table.SuggestedActions(status.KindPackage, status.PendingArrival))
	})
}
