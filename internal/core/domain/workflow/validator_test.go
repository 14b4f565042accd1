package workflow_test

import (
	"testing"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/core/domain/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transitionContext(kind status.Kind, current, next status.Value, role status.Role) workflow.TransitionContext {
	return workflow.TransitionContext{
		EntityID:      kernel.NewUUID(),
		Kind:          kind,
		CurrentStatus: current,
		NewStatus:     next,
		ActorRole:     role,
	}
}

func TestValidator_AcceptedTransitions(t *testing.T) {
	validator := workflow.NewValidator()

	t.Run("package intake by warehouse admin", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindPackage, status.PendingArrival, status.Arrived, status.RoleWarehouseAdmin))

		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Contains(t, result.Rule, "Package has been physically received")
		assert.Empty(t, result.Reason)
		assert.Empty(t, result.Error)
	})

	t.Run("accepted result suggests the automation actions", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindPackage, status.ReadyForShipment, status.Shipped, status.RoleWarehouseAdmin))

		require.NoError(t, err)
		require.True(t, result.IsValid)
		assert.Contains(t, result.SuggestedActions, workflow.ActionGenerateTracking)
		assert.Contains(t, result.SuggestedActions, workflow.ActionUpdateCarrierSystem)
	})

	t.Run("shipment payment settled by admin", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindShipment, status.PaymentPending, status.Processing, status.RoleAdmin))

		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.NotEmpty(t, result.Rule)
	})
}

func TestValidator_InvalidTransition(t *testing.T) {
	validator := workflow.NewValidator()

	t.Run("missing edge is rejected regardless of role", func(t *testing.T) {
		for _, role := range []status.Role{
			status.RoleClient, status.RoleWarehouseAdmin, status.RoleAdmin, status.RoleSuperAdmin,
		} {
			result, err := validator.Validate(transitionContext(
				status.KindPackage, status.Delivered, status.OnHold, role))

			require.NoError(t, err)
			assert.False(t, result.IsValid)
			assert.Equal(t, workflow.ReasonInvalidTransition, result.Reason, "role %s", role)
		}
	})

	t.Run("rejection carries the valid next set", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindPackage, status.Approved, status.Delivered, status.RoleAdmin))

		require.NoError(t, err)
		require.False(t, result.IsValid)
		assert.Equal(t, workflow.ReasonInvalidTransition, result.Reason)
		assert.NotEmpty(t, result.Error)
		assert.ElementsMatch(t,
			[]status.Value{status.Consolidated, status.ReadyForShipment, status.OnHold},
			result.ValidNext)
	})

	t.Run("final status has no alternatives to offer", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindShipment, status.Cancelled, status.Processing, status.RoleSuperAdmin))

		require.NoError(t, err)
		require.False(t, result.IsValid)
		assert.Empty(t, result.ValidNext)
	})
}

func TestValidator_Unauthorized(t *testing.T) {
	validator := workflow.NewValidator()

	t.Run("client may not settle shipment payment", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindShipment, status.PaymentPending, status.Processing, status.RoleClient))

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, workflow.ReasonUnauthorized, result.Reason)
		assert.Contains(t, result.Error, "contact an administrator")
	})

	t.Run("warehouse admin may not approve packages", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindPackage, status.ReadyForReview, status.Approved, status.RoleWarehouseAdmin))

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, workflow.ReasonUnauthorized, result.Reason)
	})
}

func TestValidator_PreconditionNotMet(t *testing.T) {
	validator := workflow.NewValidator()

	t.Run("inspected requires current arrived exactly", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindPackage, status.OnHold, status.Inspected, status.RoleAdmin))

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, workflow.ReasonPreconditionNotMet, result.Reason)
		assert.Equal(t, []status.Value{status.Arrived}, result.RequiredCurrent)
		assert.Contains(t, result.Error, "arrived")
	})

	t.Run("shipped requires a packed or consolidated package", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindPackage, status.Arrived, status.Shipped, status.RoleWarehouseAdmin))

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, workflow.ReasonPreconditionNotMet, result.Reason)
		assert.ElementsMatch(t,
			[]status.Value{status.ReadyForShipment, status.Consolidated},
			result.RequiredCurrent)
	})

	t.Run("shipment customs requires destination flow", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindShipment, status.Processing, status.CustomsClearance, status.RoleAdmin))

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, workflow.ReasonPreconditionNotMet, result.Reason)
	})

	t.Run("guard passes when current status is in the allow list", func(t *testing.T) {
		result, err := validator.Validate(transitionContext(
			status.KindShipment, status.InTransit, status.Arrived, status.RoleWarehouseAdmin))

		require.NoError(t, err)
		assert.True(t, result.IsValid)
	})
}

func TestValidator_MalformedInput(t *testing.T) {
	validator := workflow.NewValidator()

	t.Run("unknown kind is a hard error", func(t *testing.T) {
		_, err := validator.Validate(transitionContext(
			"pallet", status.PendingArrival, status.Arrived, status.RoleAdmin))

		require.Error(t, err)
	})

	t.Run("unknown role is a hard error", func(t *testing.T) {
		_, err := validator.Validate(transitionContext(
			status.KindPackage, status.PendingArrival, status.Arrived, "janitor"))

		require.Error(t, err)
	})
}

func TestValidator_WithReducedTables(t *testing.T) {
	graph := workflow.NewTransitionGraphFromEdges(map[status.Kind][]workflow.Edge{
		status.KindPackage: {
			{From: status.PendingArrival, To: status.Arrived, Rule: "received"},
		},
	})
	perms := workflow.NewPermissionTableFromGrants(map[status.Role]map[status.Kind][]status.Value{
		status.RoleWarehouseAdmin: {
			status.KindPackage: {status.Arrived},
		},
	})
	guards := workflow.NewPreconditionTableFromGuards(nil)
	rules := workflow.NewAutomationTableFromRules(nil)

	validator := workflow.NewValidatorWithTables(graph, perms, guards, rules)

	result, err := validator.Validate(transitionContext(
		status.KindPackage, status.PendingArrival, status.Arrived, status.RoleWarehouseAdmin))

	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Equal(t, "received", result.Rule)
	assert.Empty(t, result.SuggestedActions)
}
