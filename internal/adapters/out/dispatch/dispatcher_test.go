package dispatch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifecycle/internal/adapters/out/dispatch"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/core/domain/workflow"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTransition() workflow.TransitionContext {
	return workflow.TransitionContext{
		EntityID:      kernel.NewUUID(),
		Kind:          status.KindPackage,
		CurrentStatus: status.ReadyForShipment,
		NewStatus:     status.Shipped,
		ActorRole:     status.RoleWarehouseAdmin,
	}
}

func TestDispatcher_Dispatch_RoutesToRegisteredCollaborator(t *testing.T) {
	d := dispatch.NewDispatcher(dispatch.DefaultBreakerConfig(), testLogger())

	var got workflow.TransitionContext
	d.Register(workflow.ActionGenerateTracking, func(_ context.Context, tr workflow.TransitionContext) error {
		got = tr
		return nil
	})

	transition := testTransition()
	err := d.Dispatch(context.Background(), workflow.ActionGenerateTracking, transition)
	require.NoError(t, err)
	assert.Equal(t, transition.EntityID, got.EntityID)
	assert.Equal(t, status.Shipped, got.NewStatus)
}

func TestDispatcher_Dispatch_UnknownActionFails(t *testing.T) {
	d := dispatch.NewDispatcher(dispatch.DefaultBreakerConfig(), testLogger())

	err := d.Dispatch(context.Background(), "no_such_action", testTransition())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no collaborator registered")
}

func TestDispatcher_Dispatch_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	config := dispatch.BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 3,
	}
	d := dispatch.NewDispatcher(config, testLogger())

	calls := 0
	d.Register(workflow.ActionUpdateInventory, func(_ context.Context, _ workflow.TransitionContext) error {
		calls++
		return errors.New("inventory service down")
	})

	for range 3 {
		err := d.Dispatch(context.Background(), workflow.ActionUpdateInventory, testTransition())
		require.Error(t, err)
	}
	require.Equal(t, 3, calls)

	// The breaker is open now; the collaborator must not be invoked again.
	err := d.Dispatch(context.Background(), workflow.ActionUpdateInventory, testTransition())
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, calls)
}

func TestDispatcher_Dispatch_BreakersAreIndependentPerAction(t *testing.T) {
	config := dispatch.BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1,
	}
	d := dispatch.NewDispatcher(config, testLogger())

	d.Register(workflow.ActionUpdateInventory, func(_ context.Context, _ workflow.TransitionContext) error {
		return errors.New("inventory service down")
	})
	d.Register(workflow.ActionGenerateTracking, func(_ context.Context, _ workflow.TransitionContext) error {
		return nil
	})

	require.Error(t, d.Dispatch(context.Background(), workflow.ActionUpdateInventory, testTransition()))
	err := d.Dispatch(context.Background(), workflow.ActionUpdateInventory, testTransition())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)

	// A tripped inventory breaker must not affect tracking generation.
	require.NoError(t, d.Dispatch(context.Background(), workflow.ActionGenerateTracking, testTransition()))
}
