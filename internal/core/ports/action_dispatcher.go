package ports

import (
	"context"

	"lifecycle/internal/core/domain/workflow"
)

// ActionDispatcher hands a named automation action to whichever external
// collaborator owns it (inventory, carrier integration, notification
// gateway). The engine never knows what a tag concretely does.
//
// Implementations must honor ctx cancellation: the automation engine bounds
// every dispatch with a timeout and records overruns as failures.
type ActionDispatcher interface {
	Dispatch(ctx context.Context, action string, transition workflow.TransitionContext) error
}
