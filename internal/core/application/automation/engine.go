// Package automation executes the follow-up actions an accepted transition
// enqueues. Execution is a one-shot fan-out: every action is attempted
// independently, bounded by a timeout, and a failure in one never aborts the
// others. By the time the engine runs, the transition itself has already been
// committed; a failed inventory update must not block a customer
// notification.
package automation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lifecycle/internal/core/domain/workflow"
	"lifecycle/internal/core/ports"
)

// DefaultActionTimeout bounds a single dispatch when the caller does not
// supply a budget.
const DefaultActionTimeout = 10 * time.Second

// Outcome reports what the fan-out accomplished. Notifications is the union
// of notification-channel tags across all triggered rules, handed to the
// external dispatcher regardless of action failures.
type Outcome struct {
	Executed      []string
	Failed        []string
	Notifications []string
}

// Engine fans automation actions out to the dispatcher.
type Engine struct {
	dispatcher ports.ActionDispatcher
	timeout    time.Duration
	logger     *slog.Logger
}

// NewEngine creates an automation engine. A non-positive timeout falls back
// to DefaultActionTimeout.
func NewEngine(dispatcher ports.ActionDispatcher, timeout time.Duration, logger *slog.Logger) *Engine {
	if timeout <= 0 {
		timeout = DefaultActionTimeout
	}
	return &Engine{
		dispatcher: dispatcher,
		timeout:    timeout,
		logger:     logger.With("component", "automation_engine"),
	}
}

// Execute runs every action of every rule concurrently and collects all
// outcomes before returning. Each action is bounded by the engine timeout;
// an overrun is recorded as failed rather than left pending. A panicking
// dispatch is likewise recorded as failed.
func (e *Engine) Execute(ctx context.Context, transition workflow.TransitionContext, rules []workflow.AutomationRule) Outcome {
	actions := collectActions(rules)
	notifications := collectNotifications(rules)

	results := make([]error, len(actions))
	done := make(chan int, len(actions))

	for i, action := range actions {
		go func(i int, action string) {
			results[i] = e.dispatchBounded(ctx, action, transition)
			done <- i
		}(i, action)
	}
	for range actions {
		<-done
	}

	outcome := Outcome{Notifications: notifications}
	for i, action := range actions {
		if err := results[i]; err != nil {
			e.logger.ErrorContext(ctx, "automation action failed",
				"action", action,
				"entity_id", transition.EntityID.String(),
				"kind", string(transition.Kind),
				"new_status", string(transition.NewStatus),
				"error", err)
			outcome.Failed = append(outcome.Failed, action)
			continue
		}
		outcome.Executed = append(outcome.Executed, action)
	}
	return outcome
}

// dispatchBounded runs one dispatch under the engine timeout. The dispatch
// runs in its own goroutine so a collaborator that ignores ctx still cannot
// hold Execute hostage past the deadline.
func (e *Engine) dispatchBounded(ctx context.Context, action string, transition workflow.TransitionContext) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errCh <- fmt.Errorf("action %s panicked: %v", action, r)
			}
		}()
		errCh <- e.dispatcher.Dispatch(ctx, action, transition)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return fmt.Errorf("action %s did not complete: %w", action, ctx.Err())
	}
}

// collectActions flattens the actions of all rules, deduplicated in rule
// order, so a tag triggered by two rules runs once.
func collectActions(rules []workflow.AutomationRule) []string {
	seen := make(map[string]struct{})
	var actions []string
	for _, rule := range rules {
		for _, action := range rule.Actions {
			if _, ok := seen[action]; ok {
				continue
			}
			seen[action] = struct{}{}
			actions = append(actions, action)
		}
	}
	return actions
}

func collectNotifications(rules []workflow.AutomationRule) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, rule := range rules {
		for _, tag := range rule.Notifications {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}
