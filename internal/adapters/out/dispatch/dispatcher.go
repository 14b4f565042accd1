// Package dispatch implements the outbound ActionDispatcher port. Automation
// action tags are bound to collaborator functions (carrier integration,
// inventory, notification gateway), each protected by its own circuit breaker
// so a failing collaborator stops being hammered while the rest keep running.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"lifecycle/internal/core/domain/workflow"

	"github.com/sony/gobreaker/v2"
)

// CollaboratorFunc performs one automation action for a transition.
type CollaboratorFunc func(ctx context.Context, transition workflow.TransitionContext) error

// BreakerConfig configures the per-action circuit breakers.
type BreakerConfig struct {
	// MaxRequests is the maximum number of requests allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state.
	Interval time.Duration

	// Timeout is the period of the open state.
	Timeout time.Duration

	// FailureThreshold is the consecutive-failure count that trips the breaker.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns a sensible default configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      3,
		Interval:         10 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// Dispatcher routes automation action tags to registered collaborators.
// Unknown tags are an error: an automation rule naming an unbound action is a
// wiring bug that should surface immediately, not a silent no-op.
type Dispatcher struct {
	mu            sync.RWMutex
	collaborators map[string]CollaboratorFunc
	breakers      map[string]*gobreaker.CircuitBreaker[any]
	config        BreakerConfig
	logger        *slog.Logger
}

// NewDispatcher creates a dispatcher with no collaborators bound.
func NewDispatcher(config BreakerConfig, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		collaborators: make(map[string]CollaboratorFunc),
		breakers:      make(map[string]*gobreaker.CircuitBreaker[any]),
		config:        config,
		logger:        logger.With("component", "action_dispatcher"),
	}
}

// Register binds a collaborator to an action tag, replacing any previous
// binding for that tag.
func (d *Dispatcher) Register(action string, fn CollaboratorFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.collaborators[action] = fn
}

// Dispatch runs the collaborator bound to the action through its circuit
// breaker. An open breaker fails fast with gobreaker.ErrOpenState wrapped in
// the returned error.
func (d *Dispatcher) Dispatch(ctx context.Context, action string, transition workflow.TransitionContext) error {
	d.mu.RLock()
	fn, ok := d.collaborators[action]
	d.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no collaborator registered for action %s", action)
	}

	breaker := d.getBreaker(action)
	_, err := breaker.Execute(func() (any, error) {
		return nil, fn(ctx, transition)
	})
	if err != nil {
		return fmt.Errorf("dispatch %s: %w", action, err)
	}
	return nil
}

// getBreaker returns the circuit breaker for an action, creating it if needed.
func (d *Dispatcher) getBreaker(action string) *gobreaker.CircuitBreaker[any] {
	d.mu.Lock()
	defer d.mu.Unlock()

	if breaker, exists := d.breakers[action]; exists {
		return breaker
	}

	settings := gobreaker.Settings{
		Name:        action,
		MaxRequests: d.config.MaxRequests,
		Interval:    d.config.Interval,
		Timeout:     d.config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= d.config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			d.logger.Info("circuit breaker state changed",
				"action", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	breaker := gobreaker.NewCircuitBreaker[any](settings)
	d.breakers[action] = breaker
	return breaker
}
