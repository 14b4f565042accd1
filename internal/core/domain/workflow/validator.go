package workflow

import (
	"fmt"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/status"
)

// Reason classifies why a transition was rejected. Rejections are values,
// not errors: callers must branch on the result rather than rely on error
// handling for expected business outcomes.
type Reason string

const (
	// ReasonInvalidTransition means the requested edge does not exist in the
	// graph for the entity's current status. The result carries the valid
	// next set so a UI can present alternatives.
	ReasonInvalidTransition Reason = "invalid_transition"

	// ReasonUnauthorized means the edge exists but the actor's role may not
	// set the destination status. Recoverable by escalation, never retried
	// automatically.
	ReasonUnauthorized Reason = "unauthorized"

	// ReasonPreconditionNotMet means the edge exists and the actor is
	// authorized, but the entity-specific guard for the destination failed.
	ReasonPreconditionNotMet Reason = "precondition_not_met"
)

// TransitionContext is the per-request input to validation: which entity,
// which change, and who is asking.
type TransitionContext struct {
	EntityID      kernel.UUID
	Kind          status.Kind
	CurrentStatus status.Value
	NewStatus     status.Value
	ActorRole     status.Role
	ActorID       string
	Notes         string
	Timestamp     time.Time
}

// ValidationResult is the outcome of a validation request. A rejected
// transition always carries enough structured detail (current status,
// attempted status, valid alternatives or required prior state) for a UI to
// render an actionable message.
type ValidationResult struct {
	IsValid bool

	// Rule is the matched edge's business-rule text, set on success.
	Rule string

	// SuggestedActions names the automation that an accepted transition will
	// enqueue, set on success.
	SuggestedActions []string

	// Reason and Error describe a rejection.
	Reason Reason
	Error  string

	// ValidNext lists the legal destinations from the current status.
	// Populated on ReasonInvalidTransition rejections.
	ValidNext []status.Value

	// RequiredCurrent lists the guard's allowed prior states.
	// Populated on ReasonPreconditionNotMet rejections.
	RequiredCurrent []status.Value
}

// Validator composes the transition graph, the role permission table and the
// precondition guards into a single accept/reject decision. The tables are
// injected so tests can substitute reduced ones without touching call sites.
type Validator struct {
	graph      *TransitionGraph
	perms      *PermissionTable
	guards     *PreconditionTable
	automation *AutomationTable
}

// NewValidator wires the production tables.
func NewValidator() *Validator {
	return NewValidatorWithTables(
		NewTransitionGraph(),
		NewPermissionTable(),
		NewPreconditionTable(),
		NewAutomationTable(),
	)
}

// NewValidatorWithTables builds a validator over caller-supplied tables.
func NewValidatorWithTables(
	graph *TransitionGraph,
	perms *PermissionTable,
	guards *PreconditionTable,
	automation *AutomationTable,
) *Validator {
	return &Validator{
		graph:      graph,
		perms:      perms,
		guards:     guards,
		automation: automation,
	}
}

// Validate runs the transition checks in order, short-circuiting on the
// first failure: graph legality, then role authorization, then the
// destination's precondition guard. On success the result carries the
// matched rule text and the automation the transition will enqueue.
//
// Validate never mutates state and never reaches the store; callers own the
// read-modify-write cycle. The only hard errors are malformed inputs
// (unknown kind or role), which indicate a caller-side integration bug
// rather than a business outcome.
func (v *Validator) Validate(ctx TransitionContext) (ValidationResult, error) {
	if err := ctx.Kind.Validate(); err != nil {
		return ValidationResult{}, err
	}
	if err := ctx.ActorRole.Validate(); err != nil {
		return ValidationResult{}, err
	}

	if !v.graph.IsLegal(ctx.Kind, ctx.CurrentStatus, ctx.NewStatus) {
		// When the destination carries a guard and that guard fails, report
		// the guard's requirement rather than a bare invalid-transition: the
		// message names the prior state the entity must reach first, which
		// is the actionable part for the operator.
		if ok, msg := v.guards.Check(ctx.Kind, ctx.CurrentStatus, ctx.NewStatus); !ok {
			required, _ := v.guards.RequiredCurrent(ctx.Kind, ctx.NewStatus)
			return ValidationResult{
				Reason:          ReasonPreconditionNotMet,
				Error:           msg,
				RequiredCurrent: required,
			}, nil
		}
		return ValidationResult{
			Reason: ReasonInvalidTransition,
			Error: fmt.Sprintf("cannot change %s status from %s to %s",
				ctx.Kind, ctx.CurrentStatus, ctx.NewStatus),
			ValidNext: v.graph.ValidNext(ctx.Kind, ctx.CurrentStatus),
		}, nil
	}

	if !v.perms.IsAuthorized(ctx.ActorRole, ctx.Kind, ctx.NewStatus) {
		return ValidationResult{
			Reason: ReasonUnauthorized,
			Error: fmt.Sprintf("role %s may not set %s status %s; contact an administrator",
				ctx.ActorRole, ctx.Kind, ctx.NewStatus),
		}, nil
	}

	if ok, msg := v.guards.Check(ctx.Kind, ctx.CurrentStatus, ctx.NewStatus); !ok {
		required, _ := v.guards.RequiredCurrent(ctx.Kind, ctx.NewStatus)
		return ValidationResult{
			Reason:          ReasonPreconditionNotMet,
			Error:           msg,
			RequiredCurrent: required,
		}, nil
	}

	rule, _ := v.graph.RuleFor(ctx.Kind, ctx.CurrentStatus, ctx.NewStatus)
	return ValidationResult{
		IsValid:          true,
		Rule:             rule,
		SuggestedActions: v.automation.SuggestedActions(ctx.Kind, ctx.NewStatus),
	}, nil
}

// Graph exposes the underlying transition graph for read-only queries such
// as catalog endpoints.
func (v *Validator) Graph() *TransitionGraph {
	return v.graph
}

// Permissions exposes the underlying role permission table.
func (v *Validator) Permissions() *PermissionTable {
	return v.perms
}

// Automation exposes the underlying automation table.
func (v *Validator) Automation() *AutomationTable {
	return v.automation
}
