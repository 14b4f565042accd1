package commands

import (
	"lifecycle/internal/core/application/automation"
	"lifecycle/internal/core/domain/workflow"
)

// ChangeStatusResult is the outcome of a status-change command. A rejected
// transition is a normal result, not an error: Validation carries the
// structured rejection and no state was written. On an accepted transition
// Automation reports what the post-commit fan-out accomplished; automation
// failures never undo the committed status change.
type ChangeStatusResult struct {
	Validation workflow.ValidationResult
	Automation automation.Outcome
}

// Applied reports whether the status change was validated and committed.
func (r ChangeStatusResult) Applied() bool {
	return r.Validation.IsValid
}
