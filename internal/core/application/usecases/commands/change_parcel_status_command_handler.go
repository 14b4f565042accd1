package commands

import (
	"context"
	"errors"

	"lifecycle/internal/core/application/automation"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/core/domain/workflow"
	"lifecycle/internal/pkg/errs"
)

// ChangeParcelStatusCommandHandler moves a parcel through its lifecycle.
// The handler owns the read-validate-write cycle: it reads the parcel's
// current status inside a transaction, runs the workflow validator against
// it, and applies the change with a conditional write so a concurrent change
// by another actor can never be silently overwritten.
//
// When the conditional write loses the race, the handler re-reads the fresh
// status and re-validates once. A request that is still valid against the
// new status goes through; one that is not comes back as a normal rejection.
//
// Automation runs after the transaction commits. A failed automation action
// is logged and reported in the result but never rolls back the committed
// status change.
type ChangeParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	validator  *workflow.Validator
	engine     *automation.Engine
}

// NewChangeParcelStatusCommandHandler creates a handler for parcel status
// changes.
func NewChangeParcelStatusCommandHandler(
	uowFactory ParcelUoWFactory,
	validator *workflow.Validator,
	engine *automation.Engine,
) ChangeParcelStatusCommandHandler {
	return ChangeParcelStatusCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		engine:     engine,
	}
}

// Handle processes the status change command. The returned error is reserved
// for infrastructure and integration failures; business rejections come back
// in the result with Applied() == false.
func (h *ChangeParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeParcelStatusCommand,
) (ChangeStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return ChangeStatusResult{}, err
	}

	transition := workflow.TransitionContext{
		EntityID:      cmd.ParcelID(),
		Kind:          status.KindPackage,
		CurrentStatus: aggregate.Status(),
		NewStatus:     cmd.NewStatus(),
		ActorRole:     cmd.ActorRole(),
		ActorID:       cmd.ActorID(),
		Notes:         cmd.Notes(),
		Timestamp:     cmd.ChangedAt(),
	}

	validation, err := h.validator.Validate(transition)
	if err != nil {
		return ChangeStatusResult{}, err
	}
	if !validation.IsValid {
		return ChangeStatusResult{Validation: validation}, nil
	}

	err = parcelRepo.UpdateStatus(ctx, cmd.ParcelID(), transition.CurrentStatus, cmd.NewStatus(), cmd.ChangedAt())
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		// Another actor moved the parcel between our read and our write.
		// Re-read the fresh status and re-validate once; a second conflict
		// surfaces as an error.
		aggregate, err = parcelRepo.Get(ctx, cmd.ParcelID())
		if err != nil {
			return ChangeStatusResult{}, err
		}

		transition.CurrentStatus = aggregate.Status()
		validation, err = h.validator.Validate(transition)
		if err != nil {
			return ChangeStatusResult{}, err
		}
		if !validation.IsValid {
			return ChangeStatusResult{Validation: validation}, nil
		}

		err = parcelRepo.UpdateStatus(ctx, cmd.ParcelID(), transition.CurrentStatus, cmd.NewStatus(), cmd.ChangedAt())
	}
	if err != nil {
		return ChangeStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeStatusResult{}, err
	}

	rules := h.validator.Automation().Resolve(status.KindPackage, cmd.NewStatus())
	outcome := h.engine.Execute(ctx, transition, rules)

	return ChangeStatusResult{Validation: validation, Automation: outcome}, nil
}
