package commands

import (
	"context"
	"errors"

	"lifecycle/internal/core/application/automation"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/core/domain/workflow"
	"lifecycle/internal/pkg/errs"
)

// ChangeShipmentStatusCommandHandler moves a shipment through its lifecycle.
// The handler mirrors ChangeParcelStatusCommandHandler: read inside a
// transaction, validate against the fresh status, write conditionally, and
// retry the cycle once when a concurrent change wins the race.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	validator  *workflow.Validator
	engine     *automation.Engine
}

// NewChangeShipmentStatusCommandHandler creates a handler for shipment
// status changes.
func NewChangeShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	validator *workflow.Validator,
	engine *automation.Engine,
) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		engine:     engine,
	}
}

// Handle processes the status change command. The returned error is reserved
// for infrastructure and integration failures; business rejections come back
// in the result with Applied() == false.
func (h *ChangeShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeShipmentStatusCommand,
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

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return ChangeStatusResult{}, err
	}

	transition := workflow.TransitionContext{
		EntityID:      cmd.ShipmentID(),
		Kind:          status.KindShipment,
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

	err = shipmentRepo.UpdateStatus(ctx, cmd.ShipmentID(), transition.CurrentStatus, cmd.NewStatus(), cmd.ChangedAt())
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		aggregate, err = shipmentRepo.Get(ctx, cmd.ShipmentID())
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

		err = shipmentRepo.UpdateStatus(ctx, cmd.ShipmentID(), transition.CurrentStatus, cmd.NewStatus(), cmd.ChangedAt())
	}
	if err != nil {
		return ChangeStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeStatusResult{}, err
	}

	rules := h.validator.Automation().Resolve(status.KindShipment, cmd.NewStatus())
	outcome := h.engine.Execute(ctx, transition, rules)

	return ChangeStatusResult{Validation: validation, Automation: outcome}, nil
}
