package commands

import (
	"context"

	"lifecycle/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for opening a new
// consolidated shipment. New shipments always enter the lifecycle in
// awaiting_quote.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// Uses a transaction to ensure the shipment is properly persisted or rolled
// back on error.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipment.NewShipment(cmd.ShipmentID(), cmd.OwnerID(), cmd.Reference(), cmd.CreatedAt())
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
