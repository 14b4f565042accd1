package commands

import (
	"context"

	"lifecycle/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel
// registration. New parcels always enter the lifecycle in pending_arrival.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	cmd, _ := NewCreateParcelCommand(kernel.NewUUID(), ownerID, "1Z999AA10123456784", time.Now())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("parcel registration failed: %w", err)
//	}
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel registration command.
// Uses a transaction to ensure the parcel is properly persisted or rolled
// back on error.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcel.NewParcel(cmd.ParcelID(), cmd.OwnerID(), cmd.TrackingNumber(), cmd.CreatedAt())
	if err != nil {
		return err
	}

	if err = parcelRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
