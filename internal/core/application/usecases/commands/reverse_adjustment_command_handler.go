package commands

import (
	"context"

	"litstock/internal/core/domain/model/kernel"
)

// ReverseAdjustmentCommandHandler undoes a manual adjustment by appending the
// compensating entry and applying the opposite quantity change. Entries
// linked to orders and non-adjustment entries cannot be reversed; the
// aggregate refuses them.
type ReverseAdjustmentCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewReverseAdjustmentCommandHandler creates a handler for adjustment reversals.
func NewReverseAdjustmentCommandHandler(uowFactory InventoryUoWFactory) ReverseAdjustmentCommandHandler {
	return ReverseAdjustmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reversal command.
func (h ReverseAdjustmentCommandHandler) Handle(ctx context.Context, cmd ReverseAdjustmentCommand) error {
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

	movementRepo := uow.MovementRepository()
	entry, err := movementRepo.Get(ctx, cmd.EntryID())
	if err != nil {
		return err
	}

	reversal, err := entry.Reversal(kernel.NewUUID(), cmd.Reason())
	if err != nil {
		return err
	}

	if err = uow.InventoryRepository().Adjust(ctx,
		reversal.ToOrganizationID(), reversal.LiteratureID(), reversal.Quantity()); err != nil {
		return err
	}

	if err = movementRepo.Add(ctx, reversal); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
