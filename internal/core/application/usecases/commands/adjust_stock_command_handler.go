package commands

import (
	"context"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/stockmovement"
)

// AdjustStockCommandHandler applies a manual stock correction and writes the
// matching adjustment entry in the same transaction. The entry keeps the
// delta's sign so negative corrections stay visible in the trail.
type AdjustStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock corrections.
func NewAdjustStockCommandHandler(uowFactory InventoryUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the adjustment command. The correction fails when it would
// drop the quantity below zero or below the reserved amount.
func (h AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
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

	if err := uow.InventoryRepository().Adjust(ctx,
		cmd.OrganizationID(), cmd.LiteratureID(), cmd.Delta()); err != nil {
		return err
	}

	item, err := uow.LiteratureRepository().Get(ctx, cmd.LiteratureID())
	if err != nil {
		return err
	}

	entry, err := stockmovement.NewEntry(
		kernel.NewUUID(),
		stockmovement.Adjustment,
		nil,
		cmd.OrganizationID(),
		cmd.LiteratureID(),
		cmd.Delta(),
		item.Price(),
		nil,
		cmd.Reason(),
	)
	if err != nil {
		return err
	}

	if err = uow.MovementRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
