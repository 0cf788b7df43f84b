package commands

import (
	"context"
)

// ReserveStockCommandHandler puts a hold on stock at an organization. The
// underlying primitive is a single conditional update, so concurrent reserves
// can never jointly exceed the available amount.
type ReserveStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewReserveStockCommandHandler creates a handler for direct reservations.
func NewReserveStockCommandHandler(uowFactory InventoryUoWFactory) ReserveStockCommandHandler {
	return ReserveStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reserve command.
func (h ReserveStockCommandHandler) Handle(ctx context.Context, cmd ReserveStockCommand) error {
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

	if err := uow.InventoryRepository().Reserve(ctx,
		cmd.OrganizationID(), cmd.LiteratureID(), cmd.Quantity()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
