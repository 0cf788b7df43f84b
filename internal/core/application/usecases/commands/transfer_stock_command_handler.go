package commands

import (
	"context"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/stockmovement"
)

// TransferStockCommandHandler moves stock between two organizations: the
// source quantity is withdrawn, the destination record is incremented or
// created, and one outgoing ledger entry is appended. All three effects
// commit together or not at all.
type TransferStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewTransferStockCommandHandler creates a handler for stock transfers.
func NewTransferStockCommandHandler(uowFactory InventoryUoWFactory) TransferStockCommandHandler {
	return TransferStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer command. The withdrawal checks available
// stock, so a transfer can never take stock out from under a reservation.
func (h TransferStockCommandHandler) Handle(ctx context.Context, cmd TransferStockCommand) error {
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

	inventoryRepo := uow.InventoryRepository()
	if err := inventoryRepo.Withdraw(ctx,
		cmd.FromOrganizationID(), cmd.LiteratureID(), cmd.Quantity()); err != nil {
		return err
	}
	if err := inventoryRepo.Receive(ctx,
		cmd.ToOrganizationID(), cmd.LiteratureID(), cmd.Quantity()); err != nil {
		return err
	}

	item, err := uow.LiteratureRepository().Get(ctx, cmd.LiteratureID())
	if err != nil {
		return err
	}

	from := cmd.FromOrganizationID()
	entry, err := stockmovement.NewEntry(
		kernel.NewUUID(),
		stockmovement.Outgoing,
		&from,
		cmd.ToOrganizationID(),
		cmd.LiteratureID(),
		cmd.Quantity(),
		item.Price(),
		cmd.OrderID(),
		"",
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
