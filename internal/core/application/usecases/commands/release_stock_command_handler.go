package commands

import (
	"context"
)

// ReleaseStockCommandHandler returns held stock to the available pool.
// Releasing more than is held fails rather than clamping; the clamped
// variant is reserved for the order rejection path.
type ReleaseStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewReleaseStockCommandHandler creates a handler for direct releases.
func NewReleaseStockCommandHandler(uowFactory InventoryUoWFactory) ReleaseStockCommandHandler {
	return ReleaseStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command.
func (h ReleaseStockCommandHandler) Handle(ctx context.Context, cmd ReleaseStockCommand) error {
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

	if err := uow.InventoryRepository().Release(ctx,
		cmd.OrganizationID(), cmd.LiteratureID(), cmd.Quantity()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
