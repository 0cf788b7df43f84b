package commands

import (
	"context"
	"errors"
)

// ErrLiteratureNotOrderable is returned when adding a deactivated catalog item
// to an order.
var ErrLiteratureNotOrderable = errors.New("literature item is not active")

// AddOrderItemCommandHandler adds a line to an order, snapshotting the current
// catalog price so later price changes never alter an existing order.
type AddOrderItemCommandHandler struct {
	uowFactory OrderIntakeUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order lines.
func NewAddOrderItemCommandHandler(uowFactory OrderIntakeUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add item command. The aggregate refuses the mutation on
// locked orders and outside Draft or Pending.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	item, err := uow.LiteratureRepository().Get(ctx, cmd.LiteratureID())
	if err != nil {
		return err
	}
	if !item.IsActive() {
		return ErrLiteratureNotOrderable
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(cmd.LiteratureID(), cmd.Quantity(), item.Price()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
