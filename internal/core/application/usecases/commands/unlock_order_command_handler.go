package commands

import (
	"context"
)

// UnlockOrderCommandHandler releases an order's advisory lock. Only the
// holder or an administrator may release it; unlocking an unlocked order
// succeeds without effect.
type UnlockOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnlockOrderCommandHandler creates a handler for unlocking orders.
func NewUnlockOrderCommandHandler(uowFactory OrderUoWFactory) UnlockOrderCommandHandler {
	return UnlockOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unlock command.
func (h UnlockOrderCommandHandler) Handle(ctx context.Context, cmd UnlockOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Unlock(cmd.UserID(), cmd.IsAdmin()); err != nil {
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
