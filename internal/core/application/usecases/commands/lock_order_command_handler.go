package commands

import (
	"context"
)

// LockOrderCommandHandler takes the advisory edit lock on an order. While the
// lock is held every mutation is refused, lock holder's included; the lock is
// a coordination marker, not an ownership grant.
type LockOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewLockOrderCommandHandler creates a handler for locking orders.
func NewLockOrderCommandHandler(uowFactory OrderUoWFactory) LockOrderCommandHandler {
	return LockOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lock command.
func (h LockOrderCommandHandler) Handle(ctx context.Context, cmd LockOrderCommand) error {
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

	if err = aggregate.Lock(cmd.UserID()); err != nil {
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
