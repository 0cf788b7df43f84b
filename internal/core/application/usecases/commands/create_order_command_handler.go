package commands

import (
	"context"
	"time"

	"litstock/internal/core/domain/model/order"
	"litstock/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for opening an order.
// Verifies both organizations exist, are active and stand in an allowed
// ordering relation, then allocates the day's next order number and creates
// an empty draft.
type CreateOrderCommandHandler struct {
	uowFactory OrderIntakeUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderIntakeUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The order number is allocated
// inside the same transaction as the insert so concurrent creations on the
// same day never collide.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	orgRepo := uow.OrganizationRepository()
	fromOrg, err := orgRepo.Get(ctx, cmd.FromOrganizationID())
	if err != nil {
		return err
	}
	toOrg, err := orgRepo.Get(ctx, cmd.ToOrganizationID())
	if err != nil {
		return err
	}

	if err = services.NewHierarchyPolicy().CanOrder(fromOrg, toOrg); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextNumber(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), number, cmd.FromOrganizationID(), cmd.ToOrganizationID())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
