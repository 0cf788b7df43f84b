package commands

import (
	"context"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/order"
	"litstock/internal/core/domain/model/stockmovement"
	"litstock/internal/core/ports"
)

// ChangeOrderStatusCommandHandler moves an order along its lifecycle and
// performs the stock and ledger side effects tied to the transition, all
// inside a single transaction:
//
//   - Approved: reserve every line's quantity at the fulfilling warehouse
//   - Shipped: append outgoing ledger entries (record only, no stock change)
//   - Completed: append incoming entries, consume the warehouse reservations
//     and receive the stock at the requesting organization
//   - Rejected: release the reservations made on approval
//
// The status row is saved with a compare-and-swap on the previous status, so
// two concurrent transitions from the same state can never both apply their
// side effects.
type ChangeOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory FulfillmentUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command. Any failed side effect, an
// insufficient reservation included, rolls back the whole transition.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatusGuarded(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = h.applySideEffects(ctx, uow, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// statusTransition is one edge of the order lifecycle.
type statusTransition struct {
	from order.Status
	to   order.Status
}

// transitionEffect applies the stock and ledger consequences of a single
// lifecycle edge within the ambient transaction.
type transitionEffect func(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order) error

// transitionEffects maps lifecycle edges to their stock and ledger
// consequences. Edges absent from the table carry none. The table is keyed
// by the edge rather than the target status because rejection only releases
// reservations when they exist, which is after approval and not before.
func (h ChangeOrderStatusCommandHandler) transitionEffects() map[statusTransition]transitionEffect {
	return map[statusTransition]transitionEffect{
		{from: order.Pending, to: order.Approved}:    h.reserveStock,
		{from: order.InAssembly, to: order.Shipped}:  h.recordShipment,
		{from: order.Delivered, to: order.Completed}: h.settleStock,
		{from: order.Approved, to: order.Rejected}:   h.releaseReservations,
	}
}

func (h ChangeOrderStatusCommandHandler) applySideEffects(
	ctx context.Context,
	uow FulfillmentUoW,
	aggregate *order.Order,
	previous order.Status,
) error {
	effect, ok := h.transitionEffects()[statusTransition{from: previous, to: aggregate.Status()}]
	if !ok {
		return nil
	}
	return effect(ctx, uow, aggregate)
}

func (h ChangeOrderStatusCommandHandler) reserveStock(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order) error {
	inventoryRepo := uow.InventoryRepository()
	for _, item := range aggregate.Items() {
		if err := inventoryRepo.Reserve(ctx,
			aggregate.ToOrganizationID(), item.LiteratureID(), item.Quantity()); err != nil {
			return err
		}
	}
	return nil
}

func (h ChangeOrderStatusCommandHandler) recordShipment(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order) error {
	return h.appendMovements(ctx, uow.MovementRepository(), aggregate, stockmovement.Outgoing)
}

func (h ChangeOrderStatusCommandHandler) settleStock(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order) error {
	if err := h.appendMovements(ctx, uow.MovementRepository(), aggregate, stockmovement.Incoming); err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	for _, item := range aggregate.Items() {
		if err := inventoryRepo.ConsumeReserved(ctx,
			aggregate.ToOrganizationID(), item.LiteratureID(), item.Quantity()); err != nil {
			return err
		}
		if err := inventoryRepo.Receive(ctx,
			aggregate.FromOrganizationID(), item.LiteratureID(), item.Quantity()); err != nil {
			return err
		}
	}
	return nil
}

func (h ChangeOrderStatusCommandHandler) releaseReservations(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order) error {
	inventoryRepo := uow.InventoryRepository()
	for _, item := range aggregate.Items() {
		if err := inventoryRepo.ReleaseClamped(ctx,
			aggregate.ToOrganizationID(), item.LiteratureID(), item.Quantity()); err != nil {
			return err
		}
	}
	return nil
}

// appendMovements writes one ledger entry per order line, directed from the
// fulfilling warehouse to the requesting organization.
func (h ChangeOrderStatusCommandHandler) appendMovements(
	ctx context.Context,
	movementRepo ports.MovementRepository,
	aggregate *order.Order,
	kind stockmovement.Kind,
) error {
	from := aggregate.ToOrganizationID()
	orderID := aggregate.ID()

	for _, item := range aggregate.Items() {
		entry, err := stockmovement.NewEntry(
			kernel.NewUUID(),
			kind,
			&from,
			aggregate.FromOrganizationID(),
			item.LiteratureID(),
			item.Quantity(),
			item.UnitPrice(),
			&orderID,
			"",
		)
		if err != nil {
			return err
		}
		if err = movementRepo.Add(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}
