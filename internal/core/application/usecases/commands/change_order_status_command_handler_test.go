package commands_test

import (
	"testing"

	"litstock/internal/core/application/usecases/commands"
	"litstock/internal/core/domain/model/inventory"
	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/order"
	"litstock/internal/core/domain/model/stockmovement"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_ApproveReservesStock(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Pending)
	item := aggregate.Items()[0]
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Approved)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateStatusGuarded", mock.Anything, aggregate, order.Pending).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Reserve", mock.Anything,
			aggregate.ToOrganizationID(), item.LiteratureID(), item.Quantity()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Approved, aggregate.Status())
	inventoryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ApproveInsufficientStock(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Pending)
	item := aggregate.Items()[0]
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Approved)
	require.NoError(t, err)

	reserveErr := inventory.NewInsufficientStockError(
		aggregate.ToOrganizationID(), item.LiteratureID(), item.Quantity(), 0)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateStatusGuarded", mock.Anything, aggregate, order.Pending).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Reserve", mock.Anything,
			aggregate.ToOrganizationID(), item.LiteratureID(), item.Quantity()).Return(reserveErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ShippedWritesOutgoingEntries(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.InAssembly)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Shipped)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	movementRepo := new(MockMovementRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateStatusGuarded", mock.Anything, aggregate, order.InAssembly).Return(nil).Once(),
		uow.On("MovementRepository").Return(movementRepo).Once(),
		movementRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *stockmovement.Entry) bool {
			return e.Kind() == stockmovement.Outgoing &&
				e.OrderID() != nil && e.OrderID().IsEqual(aggregate.ID()) &&
				e.FromOrganizationID().IsEqual(aggregate.ToOrganizationID()) &&
				e.ToOrganizationID().IsEqual(aggregate.FromOrganizationID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	movementRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CompletedMovesStock(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Delivered)
	item := aggregate.Items()[0]
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Completed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	movementRepo := new(MockMovementRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateStatusGuarded", mock.Anything, aggregate, order.Delivered).Return(nil).Once(),
		uow.On("MovementRepository").Return(movementRepo).Once(),
		movementRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *stockmovement.Entry) bool {
			return e.Kind() == stockmovement.Incoming && e.Quantity() == item.Quantity()
		})).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("ConsumeReserved", mock.Anything,
			aggregate.ToOrganizationID(), item.LiteratureID(), item.Quantity()).Return(nil).Once(),
		inventoryRepo.On("Receive", mock.Anything,
			aggregate.FromOrganizationID(), item.LiteratureID(), item.Quantity()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	inventoryRepo.AssertExpectations(t)
	movementRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_RejectAfterApprovalReleases(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Approved)
	item := aggregate.Items()[0]
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Rejected)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateStatusGuarded", mock.Anything, aggregate, order.Approved).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("ReleaseClamped", mock.Anything,
			aggregate.ToOrganizationID(), item.LiteratureID(), item.Quantity()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_RejectBeforeApprovalTouchesNoStock(t *testing.T) {
	// No reservations exist before approval, so nothing may be released:
	// clamped releases would eat into other orders' holds.
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Pending)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Rejected)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateStatusGuarded", mock.Anything, aggregate, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	inventoryRepo.AssertExpectations(t)
	inventoryRepo.AssertNotCalled(t, "ReleaseClamped",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Shipped)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	require.Equal(t, order.Draft, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_LockedOrderCanOnlyBeRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Pending)
	require.NoError(t, aggregate.Lock(kernel.NewUUID()))
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Approved)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderIsLocked)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_StatusConflictAborts(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Pending)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Approved)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateStatusGuarded", mock.Anything, aggregate, order.Pending).
			Return(order.ErrStatusConflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrStatusConflict)
	uow.AssertExpectations(t)
}
