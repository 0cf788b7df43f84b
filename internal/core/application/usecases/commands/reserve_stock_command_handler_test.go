package commands_test

import (
	"testing"

	"litstock/internal/core/application/usecases/commands"
	"litstock/internal/core/domain/model/inventory"
	"litstock/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReserveStockCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	litID := kernel.NewUUID()
	cmd, err := commands.NewReserveStockCommand(orgID, litID, 30)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Reserve", mock.Anything, orgID, litID, 30).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReserveStockCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestReleaseStockCommandHandler_Handle_OverReleaseFails(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	litID := kernel.NewUUID()
	cmd, err := commands.NewReleaseStockCommand(orgID, litID, 40)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Release", mock.Anything, orgID, litID, 40).
			Return(inventory.NewOverReleaseError(orgID, litID, 40, 30)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseStockCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, inventory.ErrOverRelease)
	uow.AssertExpectations(t)
}

func TestNewReserveStockCommand_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := commands.NewReserveStockCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}
