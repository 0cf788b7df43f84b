package commands_test

import (
	"context"
	"time"

	"litstock/internal/core/application/usecases/commands"
	"litstock/internal/core/domain/model/inventory"
	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/literature"
	"litstock/internal/core/domain/model/order"
	"litstock/internal/core/domain/model/organization"
	"litstock/internal/core/domain/model/stockmovement"
	"litstock/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatusGuarded(ctx context.Context, o *order.Order, from order.Status) error {
	args := m.Called(ctx, o, from)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) NextNumber(ctx context.Context, day time.Time) (order.Number, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(order.Number), args.Error(1)
}

type MockOrganizationRepository struct{ mock.Mock }

func (m *MockOrganizationRepository) Add(ctx context.Context, o *organization.Organization) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, o *organization.Organization) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrganizationRepository) Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

type MockLiteratureRepository struct{ mock.Mock }

func (m *MockLiteratureRepository) Add(ctx context.Context, l *literature.Literature) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLiteratureRepository) Update(ctx context.Context, l *literature.Literature) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLiteratureRepository) Get(ctx context.Context, id kernel.UUID) (*literature.Literature, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*literature.Literature), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Get(ctx context.Context, orgID, litID kernel.UUID) (*inventory.Record, error) {
	args := m.Called(ctx, orgID, litID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Record), args.Error(1)
}

func (m *MockInventoryRepository) Available(ctx context.Context, orgID, litID kernel.UUID) (int, error) {
	args := m.Called(ctx, orgID, litID)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepository) Reserve(ctx context.Context, orgID, litID kernel.UUID, qty int) error {
	args := m.Called(ctx, orgID, litID, qty)
	return args.Error(0)
}

func (m *MockInventoryRepository) Release(ctx context.Context, orgID, litID kernel.UUID, qty int) error {
	args := m.Called(ctx, orgID, litID, qty)
	return args.Error(0)
}

func (m *MockInventoryRepository) ReleaseClamped(ctx context.Context, orgID, litID kernel.UUID, qty int) error {
	args := m.Called(ctx, orgID, litID, qty)
	return args.Error(0)
}

func (m *MockInventoryRepository) Adjust(ctx context.Context, orgID, litID kernel.UUID, delta int) error {
	args := m.Called(ctx, orgID, litID, delta)
	return args.Error(0)
}

func (m *MockInventoryRepository) Withdraw(ctx context.Context, orgID, litID kernel.UUID, qty int) error {
	args := m.Called(ctx, orgID, litID, qty)
	return args.Error(0)
}

func (m *MockInventoryRepository) ConsumeReserved(ctx context.Context, orgID, litID kernel.UUID, qty int) error {
	args := m.Called(ctx, orgID, litID, qty)
	return args.Error(0)
}

func (m *MockInventoryRepository) Receive(ctx context.Context, orgID, litID kernel.UUID, qty int) error {
	args := m.Called(ctx, orgID, litID, qty)
	return args.Error(0)
}

type MockMovementRepository struct{ mock.Mock }

func (m *MockMovementRepository) Add(ctx context.Context, e *stockmovement.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockMovementRepository) Get(ctx context.Context, id kernel.UUID) (*stockmovement.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stockmovement.Entry), args.Error(1)
}

// txMock factors out the Begin/Commit/Rollback expectations shared by every
// unit of work mock.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ txMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderIntakeUoW struct{ txMock }

func (m *MockOrderIntakeUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderIntakeUoW) OrganizationRepository() ports.OrganizationRepository {
	args := m.Called()
	return args.Get(0).(ports.OrganizationRepository)
}

func (m *MockOrderIntakeUoW) LiteratureRepository() ports.LiteratureRepository {
	args := m.Called()
	return args.Get(0).(ports.LiteratureRepository)
}

type MockOrderIntakeUoWFactory struct{ mock.Mock }

func (m *MockOrderIntakeUoWFactory) Create() commands.OrderIntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderIntakeUoW)
}

type MockFulfillmentUoW struct{ txMock }

func (m *MockFulfillmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockFulfillmentUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockFulfillmentUoW) MovementRepository() ports.MovementRepository {
	args := m.Called()
	return args.Get(0).(ports.MovementRepository)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockInventoryUoW struct{ txMock }

func (m *MockInventoryUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockInventoryUoW) MovementRepository() ports.MovementRepository {
	args := m.Called()
	return args.Get(0).(ports.MovementRepository)
}

func (m *MockInventoryUoW) LiteratureRepository() ports.LiteratureRepository {
	args := m.Called()
	return args.Get(0).(ports.LiteratureRepository)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockOrganizationUoW struct{ txMock }

func (m *MockOrganizationUoW) OrganizationRepository() ports.OrganizationRepository {
	args := m.Called()
	return args.Get(0).(ports.OrganizationRepository)
}

type MockOrganizationUoWFactory struct{ mock.Mock }

func (m *MockOrganizationUoWFactory) Create() commands.OrganizationUoW {
	args := m.Called()
	return args.Get(0).(commands.OrganizationUoW)
}

type MockLiteratureUoW struct{ txMock }

func (m *MockLiteratureUoW) LiteratureRepository() ports.LiteratureRepository {
	args := m.Called()
	return args.Get(0).(ports.LiteratureRepository)
}

type MockLiteratureUoWFactory struct{ mock.Mock }

func (m *MockLiteratureUoWFactory) Create() commands.LiteratureUoW {
	args := m.Called()
	return args.Get(0).(commands.LiteratureUoW)
}
