package cmd

import (
	"log/slog"

	"litstock/internal/adapters/in/http"
	"litstock/internal/adapters/out/postgres"
	"litstock/internal/core/application/usecases/commands"
	"litstock/internal/core/application/usecases/queries"
	"litstock/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// CreateHTTPServer wires every command and query handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AddOrderItem:       c.CreateAddOrderItemCommandHandler(),
		UpdateOrderItem:    c.CreateUpdateOrderItemCommandHandler(),
		RemoveOrderItem:    c.CreateRemoveOrderItemCommandHandler(),
		ChangeOrderStatus:  c.CreateChangeOrderStatusCommandHandler(),
		LockOrder:          c.CreateLockOrderCommandHandler(),
		UnlockOrder:        c.CreateUnlockOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		ReserveStock:       c.CreateReserveStockCommandHandler(),
		ReleaseStock:       c.CreateReleaseStockCommandHandler(),
		AdjustStock:        c.CreateAdjustStockCommandHandler(),
		TransferStock:      c.CreateTransferStockCommandHandler(),
		ReverseAdjustment:  c.CreateReverseAdjustmentCommandHandler(),
		CreateOrganization: c.CreateCreateOrganizationCommandHandler(),
		CreateLiterature:   c.CreateCreateLiteratureCommandHandler(),
		GetAvailableStock:  c.CreateGetAvailableStockQueryHandler(),
		GetStockMovements:  c.CreateGetStockMovementsQueryHandler(),
	})
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLowStockQueryHandler(),
		c.config.LowStockThreshold,
		c.config.LowStockSchedule,
		logger,
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderIntakeUoWFactory = FuncOrderIntakeUoWFactory(func() commands.OrderIntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	var f commands.OrderIntakeUoWFactory = FuncOrderIntakeUoWFactory(func() commands.OrderIntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderItemCommandHandler() commands.UpdateOrderItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateLockOrderCommandHandler() commands.LockOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLockOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUnlockOrderCommandHandler() commands.UnlockOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnlockOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReserveStockCommandHandler() commands.ReserveStockCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReserveStockCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseStockCommandHandler() commands.ReleaseStockCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseStockCommandHandler(f)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferStockCommandHandler() commands.TransferStockCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferStockCommandHandler(f)
}

func (c *CompositionRoot) CreateReverseAdjustmentCommandHandler() commands.ReverseAdjustmentCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReverseAdjustmentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrganizationCommandHandler() commands.CreateOrganizationCommandHandler {
	var f commands.OrganizationUoWFactory = FuncOrganizationUoWFactory(func() commands.OrganizationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrganizationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLiteratureCommandHandler() commands.CreateLiteratureCommandHandler {
	var f commands.LiteratureUoWFactory = FuncLiteratureUoWFactory(func() commands.LiteratureUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLiteratureCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableStockQueryHandler() queries.GetAvailableStockQueryHandler {
	return queries.NewGetAvailableStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockMovementsQueryHandler() queries.GetStockMovementsQueryHandler {
	return queries.NewGetStockMovementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockQueryHandler() queries.GetLowStockQueryHandler {
	return queries.NewGetLowStockQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderIntakeUoWFactory func() commands.OrderIntakeUoW

func (f FuncOrderIntakeUoWFactory) Create() commands.OrderIntakeUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncOrganizationUoWFactory func() commands.OrganizationUoW

func (f FuncOrganizationUoWFactory) Create() commands.OrganizationUoW {
	return f()
}

type FuncLiteratureUoWFactory func() commands.LiteratureUoW

func (f FuncLiteratureUoWFactory) Create() commands.LiteratureUoW {
	return f()
}
