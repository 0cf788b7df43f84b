// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"litstock/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest union covering the repositories it
// touches, so a composite effect (a status write plus its stock mutations plus
// its ledger entries) commits or rolls back as one transaction.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrganizationRepoFactory provides access to the organization repository within a transaction.
	OrganizationRepoFactory interface {
		OrganizationRepository() ports.OrganizationRepository
	}

	// LiteratureRepoFactory provides access to the literature repository within a transaction.
	LiteratureRepoFactory interface {
		LiteratureRepository() ports.LiteratureRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// MovementRepoFactory provides access to the movement ledger repository within a transaction.
	MovementRepoFactory interface {
		MovementRepository() ports.MovementRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// item edits, locking, unlocking and deletion.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderIntakeUoW manages transactions for commands that build order
	// content: creating an order (organization checks) and adding lines
	// (catalog price snapshots).
	OrderIntakeUoW interface {
		TxManager
		OrderRepoFactory
		OrganizationRepoFactory
		LiteratureRepoFactory
	}

	// OrderIntakeUoWFactory creates new order intake unit of work instances.
	OrderIntakeUoWFactory interface {
		Create() OrderIntakeUoW
	}

	// FulfillmentUoW manages transactions for status transitions, which
	// coordinate the order aggregate with stock records and ledger entries.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
		MovementRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// InventoryUoW manages transactions for direct stock operations:
	// reservations, adjustments, transfers and adjustment reversals.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
		MovementRepoFactory
		LiteratureRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// OrganizationUoW manages transactions for organization administration.
	OrganizationUoW interface {
		TxManager
		OrganizationRepoFactory
	}

	// OrganizationUoWFactory creates new organization unit of work instances.
	OrganizationUoWFactory interface {
		Create() OrganizationUoW
	}

	// LiteratureUoW manages transactions for catalog administration.
	LiteratureUoW interface {
		TxManager
		LiteratureRepoFactory
	}

	// LiteratureUoWFactory creates new literature unit of work instances.
	LiteratureUoWFactory interface {
		Create() LiteratureUoW
	}
)
