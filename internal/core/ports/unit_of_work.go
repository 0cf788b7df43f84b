package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every composite
// effect in the engine — a status write plus its reservations plus its
// movement entries — runs inside one unit of work so it commits or rolls back
// as a whole. Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// OrganizationRepository returns an OrganizationRepository bound to the current transaction.
	OrganizationRepository() OrganizationRepository

	// LiteratureRepository returns a LiteratureRepository bound to the current transaction.
	LiteratureRepository() LiteratureRepository

	// InventoryRepository returns an InventoryRepository bound to the current transaction.
	InventoryRepository() InventoryRepository

	// MovementRepository returns a MovementRepository bound to the current transaction.
	MovementRepository() MovementRepository
}
