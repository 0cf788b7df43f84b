package ports

import (
	"context"

	"litstock/internal/core/domain/model/inventory"
	"litstock/internal/core/domain/model/kernel"
)

// InventoryRepository manipulates per-organization stock records.
//
// The mutation methods are atomic primitives: each one must be implemented as
// a single conditional statement so that concurrent callers can never observe
// or produce a record violating 0 <= reserved <= quantity. When the condition
// does not hold the method returns the matching typed inventory error
// (InsufficientStockError, OverReleaseError, NegativeQuantityError).
type InventoryRepository interface {
	// Get loads a stock record. Returns errs.ObjectNotFoundError when no
	// record exists for the pair.
	Get(ctx context.Context, organizationID, literatureID kernel.UUID) (*inventory.Record, error)

	// Available returns quantity minus reserved for the pair. A missing record
	// counts as zero available stock.
	Available(ctx context.Context, organizationID, literatureID kernel.UUID) (int, error)

	// Reserve moves quantity from available to reserved. Fails with
	// InsufficientStockError when available stock is below quantity,
	// including when no record exists.
	Reserve(ctx context.Context, organizationID, literatureID kernel.UUID, quantity int) error

	// Release returns reserved stock to available. Fails with
	// OverReleaseError when quantity exceeds the reserved amount.
	Release(ctx context.Context, organizationID, literatureID kernel.UUID, quantity int) error

	// ReleaseClamped releases up to quantity, flooring reserved at zero.
	// A missing record is a no-op. Used on the rejection path where partial
	// releases may already have happened.
	ReleaseClamped(ctx context.Context, organizationID, literatureID kernel.UUID, quantity int) error

	// Adjust changes quantity by a signed delta, creating the record when it
	// does not exist and the delta is positive. Fails with
	// NegativeQuantityError when the result would drop below zero or below
	// the reserved amount.
	Adjust(ctx context.Context, organizationID, literatureID kernel.UUID, delta int) error

	// Withdraw decrements quantity without touching reserved, the source side
	// of a transfer. Fails with InsufficientStockError when available stock is
	// below quantity, so reserved stock can never be transferred away.
	Withdraw(ctx context.Context, organizationID, literatureID kernel.UUID, quantity int) error

	// ConsumeReserved decrements quantity and reserved together, the
	// fulfillment side of a completed order. Fails with OverReleaseError when
	// reserved is below quantity.
	ConsumeReserved(ctx context.Context, organizationID, literatureID kernel.UUID, quantity int) error

	// Receive increments quantity, creating the record when it does not
	// exist. The receiving side of a completed order.
	Receive(ctx context.Context, organizationID, literatureID kernel.UUID, quantity int) error
}
