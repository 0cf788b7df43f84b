package ports

import (
	"context"
	"time"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates together with their lines.
type OrderRepository interface {
	// Add inserts a new order. The caller is expected to have assigned the
	// order number from NextNumber inside the same transaction.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update saves the current state of the order and its lines, except the
	// status, which changes only through UpdateStatusGuarded.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusGuarded saves the order only if its persisted status still
	// equals from. Returns order.ErrStatusConflict when another transaction
	// moved the order first.
	UpdateStatusGuarded(ctx context.Context, aggregate *order.Order, from order.Status) error

	// Get loads an order with its lines by ID.
	Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error)

	// Delete removes an order and its lines. Callers must check
	// EnsureDeletable on the aggregate first.
	Delete(ctx context.Context, orderID kernel.UUID) error

	// NextNumber allocates the next sequential order number for the given
	// day. Implementations must serialize allocation so that two concurrent
	// inserts never receive the same number.
	NextNumber(ctx context.Context, day time.Time) (order.Number, error)
}
