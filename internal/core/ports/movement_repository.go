package ports

import (
	"context"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/stockmovement"
)

// MovementRepository appends to and reads the stock movement ledger.
// Entries are immutable once written; corrections land as new entries.
type MovementRepository interface {
	// Add appends an entry to the ledger.
	Add(ctx context.Context, entry *stockmovement.Entry) error

	// Get loads an entry by ID.
	Get(ctx context.Context, entryID kernel.UUID) (*stockmovement.Entry, error)
}
