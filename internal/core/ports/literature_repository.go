package ports

import (
	"context"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/literature"
)

// LiteratureRepository persists Literature catalog items.
type LiteratureRepository interface {
	// Add inserts a new literature item.
	Add(ctx context.Context, aggregate *literature.Literature) error

	// Update saves the current state of the literature item.
	Update(ctx context.Context, aggregate *literature.Literature) error

	// Get loads a literature item by ID.
	Get(ctx context.Context, literatureID kernel.UUID) (*literature.Literature, error)
}
