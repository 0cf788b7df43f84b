package ports

import (
	"context"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/organization"
)

// OrganizationRepository persists Organization aggregates.
type OrganizationRepository interface {
	// Add inserts a new organization.
	Add(ctx context.Context, aggregate *organization.Organization) error

	// Update saves the current state of the organization.
	Update(ctx context.Context, aggregate *organization.Organization) error

	// Get loads an organization by ID.
	Get(ctx context.Context, organizationID kernel.UUID) (*organization.Organization, error)
}
