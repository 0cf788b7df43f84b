package orgrepo

import (
	"context"
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/organization"
	"litstock/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrganizationRepository implements OrganizationRepository using GORM.
type GormOrganizationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrganizationRepository creates a new GORM organization repository.
func NewGormOrganizationRepository(db *gorm.DB, tracker aggregateTracker) *GormOrganizationRepository {
	return &GormOrganizationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new organization to the database.
func (r *GormOrganizationRepository) Add(ctx context.Context, aggregate *organization.Organization) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing organization to the database.
func (r *GormOrganizationRepository) Update(ctx context.Context, aggregate *organization.Organization) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrganizationDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "org_type", "parent_id", "is_active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an organization by ID.
func (r *GormOrganizationRepository) Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrganizationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("organization", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
