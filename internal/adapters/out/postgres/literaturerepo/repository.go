package literaturerepo

import (
	"context"
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/literature"
	"litstock/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLiteratureRepository implements LiteratureRepository using GORM.
type GormLiteratureRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLiteratureRepository creates a new GORM literature repository.
func NewGormLiteratureRepository(db *gorm.DB, tracker aggregateTracker) *GormLiteratureRepository {
	return &GormLiteratureRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog item to the database.
func (r *GormLiteratureRepository) Add(ctx context.Context, aggregate *literature.Literature) error {
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

// Update saves an existing catalog item to the database.
func (r *GormLiteratureRepository) Update(ctx context.Context, aggregate *literature.Literature) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LiteratureDTO{}).
		Where("id = ?", dto.ID).
		Select("title", "category", "price", "is_active").
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

// Get retrieves a catalog item by ID.
func (r *GormLiteratureRepository) Get(ctx context.Context, id kernel.UUID) (*literature.Literature, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LiteratureDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("literature", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
