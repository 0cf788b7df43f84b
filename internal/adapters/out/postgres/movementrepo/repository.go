package movementrepo

import (
	"context"
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/stockmovement"
	"litstock/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMovementRepository implements MovementRepository using GORM. There is no
// Update or Delete: the ledger only grows.
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GORM movement repository.
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// Add appends an entry to the ledger.
func (r *GormMovementRepository) Add(ctx context.Context, entry *stockmovement.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an entry by ID.
func (r *GormMovementRepository) Get(ctx context.Context, id kernel.UUID) (*stockmovement.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MovementDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("movementEntry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
