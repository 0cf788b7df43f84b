package inventoryrepo

import (
	"context"
	"errors"
	"time"

	"litstock/internal/core/domain/model/inventory"
	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Get retrieves a stock record by its (organization, literature) pair.
func (r *GormInventoryRepository) Get(
	ctx context.Context,
	organizationID, literatureID kernel.UUID,
) (*inventory.Record, error) {
	if err := organizationID.Validate(); err != nil {
		return nil, err
	}
	if err := literatureID.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryRecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "organization_id = ? AND literature_id = ?",
			organizationID.Bytes(), literatureID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventoryRecord",
				organizationID.String()+"/"+literatureID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Available returns quantity minus reserved; a missing record counts as zero.
func (r *GormInventoryRepository) Available(
	ctx context.Context,
	organizationID, literatureID kernel.UUID,
) (int, error) {
	var available int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(
			(SELECT quantity - reserved
			 FROM inventory_records
			 WHERE organization_id = ? AND literature_id = ?), 0)
	`, organizationID.Bytes(), literatureID.Bytes()).Scan(&available).Error
	if err != nil {
		return 0, err
	}

	return available, nil
}

// Reserve moves quantity from available to reserved in one conditional update.
func (r *GormInventoryRepository) Reserve(
	ctx context.Context,
	organizationID, literatureID kernel.UUID,
	quantity int,
) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_records
		SET reserved = reserved + ?, last_updated = ?
		WHERE organization_id = ? AND literature_id = ?
		  AND quantity - reserved >= ?
	`, quantity, time.Now().UTC(), organizationID.Bytes(), literatureID.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		available, err := r.Available(ctx, organizationID, literatureID)
		if err != nil {
			return err
		}
		return inventory.NewInsufficientStockError(organizationID, literatureID, quantity, available)
	}

	return nil
}

// Release returns reserved stock to the available pool.
func (r *GormInventoryRepository) Release(
	ctx context.Context,
	organizationID, literatureID kernel.UUID,
	quantity int,
) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_records
		SET reserved = reserved - ?, last_updated = ?
		WHERE organization_id = ? AND literature_id = ?
		  AND reserved >= ?
	`, quantity, time.Now().UTC(), organizationID.Bytes(), literatureID.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		reserved, err := r.reservedCount(ctx, organizationID, literatureID)
		if err != nil {
			return err
		}
		return inventory.NewOverReleaseError(organizationID, literatureID, quantity, reserved)
	}

	return nil
}

// ReleaseClamped releases up to quantity, flooring reserved at zero. A missing
// record is a no-op: the rejection path must succeed regardless of how much of
// the hold is still in place.
func (r *GormInventoryRepository) ReleaseClamped(
	ctx context.Context,
	organizationID, literatureID kernel.UUID,
	quantity int,
) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE inventory_records
		SET reserved = GREATEST(reserved - ?, 0), last_updated = ?
		WHERE organization_id = ? AND literature_id = ?
	`, quantity, time.Now().UTC(), organizationID.Bytes(), literatureID.Bytes()).Error
}

// Adjust changes quantity by a signed delta. The condition keeps the result at
// or above the reserved amount, which also keeps it non-negative. A positive
// delta upserts, so the first adjustment for a pair creates its record even
// when two adjustments arrive at once.
func (r *GormInventoryRepository) Adjust(
	ctx context.Context,
	organizationID, literatureID kernel.UUID,
	delta int,
) error {
	if delta > 0 {
		// Adding stock can never drop quantity below reserved, so no
		// condition is needed on the update arm.
		return r.db.WithContext(ctx).Exec(`
			INSERT INTO inventory_records (organization_id, literature_id, quantity, reserved, last_updated)
			VALUES (?, ?, ?, 0, ?)
			ON CONFLICT (organization_id, literature_id)
			DO UPDATE SET quantity = inventory_records.quantity + EXCLUDED.quantity,
			              last_updated = EXCLUDED.last_updated
		`, organizationID.Bytes(), literatureID.Bytes(), delta, time.Now().UTC()).Error
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_records
		SET quantity = quantity + ?, last_updated = ?
		WHERE organization_id = ? AND literature_id = ?
		  AND quantity + ? >= reserved
	`, delta, time.Now().UTC(), organizationID.Bytes(), literatureID.Bytes(), delta)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	record, err := r.Get(ctx, organizationID, literatureID)
	if err == nil {
		// Row exists, so the condition failed. Replay on the aggregate to
		// surface the matching typed error.
		return record.Adjust(delta)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	return inventory.NewNegativeQuantityError(organizationID, literatureID, delta, 0)
}

// Withdraw decrements quantity for the source side of a transfer. Only
// available stock may leave; reserved stock stays put.
func (r *GormInventoryRepository) Withdraw(
	ctx context.Context,
	organizationID, literatureID kernel.UUID,
	quantity int,
) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_records
		SET quantity = quantity - ?, last_updated = ?
		WHERE organization_id = ? AND literature_id = ?
		  AND quantity - reserved >= ?
	`, quantity, time.Now().UTC(), organizationID.Bytes(), literatureID.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		available, err := r.Available(ctx, organizationID, literatureID)
		if err != nil {
			return err
		}
		return inventory.NewInsufficientStockError(organizationID, literatureID, quantity, available)
	}

	return nil
}

// ConsumeReserved decrements quantity and reserved together on completion.
func (r *GormInventoryRepository) ConsumeReserved(
	ctx context.Context,
	organizationID, literatureID kernel.UUID,
	quantity int,
) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_records
		SET quantity = quantity - ?, reserved = reserved - ?, last_updated = ?
		WHERE organization_id = ? AND literature_id = ?
		  AND reserved >= ?
	`, quantity, quantity, time.Now().UTC(), organizationID.Bytes(), literatureID.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		reserved, err := r.reservedCount(ctx, organizationID, literatureID)
		if err != nil {
			return err
		}
		return inventory.NewOverReleaseError(organizationID, literatureID, quantity, reserved)
	}

	return nil
}

// Receive increments quantity, creating the record when absent. The upsert
// keeps concurrent first receipts for the same pair from colliding on the
// primary key.
func (r *GormInventoryRepository) Receive(
	ctx context.Context,
	organizationID, literatureID kernel.UUID,
	quantity int,
) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO inventory_records (organization_id, literature_id, quantity, reserved, last_updated)
		VALUES (?, ?, ?, 0, ?)
		ON CONFLICT (organization_id, literature_id)
		DO UPDATE SET quantity = inventory_records.quantity + EXCLUDED.quantity,
		              last_updated = EXCLUDED.last_updated
	`, organizationID.Bytes(), literatureID.Bytes(), quantity, time.Now().UTC()).Error
}

func (r *GormInventoryRepository) reservedCount(
	ctx context.Context,
	organizationID, literatureID kernel.UUID,
) (int, error) {
	var reserved int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(
			(SELECT reserved
			 FROM inventory_records
			 WHERE organization_id = ? AND literature_id = ?), 0)
	`, organizationID.Bytes(), literatureID.Bytes()).Scan(&reserved).Error
	if err != nil {
		return 0, err
	}

	return reserved, nil
}
