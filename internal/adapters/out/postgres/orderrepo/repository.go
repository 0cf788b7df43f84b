package orderrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/order"
	"litstock/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. Order lines are replaced
// wholesale since the aggregate is the unit of consistency. The status column
// is never touched here: it moves only through UpdateStatusGuarded, so a
// caller holding a stale read cannot roll back a transition another
// transaction already committed.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"total_amount": dto.TotalAmount,
			"locked_at":    dto.LockedAt,
			"locked_by":    dto.LockedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatusGuarded persists the order's status only if the stored status
// still equals the status the caller observed before the transition. A zero
// row count means another transaction moved the order first.
func (r *GormOrderRepository) UpdateStatusGuarded(ctx context.Context, aggregate *order.Order, from order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(from)).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrStatusConflict
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order and its lines from the database.
func (r *GormOrderRepository) Delete(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ?", orderID.Bytes()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}

	return nil
}

// orderNumberLockClass namespaces the advisory locks taken while allocating
// order numbers so they cannot collide with other advisory lock users.
const orderNumberLockClass = 4821

// NextNumber allocates the next sequential order number for the given day.
// Allocation is serialized with a transaction-scoped advisory lock keyed by
// the day: concurrent creators queue behind the lock and each one sees the
// numbers committed by those ahead of it. Locking the current maximum row
// would not do, since a competing insert is invisible to the scan and the
// first order of a day has no row to lock at all.
func (r *GormOrderRepository) NextNumber(ctx context.Context, day time.Time) (order.Number, error) {
	prefix := order.DayPrefix(day)

	dayKey, err := strconv.Atoi(day.Format("20060102"))
	if err != nil {
		return "", fmt.Errorf("invalid order number day: %w", err)
	}
	if err = r.db.WithContext(ctx).Exec(
		"SELECT pg_advisory_xact_lock(?, ?)", orderNumberLockClass, dayKey,
	).Error; err != nil {
		return "", err
	}

	var last sql.NullString
	err = r.db.WithContext(ctx).Raw(`
		SELECT number
		FROM orders
		WHERE number LIKE ?
		ORDER BY number DESC
		LIMIT 1
	`, prefix+"%").Scan(&last).Error
	if err != nil {
		return "", err
	}

	sequence := 1
	if last.Valid {
		suffix := strings.TrimPrefix(last.String, prefix)
		parsed, convErr := strconv.Atoi(suffix)
		if convErr != nil {
			return "", fmt.Errorf("malformed order number %q: %w", last.String, convErr)
		}
		sequence = parsed + 1
	}

	return order.FormatNumber(day, sequence), nil
}
