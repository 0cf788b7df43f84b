// Package inventory holds the stock record aggregate for a single
// (organization, literature) pair and the typed failures of the ledger.
//
// The core invariant is 0 <= reserved <= quantity at all times; every mutator
// below refuses changes that would break it. Under concurrent access the same
// checks are additionally enforced by the repository's single-statement
// conditional updates, so the invariant holds in the store even when two
// requests race on the same record.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/errs"
	"litstock/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is the stock row for one organization and one literature item.
// quantity is the physically held stock; reserved is the portion held for
// approved orders that have not yet shipped. available = quantity - reserved.
type Record struct {
	organizationID kernel.UUID
	literatureID   kernel.UUID
	quantity       int
	reserved       int
	lastUpdated    time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates an empty stock record for a pair. Records are created lazily
// on the first stock-affecting operation for the pair.
func NewRecord(organizationID, literatureID kernel.UUID) (*Record, error) {
	return RestoreRecord(organizationID, literatureID, 0, 0, time.Now().UTC())
}

// RestoreRecord reconstructs a stock record from persistent storage.
// Quantities are re-checked so a corrupted row cannot enter the domain.
func RestoreRecord(
	organizationID, literatureID kernel.UUID,
	quantity, reserved int,
	lastUpdated time.Time,
) (*Record, error) {
	if err := organizationID.Validate(); err != nil {
		return nil, err
	}
	if err := literatureID.Validate(); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is negative", quantity))
	}
	if reserved < 0 || reserved > quantity {
		return nil, errs.NewValueIsOutOfRangeError("reserved", reserved, 0, quantity)
	}

	return &Record{
		organizationID: organizationID,
		literatureID:   literatureID,
		quantity:       quantity,
		reserved:       reserved,
		lastUpdated:    lastUpdated,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Record was created via a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// OrganizationID returns the owning organization's ID.
func (r *Record) OrganizationID() kernel.UUID {
	return r.organizationID
}

// LiteratureID returns the stocked item's ID.
func (r *Record) LiteratureID() kernel.UUID {
	return r.literatureID
}

// Quantity returns the physically held stock.
func (r *Record) Quantity() int {
	return r.quantity
}

// Reserved returns the stock held for approved but unshipped orders.
func (r *Record) Reserved() int {
	return r.reserved
}

// Available returns the stock eligible for new reservations.
func (r *Record) Available() int {
	return r.quantity - r.reserved
}

// LastUpdated returns the time of the last mutation.
func (r *Record) LastUpdated() time.Time {
	return r.lastUpdated
}

// Reserve places a hold on qty units.
// Fails with InsufficientStockError when available < qty.
func (r *Record) Reserve(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	if r.Available() < qty {
		return NewInsufficientStockError(r.organizationID, r.literatureID, qty, r.Available())
	}

	r.reserved += qty
	r.touch()
	return nil
}

// Release removes a hold of qty units.
// Fails with OverReleaseError when qty exceeds the current reservation.
func (r *Record) Release(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	if qty > r.reserved {
		return NewOverReleaseError(r.organizationID, r.literatureID, qty, r.reserved)
	}

	r.reserved -= qty
	r.touch()
	return nil
}

// ReleaseClamped removes up to qty units from the reservation, flooring at zero.
// Used when rejecting orders, where releasing more than is held must be a no-op
// rather than a failure.
func (r *Record) ReleaseClamped(qty int) {
	if qty <= 0 {
		return
	}
	if qty > r.reserved {
		qty = r.reserved
	}
	r.reserved -= qty
	r.touch()
}

// Adjust applies a signed delta to the quantity, for corrections and receipts
// with no counterpart order. Fails with NegativeQuantityError when the result
// would be negative, and refuses to drop quantity below the reserved hold.
func (r *Record) Adjust(delta int) error {
	newQuantity := r.quantity + delta
	if newQuantity < 0 {
		return NewNegativeQuantityError(r.organizationID, r.literatureID, delta, r.quantity)
	}
	if newQuantity < r.reserved {
		return NewInsufficientStockError(r.organizationID, r.literatureID, -delta, r.Available())
	}

	r.quantity = newQuantity
	r.touch()
	return nil
}

// ConsumeReserved removes qty units from both quantity and reservation, the
// shipment-completion path: previously reserved stock physically leaves.
func (r *Record) ConsumeReserved(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	if qty > r.reserved {
		return NewOverReleaseError(r.organizationID, r.literatureID, qty, r.reserved)
	}
	if qty > r.quantity {
		return NewInsufficientStockError(r.organizationID, r.literatureID, qty, r.Available())
	}

	r.quantity -= qty
	r.reserved -= qty
	r.touch()
	return nil
}

// Receive adds qty units of incoming stock.
func (r *Record) Receive(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	r.quantity += qty
	r.touch()
	return nil
}

func (r *Record) touch() {
	r.lastUpdated = time.Now().UTC()
}

func validateQuantity(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", qty))
	}
	return nil
}
