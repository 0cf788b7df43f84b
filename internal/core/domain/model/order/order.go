package order

import (
	"errors"
	"fmt"
	"time"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/errs"
	"litstock/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderIsLocked is the sentinel for operations refused because an edit lock is held.
	ErrOrderIsLocked = errors.New("order is locked")
	// ErrOrderNotLockable is returned when locking an order whose status does not allow it.
	ErrOrderNotLockable = errors.New("order cannot be locked in its current status")
	// ErrNotLockOwner is returned when unlocking without holding the lock or admin rights.
	ErrNotLockOwner = errors.New("only the lock holder or an administrator can unlock")
	// ErrOrderNotEditable is returned for item mutations outside Draft and Pending.
	ErrOrderNotEditable = errors.New("order items can only be changed in Draft or Pending status")
	// ErrOrderNotDeletable is returned when deleting an order that is not an unlocked draft.
	ErrOrderNotDeletable = errors.New("only unlocked draft orders can be deleted")
	// ErrDuplicateItem is the sentinel for adding a literature item already on the order.
	ErrDuplicateItem = errors.New("literature item is already on the order")
	// ErrSameOrganization is returned when an order references one organization on both sides.
	ErrSameOrganization = errors.New("ordering and fulfilling organization must differ")
	// ErrStatusConflict is returned when a concurrent transaction changed the
	// order's status before a guarded save could land.
	ErrStatusConflict = errors.New("order status changed concurrently")
)

// DuplicateItemError reports an AddItem for a literature item already present.
type DuplicateItemError struct {
	LiteratureID kernel.UUID
}

// NewDuplicateItemError creates a DuplicateItemError.
func NewDuplicateItemError(literatureID kernel.UUID) *DuplicateItemError {
	return &DuplicateItemError{LiteratureID: literatureID}
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateItem, e.LiteratureID)
}

func (e *DuplicateItemError) Unwrap() error {
	return ErrDuplicateItem
}

// OrderLockedError reports an operation refused because an edit lock is held,
// carrying the holder so callers can render a useful message.
type OrderLockedError struct {
	LockedBy kernel.UUID
	LockedAt time.Time
}

// NewOrderLockedError creates an OrderLockedError.
func NewOrderLockedError(lockedBy kernel.UUID, lockedAt time.Time) *OrderLockedError {
	return &OrderLockedError{LockedBy: lockedBy, LockedAt: lockedAt}
}

func (e *OrderLockedError) Error() string {
	return fmt.Sprintf("%s: held by %s since %s", ErrOrderIsLocked, e.LockedBy, e.LockedAt.Format(time.RFC3339))
}

func (e *OrderLockedError) Unwrap() error {
	return ErrOrderIsLocked
}

// Order is the aggregate root for a literature order between two organizations.
// fromOrganization is the requester; toOrganization is the warehouse that
// fulfills the order (stock is reserved and shipped from there).
//
// Invariants:
//   - totalAmount equals the sum of the items' line totals after every mutation
//   - at most one line per literature item
//   - item mutations only in Draft or Pending and only while unlocked
//   - status changes follow the transition table; a held lock blocks every
//     transition except the one to Rejected
type Order struct {
	id                 kernel.UUID
	number             Number
	fromOrganizationID kernel.UUID
	toOrganizationID   kernel.UUID
	status             Status
	totalAmount        kernel.Money
	lockedAt           *time.Time
	lockedBy           *kernel.UUID
	items              []*Item

	guard guard.ConstructorGuard
}

// NewOrder creates an empty Draft order. Items are added through AddItem so the
// duplicate and quantity rules apply from the start.
func NewOrder(id kernel.UUID, number Number, fromOrganizationID, toOrganizationID kernel.UUID) (*Order, error) {
	o := &Order{
		status:      Draft,
		totalAmount: kernel.ZeroMoney(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setOrganizations(fromOrganizationID, toOrganizationID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// status, lock state and lines. The total is recomputed from the lines rather
// than trusted from the row.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	fromOrganizationID, toOrganizationID kernel.UUID,
	status Status,
	lockedAt *time.Time,
	lockedBy *kernel.UUID,
	items []*Item,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setOrganizations(fromOrganizationID, toOrganizationID),
		o.setStatus(status),
		o.setLock(lockedAt, lockedBy),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks that the Order was created via a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() Number {
	return o.number
}

// FromOrganizationID returns the requesting organization's ID.
func (o *Order) FromOrganizationID() kernel.UUID {
	return o.fromOrganizationID
}

// ToOrganizationID returns the fulfilling warehouse organization's ID.
func (o *Order) ToOrganizationID() kernel.UUID {
	return o.toOrganizationID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of the lines' totals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Items returns a copy of the order lines.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// Item returns the line for a literature item, or nil when absent.
func (o *Order) Item(literatureID kernel.UUID) *Item {
	for _, item := range o.items {
		if item.LiteratureID().IsEqual(literatureID) {
			return item
		}
	}
	return nil
}

// IsLocked reports whether an advisory edit lock is held.
func (o *Order) IsLocked() bool {
	return o.lockedAt != nil
}

// LockedBy returns the lock holder's user ID, or nil when unlocked.
func (o *Order) LockedBy() *kernel.UUID {
	return o.lockedBy
}

// LockedAt returns the lock acquisition time, or nil when unlocked.
func (o *Order) LockedAt() *time.Time {
	return o.lockedAt
}

// AddItem appends a line with the given quantity and catalog price snapshot.
// Refused while locked, outside Draft/Pending, or when the item is already on
// the order. Recomputes the total.
func (o *Order) AddItem(literatureID kernel.UUID, quantity int, unitPrice kernel.Money) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	if o.Item(literatureID) != nil {
		return NewDuplicateItemError(literatureID)
	}

	item, err := NewItem(literatureID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recalcTotal()
	return nil
}

// UpdateItem changes an existing line's quantity; the price snapshot is kept.
// Refused under the same conditions as AddItem.
func (o *Order) UpdateItem(literatureID kernel.UUID, quantity int) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	item := o.Item(literatureID)
	if item == nil {
		return errs.NewObjectNotFoundError("literatureId", literatureID.String())
	}
	if err := item.changeQuantity(quantity); err != nil {
		return err
	}

	o.recalcTotal()
	return nil
}

// RemoveItem deletes a line. Refused under the same conditions as AddItem.
func (o *Order) RemoveItem(literatureID kernel.UUID) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.LiteratureID().IsEqual(literatureID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.recalcTotal()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("literatureId", literatureID.String())
}

// ChangeStatus moves the order along the transition table. While a lock is
// held, only the transition to Rejected is allowed.
func (o *Order) ChangeStatus(to Status) error {
	if o.IsLocked() && to != Rejected {
		return NewOrderLockedError(*o.lockedBy, *o.lockedAt)
	}

	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Lock takes the advisory edit lock for a user. Fails when the status is not
// lockable (only Draft, Pending and Approved are) or when a lock is held.
func (o *Order) Lock(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if !o.status.IsLockable() {
		return fmt.Errorf("%w: status is %s", ErrOrderNotLockable, o.status)
	}
	if o.IsLocked() {
		return NewOrderLockedError(*o.lockedBy, *o.lockedAt)
	}

	now := time.Now().UTC()
	o.lockedAt = &now
	o.lockedBy = &userID
	return nil
}

// Unlock releases the advisory lock. Only the holder or an administrator may
// unlock; unlocking an unlocked order is a no-op.
func (o *Order) Unlock(userID kernel.UUID, isAdmin bool) error {
	if !o.IsLocked() {
		return nil
	}
	if !isAdmin && !o.lockedBy.IsEqual(userID) {
		return ErrNotLockOwner
	}

	o.lockedAt = nil
	o.lockedBy = nil
	return nil
}

// EnsureDeletable returns nil only for unlocked draft orders, the single case
// where physical deletion is allowed.
func (o *Order) EnsureDeletable() error {
	if o.status != Draft {
		return fmt.Errorf("%w: status is %s", ErrOrderNotDeletable, o.status)
	}
	if o.IsLocked() {
		return NewOrderLockedError(*o.lockedBy, *o.lockedAt)
	}
	return nil
}

func (o *Order) ensureEditable() error {
	if o.IsLocked() {
		return NewOrderLockedError(*o.lockedBy, *o.lockedAt)
	}
	if !o.status.IsEditable() {
		return fmt.Errorf("%w: status is %s", ErrOrderNotEditable, o.status)
	}
	return nil
}

func (o *Order) recalcTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	o.totalAmount = total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setOrganizations(fromID, toID kernel.UUID) error {
	if err := fromID.Validate(); err != nil {
		return err
	}
	if err := toID.Validate(); err != nil {
		return err
	}
	if fromID.IsEqual(toID) {
		return ErrSameOrganization
	}
	o.fromOrganizationID = fromID
	o.toOrganizationID = toID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLock(lockedAt *time.Time, lockedBy *kernel.UUID) error {
	if (lockedAt == nil) != (lockedBy == nil) {
		return errs.NewValueIsInvalidError("lockedAt and lockedBy must be set together")
	}
	if lockedBy != nil {
		if err := lockedBy.Validate(); err != nil {
			return err
		}
	}
	o.lockedAt = lockedAt
	o.lockedBy = lockedBy
	return nil
}

func (o *Order) setItems(items []*Item) error {
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		key := item.LiteratureID()
		if _, dup := seen[key]; dup {
			return NewDuplicateItemError(key)
		}
		seen[key] = struct{}{}
	}

	o.items = items
	o.recalcTotal()
	return nil
}
