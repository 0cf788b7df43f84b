// Package stockmovement holds the audit trail entries for stock movements.
// Entries are append-only: they are never mutated or deleted once recorded.
// The only way to undo an unlinked adjustment is to append a compensating
// reversal entry; entries linked to an order can never be undone at all.
package stockmovement

import (
	"errors"
	"fmt"
	"time"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/errs"
	"litstock/internal/pkg/guard"
)

// Kind is the direction of a stock movement.
type Kind int

const (
	// UnknownKind catches uninitialized Kind values.
	UnknownKind Kind = iota

	// Incoming records stock arriving at an organization.
	Incoming

	// Outgoing records stock leaving an organization.
	Outgoing

	// Adjustment records a manual correction with no counterpart order.
	Adjustment
)

// Domain errors for movement entries.
var (
	// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
	// ErrEntryNotReversible is returned when reversing an entry that is not an unlinked adjustment.
	ErrEntryNotReversible = errors.New("only adjustment entries without an order link can be reversed")
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "Unknown",
		Incoming:    "Incoming",
		Outgoing:    "Outgoing",
		Adjustment:  "Adjustment",
	}
}

// Validate checks that the Kind is one of the defined directions.
func (k Kind) Validate() error {
	switch k {
	case Incoming, Outgoing, Adjustment:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"movement kind", fmt.Errorf("%d is not a valid movement kind", k))
	}
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Entry is one immutable audit record of a stock movement. fromOrganizationID
// is nil for receipts with no source (adjustments, external intake); orderID is
// set when the movement was caused by an order's status transition.
//
// quantity is signed for adjustments (a negative correction keeps its sign in
// the trail); order-driven movements always carry positive quantities.
type Entry struct {
	id                 kernel.UUID
	kind               Kind
	fromOrganizationID *kernel.UUID
	toOrganizationID   kernel.UUID
	literatureID       kernel.UUID
	quantity           int
	unitPrice          kernel.Money
	orderID            *kernel.UUID
	notes              string
	createdAt          time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates a movement entry stamped with the current time.
func NewEntry(
	id kernel.UUID,
	kind Kind,
	fromOrganizationID *kernel.UUID,
	toOrganizationID kernel.UUID,
	literatureID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	orderID *kernel.UUID,
	notes string,
) (*Entry, error) {
	return RestoreEntry(id, kind, fromOrganizationID, toOrganizationID, literatureID,
		quantity, unitPrice, orderID, notes, time.Now().UTC())
}

// RestoreEntry reconstructs a movement entry from persistent storage.
func RestoreEntry(
	id kernel.UUID,
	kind Kind,
	fromOrganizationID *kernel.UUID,
	toOrganizationID kernel.UUID,
	literatureID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	orderID *kernel.UUID,
	notes string,
	createdAt time.Time,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if fromOrganizationID != nil {
		if err := fromOrganizationID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := toOrganizationID.Validate(); err != nil {
		return nil, err
	}
	if err := literatureID.Validate(); err != nil {
		return nil, err
	}
	if quantity == 0 {
		return nil, errs.NewValueIsInvalidError("quantity must not be zero")
	}
	if kind != Adjustment && quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is negative for a %s entry", quantity, kind))
	}
	if err := unitPrice.Validate(); err != nil {
		return nil, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Entry{
		id:                 id,
		kind:               kind,
		fromOrganizationID: fromOrganizationID,
		toOrganizationID:   toOrganizationID,
		literatureID:       literatureID,
		quantity:           quantity,
		unitPrice:          unitPrice,
		orderID:            orderID,
		notes:              notes,
		createdAt:          createdAt,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Entry was created via a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Kind returns the movement direction.
func (e *Entry) Kind() Kind {
	return e.kind
}

// FromOrganizationID returns the source organization, or nil when there is none.
func (e *Entry) FromOrganizationID() *kernel.UUID {
	return e.fromOrganizationID
}

// ToOrganizationID returns the organization the movement concerns.
func (e *Entry) ToOrganizationID() kernel.UUID {
	return e.toOrganizationID
}

// LiteratureID returns the moved item's ID.
func (e *Entry) LiteratureID() kernel.UUID {
	return e.literatureID
}

// Quantity returns the moved unit count, signed for adjustments.
func (e *Entry) Quantity() int {
	return e.quantity
}

// UnitPrice returns the item's unit price at movement time.
func (e *Entry) UnitPrice() kernel.Money {
	return e.unitPrice
}

// TotalAmount returns the absolute value-weighted total of the movement.
func (e *Entry) TotalAmount() kernel.Money {
	qty := e.quantity
	if qty < 0 {
		qty = -qty
	}
	return e.unitPrice.MulQuantity(qty)
}

// OrderID returns the causing order, or nil for standalone movements.
func (e *Entry) OrderID() *kernel.UUID {
	return e.orderID
}

// Notes returns the free-form annotation.
func (e *Entry) Notes() string {
	return e.notes
}

// CreatedAt returns the time the movement was recorded.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// Reversal builds the compensating entry that undoes this one: same pair and
// item, negated quantity. Only unlinked adjustments can be reversed; anything
// tied to an order is part of that order's permanent trail.
func (e *Entry) Reversal(id kernel.UUID, notes string) (*Entry, error) {
	if e.kind != Adjustment || e.orderID != nil {
		return nil, ErrEntryNotReversible
	}

	return NewEntry(id, Adjustment, e.fromOrganizationID, e.toOrganizationID,
		e.literatureID, -e.quantity, e.unitPrice, nil, notes)
}
