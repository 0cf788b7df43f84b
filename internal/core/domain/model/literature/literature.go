// Package literature holds the catalog aggregate: the items organizations order
// and stock. Items supply price snapshots to orders and are soft-deleted via the
// active flag so existing orders and movement history stay resolvable.
package literature

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/errs"
	"litstock/internal/pkg/guard"
)

// Domain errors for literature operations.
var (
	// ErrTitleIsRequired is returned when attempting to create an item without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrLiteratureIsNotConstructed is returned when using an improperly initialized Literature.
	ErrLiteratureIsNotConstructed = errors.New("Literature must be created via NewLiterature constructor")
)

// Literature is a catalog item: title, category, unit price and lifecycle flag.
// The price read here is snapshot onto order items at add-time; changing it later
// never touches existing orders.
type Literature struct {
	id       kernel.UUID
	title    string
	category string
	price    kernel.Money
	isActive bool

	guard guard.ConstructorGuard
}

// NewLiterature creates an active catalog item with validated parameters.
// Category may be empty; price must be non-negative (enforced by kernel.Money).
func NewLiterature(id kernel.UUID, title, category string, price kernel.Money) (*Literature, error) {
	item := &Literature{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}
	item.category = category

	return item, nil
}

// RestoreLiterature reconstructs a catalog item from persistent storage.
func RestoreLiterature(
	id kernel.UUID,
	title, category string,
	price kernel.Money,
	isActive bool,
) (*Literature, error) {
	item := &Literature{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}
	item.category = category

	return item, nil
}

// Validate checks that the Literature was created via a constructor.
func (l *Literature) Validate() error {
	if l == nil {
		return ErrLiteratureIsNotConstructed
	}
	return l.guard.Validate(ErrLiteratureIsNotConstructed)
}

// IsEqual compares two items by identifier.
func (l *Literature) IsEqual(other *Literature) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (l *Literature) ID() kernel.UUID {
	return l.id
}

// Title returns the item's title.
func (l *Literature) Title() string {
	return l.title
}

// Category returns the item's category, possibly empty.
func (l *Literature) Category() string {
	return l.category
}

// Price returns the current unit price.
func (l *Literature) Price() kernel.Money {
	return l.price
}

// IsActive reports whether the item can be added to new orders.
func (l *Literature) IsActive() bool {
	return l.isActive
}

// ChangePrice updates the unit price. Existing order items keep their snapshots.
func (l *Literature) ChangePrice(price kernel.Money) error {
	return l.setPrice(price)
}

// Deactivate flags the item inactive, removing it from new-order eligibility.
func (l *Literature) Deactivate() {
	l.isActive = false
}

// Activate flags the item active again.
func (l *Literature) Activate() {
	l.isActive = true
}

func (l *Literature) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Literature) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	l.title = title
	return nil
}

func (l *Literature) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.price = price
	return nil
}
