package order

import (
	"errors"
	"fmt"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/errs"
	"litstock/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line: a literature item, a positive quantity and the unit
// price snapshot taken from the catalog when the line was added. The line total
// is always quantity times the snapshot price; later catalog price changes do
// not reach existing lines.
type Item struct {
	literatureID kernel.UUID
	quantity     int
	unitPrice    kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line with a validated quantity and price snapshot.
func NewItem(literatureID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setLiteratureID(literatureID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistent storage.
func RestoreItem(literatureID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	return NewItem(literatureID, quantity, unitPrice)
}

// Validate checks that the Item was created via a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// LiteratureID returns the catalog item this line references.
func (i *Item) LiteratureID() kernel.UUID {
	return i.literatureID
}

// Quantity returns the ordered unit count.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken when the line was added.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns quantity times the snapshot unit price.
func (i *Item) TotalPrice() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

// changeQuantity updates the unit count, keeping the price snapshot.
// Only the owning Order calls this, after its own editability checks.
func (i *Item) changeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

func (i *Item) setLiteratureID(literatureID kernel.UUID) error {
	if err := literatureID.Validate(); err != nil {
		return err
	}
	i.literatureID = literatureID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
