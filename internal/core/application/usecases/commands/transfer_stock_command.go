package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var ErrTransferStockCommandIsNotConstructed = errors.New(
	"TransferStockCommand must be created via NewTransferStockCommand constructor",
)

// TransferStockCommand represents a direct stock movement between two
// organizations, optionally tied to an order.
type TransferStockCommand struct { //nolint:recvcheck //using for validation
	fromOrganizationID kernel.UUID
	toOrganizationID   kernel.UUID
	literatureID       kernel.UUID
	quantity           int
	orderID            *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransferStockCommand creates a command to move stock between
// organizations. orderID may be nil for transfers outside the order flow.
func NewTransferStockCommand(
	fromOrganizationID, toOrganizationID, literatureID kernel.UUID,
	quantity int,
	orderID *kernel.UUID,
) (TransferStockCommand, error) {
	cmd := TransferStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrganizations(fromOrganizationID, toOrganizationID),
		cmd.setLiteratureID(literatureID),
		cmd.setQuantity(quantity),
		cmd.setOrderID(orderID),
	); err != nil {
		return TransferStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferStockCommand) Validate() error {
	return c.guard.Validate(ErrTransferStockCommandIsNotConstructed)
}

// FromOrganizationID returns the source organization's ID.
func (c TransferStockCommand) FromOrganizationID() kernel.UUID {
	return c.fromOrganizationID
}

// ToOrganizationID returns the destination organization's ID.
func (c TransferStockCommand) ToOrganizationID() kernel.UUID {
	return c.toOrganizationID
}

// LiteratureID returns the catalog item's ID.
func (c TransferStockCommand) LiteratureID() kernel.UUID {
	return c.literatureID
}

// Quantity returns the amount to move.
func (c TransferStockCommand) Quantity() int {
	return c.quantity
}

// OrderID returns the linked order's ID, or nil.
func (c TransferStockCommand) OrderID() *kernel.UUID {
	return c.orderID
}

func (c *TransferStockCommand) setOrganizations(fromID, toID kernel.UUID) error {
	if err := fromID.Validate(); err != nil {
		return err
	}
	if err := toID.Validate(); err != nil {
		return err
	}
	if fromID.IsEqual(toID) {
		return errors.New("source and destination organization must differ")
	}

	c.fromOrganizationID = fromID
	c.toOrganizationID = toID
	return nil
}

func (c *TransferStockCommand) setLiteratureID(literatureID kernel.UUID) error {
	if err := literatureID.Validate(); err != nil {
		return err
	}

	c.literatureID = literatureID
	return nil
}

func (c *TransferStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *TransferStockCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return err
		}
	}

	c.orderID = orderID
	return nil
}
