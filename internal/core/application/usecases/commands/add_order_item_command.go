package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddOrderItemCommand represents a request to add a literature line to an
// order. The catalog price is snapshotted at handling time.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	literatureID kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an order line.
func NewAddOrderItemCommand(orderID, literatureID kernel.UUID, quantity int) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLiteratureID(literatureID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LiteratureID returns the catalog item's ID.
func (c AddOrderItemCommand) LiteratureID() kernel.UUID {
	return c.literatureID
}

// Quantity returns the requested quantity.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setLiteratureID(literatureID kernel.UUID) error {
	if err := literatureID.Validate(); err != nil {
		return err
	}

	c.literatureID = literatureID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
