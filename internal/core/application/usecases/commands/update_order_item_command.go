package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand represents a request to change an order line's
// quantity. The original price snapshot is kept.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	literatureID kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemCommand creates a command to change an order line's quantity.
func NewUpdateOrderItemCommand(orderID, literatureID kernel.UUID, quantity int) (UpdateOrderItemCommand, error) {
	cmd := UpdateOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLiteratureID(literatureID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c UpdateOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LiteratureID returns the line's catalog item ID.
func (c UpdateOrderItemCommand) LiteratureID() kernel.UUID {
	return c.literatureID
}

// Quantity returns the new quantity.
func (c UpdateOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemCommand) setLiteratureID(literatureID kernel.UUID) error {
	if err := literatureID.Validate(); err != nil {
		return err
	}

	c.literatureID = literatureID
	return nil
}

func (c *UpdateOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
