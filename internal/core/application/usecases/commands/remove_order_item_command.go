package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand represents a request to delete a line from an order.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	literatureID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command to delete an order line.
func NewRemoveOrderItemCommand(orderID, literatureID kernel.UUID) (RemoveOrderItemCommand, error) {
	cmd := RemoveOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLiteratureID(literatureID),
	); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c RemoveOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LiteratureID returns the line's catalog item ID.
func (c RemoveOrderItemCommand) LiteratureID() kernel.UUID {
	return c.literatureID
}

func (c *RemoveOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderItemCommand) setLiteratureID(literatureID kernel.UUID) error {
	if err := literatureID.Validate(); err != nil {
		return err
	}

	c.literatureID = literatureID
	return nil
}
