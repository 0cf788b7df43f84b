package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var ErrLockOrderCommandIsNotConstructed = errors.New(
	"LockOrderCommand must be created via NewLockOrderCommand constructor",
)

// LockOrderCommand represents a request to take the advisory edit lock on an
// order for a user.
type LockOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewLockOrderCommand creates a command to lock an order.
func NewLockOrderCommand(orderID, userID kernel.UUID) (LockOrderCommand, error) {
	cmd := LockOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return LockOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LockOrderCommand) Validate() error {
	return c.guard.Validate(ErrLockOrderCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c LockOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the prospective lock holder's ID.
func (c LockOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *LockOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *LockOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
