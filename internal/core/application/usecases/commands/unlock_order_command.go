package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var ErrUnlockOrderCommandIsNotConstructed = errors.New(
	"UnlockOrderCommand must be created via NewUnlockOrderCommand constructor",
)

// UnlockOrderCommand represents a request to release an order's advisory lock.
// Administrators may release locks they do not hold.
type UnlockOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID
	isAdmin bool

	guard guard.ConstructorGuard
}

// NewUnlockOrderCommand creates a command to unlock an order.
func NewUnlockOrderCommand(orderID, userID kernel.UUID, isAdmin bool) (UnlockOrderCommand, error) {
	cmd := UnlockOrderCommand{
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return UnlockOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnlockOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnlockOrderCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c UnlockOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the ID of the user releasing the lock.
func (c UnlockOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// IsAdmin reports whether the caller may force-release a foreign lock.
func (c UnlockOrderCommand) IsAdmin() bool {
	return c.isAdmin
}

func (c *UnlockOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UnlockOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
