package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new literature order from
// a requesting organization against a fulfilling warehouse organization.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, localityID, regionID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	fromOrganizationID kernel.UUID
	toOrganizationID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates that all identifiers are set and the two organizations differ.
func NewCreateOrderCommand(orderID, fromOrganizationID, toOrganizationID kernel.UUID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrganizations(fromOrganizationID, toOrganizationID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FromOrganizationID returns the requesting organization's ID.
func (c CreateOrderCommand) FromOrganizationID() kernel.UUID {
	return c.fromOrganizationID
}

// ToOrganizationID returns the fulfilling warehouse organization's ID.
func (c CreateOrderCommand) ToOrganizationID() kernel.UUID {
	return c.toOrganizationID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrganizations(fromID, toID kernel.UUID) error {
	if err := fromID.Validate(); err != nil {
		return err
	}
	if err := toID.Validate(); err != nil {
		return err
	}

	c.fromOrganizationID = fromID
	c.toOrganizationID = toID
	return nil
}
