package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var ErrReserveStockCommandIsNotConstructed = errors.New(
	"ReserveStockCommand must be created via NewReserveStockCommand constructor",
)

// ReserveStockCommand represents a direct request to put a hold on stock at
// an organization, outside the order flow.
type ReserveStockCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	literatureID   kernel.UUID
	quantity       int

	guard guard.ConstructorGuard
}

// NewReserveStockCommand creates a command to reserve stock.
func NewReserveStockCommand(organizationID, literatureID kernel.UUID, quantity int) (ReserveStockCommand, error) {
	cmd := ReserveStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrganizationID(organizationID),
		cmd.setLiteratureID(literatureID),
		cmd.setQuantity(quantity),
	); err != nil {
		return ReserveStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveStockCommand) Validate() error {
	return c.guard.Validate(ErrReserveStockCommandIsNotConstructed)
}

// OrganizationID returns the holding organization's ID.
func (c ReserveStockCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// LiteratureID returns the catalog item's ID.
func (c ReserveStockCommand) LiteratureID() kernel.UUID {
	return c.literatureID
}

// Quantity returns the amount to reserve.
func (c ReserveStockCommand) Quantity() int {
	return c.quantity
}

func (c *ReserveStockCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *ReserveStockCommand) setLiteratureID(literatureID kernel.UUID) error {
	if err := literatureID.Validate(); err != nil {
		return err
	}

	c.literatureID = literatureID
	return nil
}

func (c *ReserveStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
