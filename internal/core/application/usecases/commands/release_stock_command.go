package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var ErrReleaseStockCommandIsNotConstructed = errors.New(
	"ReleaseStockCommand must be created via NewReleaseStockCommand constructor",
)

// ReleaseStockCommand represents a direct request to return held stock to the
// available pool.
type ReleaseStockCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	literatureID   kernel.UUID
	quantity       int

	guard guard.ConstructorGuard
}

// NewReleaseStockCommand creates a command to release a reservation.
func NewReleaseStockCommand(organizationID, literatureID kernel.UUID, quantity int) (ReleaseStockCommand, error) {
	cmd := ReleaseStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrganizationID(organizationID),
		cmd.setLiteratureID(literatureID),
		cmd.setQuantity(quantity),
	); err != nil {
		return ReleaseStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseStockCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStockCommandIsNotConstructed)
}

// OrganizationID returns the holding organization's ID.
func (c ReleaseStockCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// LiteratureID returns the catalog item's ID.
func (c ReleaseStockCommand) LiteratureID() kernel.UUID {
	return c.literatureID
}

// Quantity returns the amount to release.
func (c ReleaseStockCommand) Quantity() int {
	return c.quantity
}

func (c *ReleaseStockCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *ReleaseStockCommand) setLiteratureID(literatureID kernel.UUID) error {
	if err := literatureID.Validate(); err != nil {
		return err
	}

	c.literatureID = literatureID
	return nil
}

func (c *ReleaseStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
