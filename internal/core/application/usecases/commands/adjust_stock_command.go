package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrDeltaIsZero    = errors.New("delta must not be zero")
	ErrReasonRequired = errors.New("reason is required")
)

// AdjustStockCommand represents a manual stock correction: a signed delta
// applied to an organization's quantity with a mandatory reason, recorded as
// an adjustment entry in the ledger.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	literatureID   kernel.UUID
	delta          int
	reason         string

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to correct stock by a signed delta.
func NewAdjustStockCommand(
	organizationID, literatureID kernel.UUID,
	delta int,
	reason string,
) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrganizationID(organizationID),
		cmd.setLiteratureID(literatureID),
		cmd.setDelta(delta),
		cmd.setReason(reason),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// OrganizationID returns the corrected organization's ID.
func (c AdjustStockCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// LiteratureID returns the catalog item's ID.
func (c AdjustStockCommand) LiteratureID() kernel.UUID {
	return c.literatureID
}

// Delta returns the signed quantity change.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}

// Reason returns the operator-supplied explanation for the correction.
func (c AdjustStockCommand) Reason() string {
	return c.reason
}

func (c *AdjustStockCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *AdjustStockCommand) setLiteratureID(literatureID kernel.UUID) error {
	if err := literatureID.Validate(); err != nil {
		return err
	}

	c.literatureID = literatureID
	return nil
}

func (c *AdjustStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}

func (c *AdjustStockCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonRequired
	}

	c.reason = reason
	return nil
}
