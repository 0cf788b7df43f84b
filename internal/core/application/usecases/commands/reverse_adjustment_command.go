package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var ErrReverseAdjustmentCommandIsNotConstructed = errors.New(
	"ReverseAdjustmentCommand must be created via NewReverseAdjustmentCommand constructor",
)

// ReverseAdjustmentCommand represents a request to undo a manual adjustment.
// The ledger is append-only, so the undo lands as a compensating entry with
// the negated quantity rather than a deletion.
type ReverseAdjustmentCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewReverseAdjustmentCommand creates a command to reverse an adjustment entry.
func NewReverseAdjustmentCommand(entryID kernel.UUID, reason string) (ReverseAdjustmentCommand, error) {
	cmd := ReverseAdjustmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntryID(entryID),
		cmd.setReason(reason),
	); err != nil {
		return ReverseAdjustmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReverseAdjustmentCommand) Validate() error {
	return c.guard.Validate(ErrReverseAdjustmentCommandIsNotConstructed)
}

// EntryID returns the ledger entry to reverse.
func (c ReverseAdjustmentCommand) EntryID() kernel.UUID {
	return c.entryID
}

// Reason returns the operator-supplied explanation for the reversal.
func (c ReverseAdjustmentCommand) Reason() string {
	return c.reason
}

func (c *ReverseAdjustmentCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *ReverseAdjustmentCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonRequired
	}

	c.reason = reason
	return nil
}
