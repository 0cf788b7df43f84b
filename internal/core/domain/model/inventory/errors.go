package inventory

import (
	"errors"
	"fmt"

	"litstock/internal/core/domain/model/kernel"
)

// Sentinel errors for stock operations. Callers classify with errors.Is and
// read the offending quantities from the structured types below.
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOverRelease       = errors.New("release exceeds reserved quantity")
	ErrNegativeQuantity  = errors.New("quantity would become negative")
)

// InsufficientStockError reports a reservation or transfer that asked for more
// than the record's available quantity.
type InsufficientStockError struct {
	OrganizationID kernel.UUID
	LiteratureID   kernel.UUID
	Requested      int
	Available      int
}

// NewInsufficientStockError creates an InsufficientStockError.
func NewInsufficientStockError(orgID, literatureID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		OrganizationID: orgID,
		LiteratureID:   literatureID,
		Requested:      requested,
		Available:      available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: requested %d, available %d (organization %s, literature %s)",
		ErrInsufficientStock, e.Requested, e.Available, e.OrganizationID, e.LiteratureID)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// OverReleaseError reports a release of more units than are currently reserved.
type OverReleaseError struct {
	OrganizationID kernel.UUID
	LiteratureID   kernel.UUID
	Requested      int
	Reserved       int
}

// NewOverReleaseError creates an OverReleaseError.
func NewOverReleaseError(orgID, literatureID kernel.UUID, requested, reserved int) *OverReleaseError {
	return &OverReleaseError{
		OrganizationID: orgID,
		LiteratureID:   literatureID,
		Requested:      requested,
		Reserved:       reserved,
	}
}

func (e *OverReleaseError) Error() string {
	return fmt.Sprintf("%s: requested %d, reserved %d (organization %s, literature %s)",
		ErrOverRelease, e.Requested, e.Reserved, e.OrganizationID, e.LiteratureID)
}

func (e *OverReleaseError) Unwrap() error {
	return ErrOverRelease
}

// NegativeQuantityError reports an adjustment whose result would drop below zero.
type NegativeQuantityError struct {
	OrganizationID kernel.UUID
	LiteratureID   kernel.UUID
	Delta          int
	Quantity       int
}

// NewNegativeQuantityError creates a NegativeQuantityError.
func NewNegativeQuantityError(orgID, literatureID kernel.UUID, delta, quantity int) *NegativeQuantityError {
	return &NegativeQuantityError{
		OrganizationID: orgID,
		LiteratureID:   literatureID,
		Delta:          delta,
		Quantity:       quantity,
	}
}

func (e *NegativeQuantityError) Error() string {
	return fmt.Sprintf("%s: delta %d on quantity %d (organization %s, literature %s)",
		ErrNegativeQuantity, e.Delta, e.Quantity, e.OrganizationID, e.LiteratureID)
}

func (e *NegativeQuantityError) Unwrap() error {
	return ErrNegativeQuantity
}
