package queries

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/errs"
	"litstock/internal/pkg/guard"
)

var ErrGetLowStockQueryIsNotConstructed = errors.New(
	"GetLowStockQuery must be created via NewGetLowStockQuery constructor",
)

// GetLowStockQuery finds stock records whose available quantity has dropped
// below a threshold, across all organizations. Feeds the low stock sweep.
type GetLowStockQuery struct { //nolint:recvcheck //using for validation
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockQuery creates a query for records with available stock below
// the threshold.
func NewGetLowStockQuery(threshold int) (GetLowStockQuery, error) {
	if threshold <= 0 {
		return GetLowStockQuery{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 1, nil)
	}

	return GetLowStockQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockQueryIsNotConstructed)
}

// Threshold returns the available-quantity cutoff.
func (q GetLowStockQuery) Threshold() int {
	return q.threshold
}

// GetLowStockQueryResponse is one under-stocked record.
type GetLowStockQueryResponse struct {
	OrganizationID   kernel.UUID
	OrganizationName string
	LiteratureID     kernel.UUID
	Title            string
	Available        int
}
