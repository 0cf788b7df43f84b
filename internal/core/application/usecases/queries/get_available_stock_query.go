// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/guard"
)

var ErrGetAvailableStockQueryIsNotConstructed = errors.New(
	"GetAvailableStockQuery must be created via NewGetAvailableStockQuery constructor",
)

// GetAvailableStockQuery retrieves an organization's stock position: total,
// reserved and available quantity per catalog item.
type GetAvailableStockQuery struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableStockQuery creates a query for one organization's stock.
func NewGetAvailableStockQuery(organizationID kernel.UUID) (GetAvailableStockQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetAvailableStockQuery{}, err
	}

	return GetAvailableStockQuery{
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableStockQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableStockQueryIsNotConstructed)
}

// OrganizationID returns the organization whose stock is requested.
func (q GetAvailableStockQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// GetAvailableStockQueryResponse is one stock row in the read model. Available
// is quantity minus reserved, computed by the store so it is consistent with
// the row the reservation primitives operate on.
type GetAvailableStockQueryResponse struct {
	LiteratureID kernel.UUID
	Title        string
	Quantity     int
	Reserved     int
	Available    int
}
