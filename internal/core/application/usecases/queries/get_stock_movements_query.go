package queries

import (
	"errors"
	"time"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/stockmovement"
	"litstock/internal/pkg/guard"
)

var (
	ErrGetStockMovementsQueryIsNotConstructed = errors.New(
		"GetStockMovementsQuery must be created via NewGetStockMovementsQuery constructor",
	)
	ErrNoMovementFilter = errors.New("at least one filter is required")
)

// GetStockMovementsQuery retrieves ledger entries filtered by order,
// organization or catalog item. At least one filter must be set; an unbounded
// ledger scan is not a supported read.
type GetStockMovementsQuery struct { //nolint:recvcheck //using for validation
	orderID        *kernel.UUID
	organizationID *kernel.UUID
	literatureID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockMovementsQuery creates a ledger query. Each filter may be nil,
// but not all of them.
func NewGetStockMovementsQuery(orderID, organizationID, literatureID *kernel.UUID) (GetStockMovementsQuery, error) {
	if orderID == nil && organizationID == nil && literatureID == nil {
		return GetStockMovementsQuery{}, ErrNoMovementFilter
	}

	q := GetStockMovementsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setOrganizationID(organizationID),
		q.setLiteratureID(literatureID),
	); err != nil {
		return GetStockMovementsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockMovementsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockMovementsQueryIsNotConstructed)
}

// OrderID returns the order filter, or nil.
func (q GetStockMovementsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// OrganizationID returns the organization filter, or nil. Matches entries on
// either side of the movement.
func (q GetStockMovementsQuery) OrganizationID() *kernel.UUID {
	return q.organizationID
}

// LiteratureID returns the catalog item filter, or nil.
func (q GetStockMovementsQuery) LiteratureID() *kernel.UUID {
	return q.literatureID
}

func (q *GetStockMovementsQuery) setOrderID(orderID *kernel.UUID) error {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return err
		}
	}

	q.orderID = orderID
	return nil
}

func (q *GetStockMovementsQuery) setOrganizationID(organizationID *kernel.UUID) error {
	if organizationID != nil {
		if err := organizationID.Validate(); err != nil {
			return err
		}
	}

	q.organizationID = organizationID
	return nil
}

func (q *GetStockMovementsQuery) setLiteratureID(literatureID *kernel.UUID) error {
	if literatureID != nil {
		if err := literatureID.Validate(); err != nil {
			return err
		}
	}

	q.literatureID = literatureID
	return nil
}

// GetStockMovementsQueryResponse is one ledger entry in the read model.
type GetStockMovementsQueryResponse struct {
	ID                 kernel.UUID
	Kind               stockmovement.Kind
	FromOrganizationID *kernel.UUID
	ToOrganizationID   kernel.UUID
	LiteratureID       kernel.UUID
	Quantity           int
	UnitPrice          kernel.Money
	TotalAmount        kernel.Money
	OrderID            *kernel.UUID
	Notes              string
	CreatedAt          time.Time
}
