package queries

import (
	"context"

	"litstock/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockQueryHandler scans all stock records for available quantities
// below the threshold.
type GetLowStockQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockQueryHandler creates a handler for low stock queries.
func NewGetLowStockQueryHandler(db *gorm.DB) GetLowStockQueryHandler {
	return GetLowStockQueryHandler{db: db}
}

// Handle executes the query. The worst shortages come first.
func (h GetLowStockQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockQuery,
) ([]GetLowStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shortages := make([]GetLowStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.organization_id,
			o.name,
			r.literature_id,
			l.title,
			r.quantity - r.reserved AS available
		FROM inventory_records r
		JOIN organizations o ON o.id = r.organization_id
		JOIN literatures l ON l.id = r.literature_id
		WHERE r.quantity - r.reserved < ?
		ORDER BY available, o.name, l.title
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetLowStockQueryResponse
		var orgID, litID uuid.UUID

		err = rows.Scan(
			&orgID,
			&row.OrganizationName,
			&litID,
			&row.Title,
			&row.Available,
		)
		if err != nil {
			return nil, err
		}

		organizationID, idErr := kernel.UUIDFromBytes(orgID[:])
		if idErr != nil {
			return nil, idErr
		}
		literatureID, idErr := kernel.UUIDFromBytes(litID[:])
		if idErr != nil {
			return nil, idErr
		}
		row.OrganizationID = organizationID
		row.LiteratureID = literatureID
		shortages = append(shortages, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shortages, nil
}
