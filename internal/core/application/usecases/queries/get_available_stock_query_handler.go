package queries

import (
	"context"

	"litstock/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableStockQueryHandler reads an organization's stock position
// straight from the database, bypassing the aggregates.
type GetAvailableStockQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableStockQueryHandler creates a handler for stock position queries.
func NewGetAvailableStockQueryHandler(db *gorm.DB) GetAvailableStockQueryHandler {
	return GetAvailableStockQueryHandler{db: db}
}

// Handle executes the query. Rows are sorted by title for stable output.
func (h GetAvailableStockQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableStockQuery,
) ([]GetAvailableStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stock := make([]GetAvailableStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.literature_id,
			l.title,
			r.quantity,
			r.reserved,
			r.quantity - r.reserved AS available
		FROM inventory_records r
		JOIN literatures l ON l.id = r.literature_id
		WHERE r.organization_id = ?
		ORDER BY l.title
	`, query.OrganizationID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAvailableStockQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Title,
			&row.Quantity,
			&row.Reserved,
			&row.Available,
		)
		if err != nil {
			return nil, err
		}

		literatureID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.LiteratureID = literatureID
		stock = append(stock, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stock, nil
}
