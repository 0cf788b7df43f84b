package queries

import (
	"context"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/stockmovement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStockMovementsQueryHandler reads ledger entries from the database with
// the query's filters applied.
type GetStockMovementsQueryHandler struct {
	db *gorm.DB
}

// NewGetStockMovementsQueryHandler creates a handler for ledger queries.
func NewGetStockMovementsQueryHandler(db *gorm.DB) GetStockMovementsQueryHandler {
	return GetStockMovementsQueryHandler{db: db}
}

// Handle executes the query. Entries come back newest first.
func (h GetStockMovementsQueryHandler) Handle(
	ctx context.Context,
	query GetStockMovementsQuery,
) ([]GetStockMovementsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			kind,
			from_organization_id,
			to_organization_id,
			literature_id,
			quantity,
			unit_price,
			order_id,
			notes,
			created_at
		FROM stock_movements
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if query.OrderID() != nil {
		sql += " AND order_id = ?"
		args = append(args, query.OrderID().Bytes())
	}
	if query.OrganizationID() != nil {
		sql += " AND (from_organization_id = ? OR to_organization_id = ?)"
		args = append(args, query.OrganizationID().Bytes(), query.OrganizationID().Bytes())
	}
	if query.LiteratureID() != nil {
		sql += " AND literature_id = ?"
		args = append(args, query.LiteratureID().Bytes())
	}
	sql += " ORDER BY created_at DESC"

	movements := make([]GetStockMovementsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetStockMovementsQueryResponse
		var id, toOrgID, litID uuid.UUID
		var fromOrgID, orderID *uuid.UUID
		var kind int
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&id,
			&kind,
			&fromOrgID,
			&toOrgID,
			&litID,
			&row.Quantity,
			&unitPrice,
			&orderID,
			&row.Notes,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.ToOrganizationID, err = kernel.UUIDFromBytes(toOrgID[:]); err != nil {
			return nil, err
		}
		if row.LiteratureID, err = kernel.UUIDFromBytes(litID[:]); err != nil {
			return nil, err
		}
		if fromOrgID != nil {
			from, idErr := kernel.UUIDFromBytes(fromOrgID[:])
			if idErr != nil {
				return nil, idErr
			}
			row.FromOrganizationID = &from
		}
		if orderID != nil {
			linked, idErr := kernel.UUIDFromBytes(orderID[:])
			if idErr != nil {
				return nil, idErr
			}
			row.OrderID = &linked
		}

		row.Kind = stockmovement.Kind(kind)
		if err = row.Kind.Validate(); err != nil {
			return nil, err
		}
		if row.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}

		qty := row.Quantity
		if qty < 0 {
			qty = -qty
		}
		row.TotalAmount = row.UnitPrice.MulQuantity(qty)

		movements = append(movements, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}
