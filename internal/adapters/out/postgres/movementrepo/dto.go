// Package movementrepo persists the append-only stock movement ledger.
package movementrepo

import (
	"time"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/stockmovement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementDTO represents the database structure for ledger entries. Rows are
// inserted once and never updated or deleted.
type MovementDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind               int        `gorm:"index"`
	FromOrganizationID *uuid.UUID `gorm:"type:uuid;index"`
	ToOrganizationID   uuid.UUID  `gorm:"type:uuid;index"`
	LiteratureID       uuid.UUID  `gorm:"type:uuid;index"`
	Quantity           int
	UnitPrice          decimal.Decimal `gorm:"type:numeric(12,2)"`
	OrderID            *uuid.UUID      `gorm:"type:uuid;index"`
	Notes              string
	CreatedAt          time.Time `gorm:"index"`
}

// TableName specifies the database table name for ledger entries.
func (MovementDTO) TableName() string {
	return "stock_movements"
}

func fromDomain(entry *stockmovement.Entry) MovementDTO {
	var fromOrgID, orderID *uuid.UUID
	if id := entry.FromOrganizationID(); id != nil {
		raw := id.Bytes()
		fromOrgID = &raw
	}
	if id := entry.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return MovementDTO{
		ID:                 entry.ID().Bytes(),
		Kind:               int(entry.Kind()),
		FromOrganizationID: fromOrgID,
		ToOrganizationID:   entry.ToOrganizationID().Bytes(),
		LiteratureID:       entry.LiteratureID().Bytes(),
		Quantity:           entry.Quantity(),
		UnitPrice:          entry.UnitPrice().Amount(),
		OrderID:            orderID,
		Notes:              entry.Notes(),
		CreatedAt:          entry.CreatedAt(),
	}
}

func toDomain(dto MovementDTO) (*stockmovement.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	toOrgID, err := kernel.UUIDFromBytes(dto.ToOrganizationID[:])
	if err != nil {
		return nil, err
	}

	litID, err := kernel.UUIDFromBytes(dto.LiteratureID[:])
	if err != nil {
		return nil, err
	}

	var fromOrgID, orderID *kernel.UUID
	if dto.FromOrganizationID != nil {
		fID, fromErr := kernel.UUIDFromBytes((*dto.FromOrganizationID)[:])
		if fromErr != nil {
			return nil, fromErr
		}
		fromOrgID = &fID
	}
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return stockmovement.RestoreEntry(id, stockmovement.Kind(dto.Kind), fromOrgID, toOrgID,
		litID, dto.Quantity, unitPrice, orderID, dto.Notes, dto.CreatedAt)
}
