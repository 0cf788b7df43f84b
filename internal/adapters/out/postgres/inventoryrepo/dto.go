// Package inventoryrepo persists per-organization stock records. Each mutation
// primitive is a single statement, a conditional UPDATE or an upsert, so the
// invariant check and the write land together and concurrent callers are
// serialized by the database's row lock. Record creation goes through
// INSERT ON CONFLICT, which keeps first touches for the same pair race-free.
package inventoryrepo

import (
	"time"

	"litstock/internal/core/domain/model/inventory"
	"litstock/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InventoryRecordDTO represents the database structure for stock records.
// The pair (organization, literature) is the primary key; quantities live in
// plain integer columns so the conditional updates stay single statements.
type InventoryRecordDTO struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	LiteratureID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity       int       `gorm:"not null;default:0"`
	Reserved       int       `gorm:"not null;default:0"`
	LastUpdated    time.Time
}

// TableName specifies the database table name for stock records.
func (InventoryRecordDTO) TableName() string {
	return "inventory_records"
}

func toDomain(dto InventoryRecordDTO) (*inventory.Record, error) {
	orgID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	litID, err := kernel.UUIDFromBytes(dto.LiteratureID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreRecord(orgID, litID, dto.Quantity, dto.Reserved, dto.LastUpdated)
}
