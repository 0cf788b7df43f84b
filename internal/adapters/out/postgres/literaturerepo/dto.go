// Package literaturerepo provides data transfer objects and mapping functions
// for literature catalog persistence.
package literaturerepo

import (
	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/literature"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LiteratureDTO represents the database structure for catalog items.
type LiteratureDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title    string          `gorm:"not null"`
	Category string          `gorm:"index"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsActive bool
}

// TableName specifies the database table name for catalog entities.
func (LiteratureDTO) TableName() string {
	return "literatures"
}

func fromDomain(aggregate *literature.Literature) LiteratureDTO {
	return LiteratureDTO{
		ID:       aggregate.ID().Bytes(),
		Title:    aggregate.Title(),
		Category: aggregate.Category(),
		Price:    aggregate.Price().Amount(),
		IsActive: aggregate.IsActive(),
	}
}

func toDomain(dto LiteratureDTO) (*literature.Literature, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return literature.RestoreLiterature(id, dto.Title, dto.Category, price, dto.IsActive)
}
