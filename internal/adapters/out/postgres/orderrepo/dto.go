// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders and their lines live in two tables joined by the
// order ID; the aggregate is always loaded and saved as a whole.
package orderrepo

import (
	"time"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for order aggregates.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number             string          `gorm:"uniqueIndex;not null"`
	FromOrganizationID uuid.UUID       `gorm:"type:uuid;index"`
	ToOrganizationID   uuid.UUID       `gorm:"type:uuid;index"`
	Status             int             `gorm:"index"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	LockedAt           *time.Time
	LockedBy           *uuid.UUID     `gorm:"type:uuid"`
	Items              []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. An order carries at most one line
// per catalog item, enforced by the composite primary key.
type OrderItemDTO struct {
	OrderID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LiteratureID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var lockedBy *uuid.UUID
	if id := aggregate.LockedBy(); id != nil {
		raw := id.Bytes()
		lockedBy = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:      aggregate.ID().Bytes(),
			LiteratureID: item.LiteratureID().Bytes(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		Number:             aggregate.Number().String(),
		FromOrganizationID: aggregate.FromOrganizationID().Bytes(),
		ToOrganizationID:   aggregate.ToOrganizationID().Bytes(),
		Status:             int(aggregate.Status()),
		TotalAmount:        aggregate.TotalAmount().Amount(),
		LockedAt:           aggregate.LockedAt(),
		LockedBy:           lockedBy,
		Items:              items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NewNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	fromOrgID, err := kernel.UUIDFromBytes(dto.FromOrganizationID[:])
	if err != nil {
		return nil, err
	}

	toOrgID, err := kernel.UUIDFromBytes(dto.ToOrganizationID[:])
	if err != nil {
		return nil, err
	}

	var lockedBy *kernel.UUID
	if dto.LockedBy != nil {
		lID, lockErr := kernel.UUIDFromBytes((*dto.LockedBy)[:])
		if lockErr != nil {
			return nil, lockErr
		}
		lockedBy = &lID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		litID, itemErr := kernel.UUIDFromBytes(itemDTO.LiteratureID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.RestoreItem(litID, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, number, fromOrgID, toOrgID,
		order.Status(dto.Status), dto.LockedAt, lockedBy, items)
}
