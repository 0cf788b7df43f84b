// Package orgrepo provides data transfer objects and mapping functions for
// organization persistence. It implements the repository pattern for the
// organization aggregate, converting between domain entities and database rows.
package orgrepo

import (
	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/organization"

	"github.com/google/uuid"
)

// OrganizationDTO represents the database structure for organization aggregates.
type OrganizationDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name     string     `gorm:"not null"`
	OrgType  int        `gorm:"index"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	IsActive bool
}

// TableName specifies the database table name for organization entities.
func (OrganizationDTO) TableName() string {
	return "organizations"
}

func fromDomain(aggregate *organization.Organization) OrganizationDTO {
	var parentID *uuid.UUID
	if id := aggregate.ParentID(); id != nil {
		raw := id.Bytes()
		parentID = &raw
	}

	return OrganizationDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		OrgType:  int(aggregate.OrgType()),
		ParentID: parentID,
		IsActive: aggregate.IsActive(),
	}
}

func toDomain(dto OrganizationDTO) (*organization.Organization, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &pID
	}

	return organization.RestoreOrganization(id, dto.Name, organization.Type(dto.OrgType), parentID, dto.IsActive)
}
