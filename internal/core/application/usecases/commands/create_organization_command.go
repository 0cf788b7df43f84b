package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/organization"
	"litstock/internal/pkg/guard"
)

var ErrCreateOrganizationCommandIsNotConstructed = errors.New(
	"CreateOrganizationCommand must be created via NewCreateOrganizationCommand constructor",
)

// CreateOrganizationCommand represents a request to add an organization to
// the distribution tree. parentID is nil only for top-level regions.
type CreateOrganizationCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	name           string
	orgType        organization.Type
	parentID       *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrganizationCommand creates a command to register an organization.
func NewCreateOrganizationCommand(
	organizationID kernel.UUID,
	name string,
	orgType organization.Type,
	parentID *kernel.UUID,
) (CreateOrganizationCommand, error) {
	cmd := CreateOrganizationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrganizationID(organizationID),
		cmd.setName(name),
		cmd.setOrgType(orgType),
		cmd.setParentID(parentID),
	); err != nil {
		return CreateOrganizationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrganizationCommandIsNotConstructed)
}

// OrganizationID returns the identifier assigned to the new organization.
func (c CreateOrganizationCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Name returns the organization's display name.
func (c CreateOrganizationCommand) Name() string {
	return c.name
}

// OrgType returns the organization's place in the hierarchy.
func (c CreateOrganizationCommand) OrgType() organization.Type {
	return c.orgType
}

// ParentID returns the parent organization's ID, or nil for a root region.
func (c CreateOrganizationCommand) ParentID() *kernel.UUID {
	return c.parentID
}

func (c *CreateOrganizationCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateOrganizationCommand) setName(name string) error {
	if name == "" {
		return organization.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateOrganizationCommand) setOrgType(orgType organization.Type) error {
	if err := orgType.Validate(); err != nil {
		return err
	}

	c.orgType = orgType
	return nil
}

func (c *CreateOrganizationCommand) setParentID(parentID *kernel.UUID) error {
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return err
		}
	}

	c.parentID = parentID
	return nil
}
