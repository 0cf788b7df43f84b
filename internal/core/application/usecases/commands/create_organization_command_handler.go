package commands

import (
	"context"

	"litstock/internal/core/domain/model/organization"
	"litstock/internal/core/domain/services"
)

// CreateOrganizationCommandHandler registers an organization in the
// distribution tree, checking the placement rules against the parent. Only
// regions may be created without a parent.
type CreateOrganizationCommandHandler struct {
	uowFactory OrganizationUoWFactory
}

// NewCreateOrganizationCommandHandler creates a handler for organization registration.
func NewCreateOrganizationCommandHandler(uowFactory OrganizationUoWFactory) CreateOrganizationCommandHandler {
	return CreateOrganizationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the organization creation command.
func (h CreateOrganizationCommandHandler) Handle(ctx context.Context, cmd CreateOrganizationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orgRepo := uow.OrganizationRepository()

	if cmd.ParentID() == nil {
		if cmd.OrgType() != organization.Region {
			return organization.NewInvalidHierarchyError("placement", cmd.OrgType(), organization.UnknownType)
		}
	} else {
		parent, err := orgRepo.Get(ctx, *cmd.ParentID())
		if err != nil {
			return err
		}
		if err = services.NewHierarchyPolicy().CanBeChildOf(cmd.OrgType(), parent); err != nil {
			return err
		}
	}

	aggregate, err := organization.NewOrganization(cmd.OrganizationID(), cmd.Name(), cmd.OrgType(), cmd.ParentID())
	if err != nil {
		return err
	}

	if err = orgRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
