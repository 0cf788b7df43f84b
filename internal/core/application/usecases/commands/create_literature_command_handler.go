package commands

import (
	"context"

	"litstock/internal/core/domain/model/literature"
)

// CreateLiteratureCommandHandler registers an item in the literature catalog.
type CreateLiteratureCommandHandler struct {
	uowFactory LiteratureUoWFactory
}

// NewCreateLiteratureCommandHandler creates a handler for catalog registration.
func NewCreateLiteratureCommandHandler(uowFactory LiteratureUoWFactory) CreateLiteratureCommandHandler {
	return CreateLiteratureCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog creation command.
func (h CreateLiteratureCommandHandler) Handle(ctx context.Context, cmd CreateLiteratureCommand) error {
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

	aggregate, err := literature.NewLiterature(cmd.LiteratureID(), cmd.Title(), cmd.Category(), cmd.Price())
	if err != nil {
		return err
	}

	if err = uow.LiteratureRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
