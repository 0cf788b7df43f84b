package commands

import (
	"errors"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/literature"
	"litstock/internal/pkg/guard"
)

var (
	ErrCreateLiteratureCommandIsNotConstructed = errors.New(
		"CreateLiteratureCommand must be created via NewCreateLiteratureCommand constructor",
	)
	ErrCategoryIsRequired = errors.New("category is required")
)

// CreateLiteratureCommand represents a request to add an item to the
// literature catalog.
type CreateLiteratureCommand struct { //nolint:recvcheck //using for validation
	literatureID kernel.UUID
	title        string
	category     string
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateLiteratureCommand creates a command to register a catalog item.
func NewCreateLiteratureCommand(
	literatureID kernel.UUID,
	title, category string,
	price kernel.Money,
) (CreateLiteratureCommand, error) {
	cmd := CreateLiteratureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLiteratureID(literatureID),
		cmd.setTitle(title),
		cmd.setCategory(category),
		cmd.setPrice(price),
	); err != nil {
		return CreateLiteratureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLiteratureCommand) Validate() error {
	return c.guard.Validate(ErrCreateLiteratureCommandIsNotConstructed)
}

// LiteratureID returns the identifier assigned to the new catalog item.
func (c CreateLiteratureCommand) LiteratureID() kernel.UUID {
	return c.literatureID
}

// Title returns the item's title.
func (c CreateLiteratureCommand) Title() string {
	return c.title
}

// Category returns the item's catalog category.
func (c CreateLiteratureCommand) Category() string {
	return c.category
}

// Price returns the item's unit price.
func (c CreateLiteratureCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateLiteratureCommand) setLiteratureID(literatureID kernel.UUID) error {
	if err := literatureID.Validate(); err != nil {
		return err
	}

	c.literatureID = literatureID
	return nil
}

func (c *CreateLiteratureCommand) setTitle(title string) error {
	if title == "" {
		return literature.ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateLiteratureCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}

func (c *CreateLiteratureCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
