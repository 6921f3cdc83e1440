package commands

import (
	"context"
	"fmt"
	"strings"

	"daybook/internal/application"
	"daybook/internal/domain"
)

// AddShoppingItemCommand adds an item to the shopping list
type AddShoppingItemCommand struct {
	session  *application.Session
	Text     string
	Category string
}

// NewAddShoppingItemCommand creates a new AddShoppingItemCommand
func NewAddShoppingItemCommand(session *application.Session, text, category string) *AddShoppingItemCommand {
	return &AddShoppingItemCommand{session: session, Text: text, Category: category}
}

// Validate checks if the item can be added
func (c *AddShoppingItemCommand) Validate() error {
	return application.ValidateRequired("text", c.Text)
}

// Execute runs the add shopping item command
func (c *AddShoppingItemCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	item := domain.ShoppingItem{
		ID:        c.session.NewID(),
		Text:      strings.TrimSpace(c.Text),
		Category:  strings.TrimSpace(c.Category),
		CreatedAt: c.session.Now(),
	}
	_, err := c.session.Mutate(ctx, "add shopping item", func(data *domain.Aggregate) (bool, error) {
		data.Shopping = append(data.Shopping, item)
		return true, nil
	})

	return &Result{ID: item.ID, Changed: true, Message: fmt.Sprintf("Added to shopping list: %s", item.Text)}, err
}

// EditShoppingItemCommand replaces the text and category of an item
type EditShoppingItemCommand struct {
	session  *application.Session
	ID       string
	Text     string
	Category string
}

// NewEditShoppingItemCommand creates a new EditShoppingItemCommand
func NewEditShoppingItemCommand(session *application.Session, id, text, category string) *EditShoppingItemCommand {
	return &EditShoppingItemCommand{session: session, ID: id, Text: text, Category: category}
}

// Validate checks if the edit is valid
func (c *EditShoppingItemCommand) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	return application.ValidateRequired("text", c.Text)
}

// Execute runs the edit shopping item command
func (c *EditShoppingItemCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "edit shopping item", func(data *domain.Aggregate) (bool, error) {
		i := domain.IndexByID(data.Shopping, c.ID)
		if i < 0 {
			return false, nil
		}
		data.Shopping[i].Text = strings.TrimSpace(c.Text)
		data.Shopping[i].Category = strings.TrimSpace(c.Category)
		return true, nil
	})
	if !changed {
		return unchanged("shopping item", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Updated shopping item"}, err
}

// ToggleShoppingItemCommand marks an item bought or not bought
type ToggleShoppingItemCommand struct {
	session *application.Session
	ID      string
}

// NewToggleShoppingItemCommand creates a new ToggleShoppingItemCommand
func NewToggleShoppingItemCommand(session *application.Session, id string) *ToggleShoppingItemCommand {
	return &ToggleShoppingItemCommand{session: session, ID: id}
}

// Validate checks if the toggle is valid
func (c *ToggleShoppingItemCommand) Validate() error {
	return requireID(c.ID)
}

// Execute runs the toggle shopping item command
func (c *ToggleShoppingItemCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "toggle shopping item", func(data *domain.Aggregate) (bool, error) {
		i := domain.IndexByID(data.Shopping, c.ID)
		if i < 0 {
			return false, nil
		}
		data.Shopping[i].Completed = !data.Shopping[i].Completed
		return true, nil
	})
	if !changed {
		return unchanged("shopping item", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Toggled shopping item"}, err
}

// DeleteShoppingItemCommand removes an item from the shopping list
type DeleteShoppingItemCommand struct {
	session *application.Session
	ID      string
}

// NewDeleteShoppingItemCommand creates a new DeleteShoppingItemCommand
func NewDeleteShoppingItemCommand(session *application.Session, id string) *DeleteShoppingItemCommand {
	return &DeleteShoppingItemCommand{session: session, ID: id}
}

// Validate checks if the delete is valid
func (c *DeleteShoppingItemCommand) Validate() error {
	return requireID(c.ID)
}

// Execute runs the delete shopping item command
func (c *DeleteShoppingItemCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "delete shopping item", func(data *domain.Aggregate) (bool, error) {
		var removed bool
		data.Shopping, removed = domain.RemoveByID(data.Shopping, c.ID)
		return removed, nil
	})
	if !changed {
		return unchanged("shopping item", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Deleted shopping item"}, err
}

// ListShoppingCommand returns the shopping list newest first
type ListShoppingCommand struct {
	session  *application.Session
	Category string
}

// NewListShoppingCommand creates a new ListShoppingCommand
func NewListShoppingCommand(session *application.Session, category string) *ListShoppingCommand {
	return &ListShoppingCommand{session: session, Category: category}
}

// Execute runs the list shopping command
func (c *ListShoppingCommand) Execute(ctx context.Context) ([]domain.ShoppingItem, error) {
	var items []domain.ShoppingItem
	c.session.View(func(data *domain.Aggregate) {
		for _, s := range data.Shopping {
			if domain.MatchesCategory(s.Category, c.Category) {
				items = append(items, s)
			}
		}
	})
	domain.SortByCreated(items, domain.NewestFirst)
	return items, nil
}
