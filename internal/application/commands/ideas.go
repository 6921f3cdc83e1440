package commands

import (
	"context"
	"fmt"
	"strings"

	"daybook/internal/application"
	"daybook/internal/domain"
)

// AddIdeaCommand records an idea
type AddIdeaCommand struct {
	session  *application.Session
	Title    string
	Text     string
	Category string
}

// NewAddIdeaCommand creates a new AddIdeaCommand
func NewAddIdeaCommand(session *application.Session, title, text, category string) *AddIdeaCommand {
	return &AddIdeaCommand{session: session, Title: title, Text: text, Category: category}
}

// Validate checks if the idea can be recorded
func (c *AddIdeaCommand) Validate() error {
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	return application.ValidateRequired("text", c.Text)
}

// Execute runs the add idea command
func (c *AddIdeaCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	idea := domain.Idea{
		ID:        c.session.NewID(),
		Title:     strings.TrimSpace(c.Title),
		Text:      strings.TrimSpace(c.Text),
		Category:  strings.TrimSpace(c.Category),
		CreatedAt: c.session.Now(),
	}
	_, err := c.session.Mutate(ctx, "add idea", func(data *domain.Aggregate) (bool, error) {
		data.Ideas = append(data.Ideas, idea)
		return true, nil
	})

	return &Result{ID: idea.ID, Changed: true, Message: fmt.Sprintf("Added idea: %s", idea.Title)}, err
}

// EditIdeaCommand replaces the fields of an idea
type EditIdeaCommand struct {
	session  *application.Session
	ID       string
	Title    string
	Text     string
	Category string
}

// NewEditIdeaCommand creates a new EditIdeaCommand
func NewEditIdeaCommand(session *application.Session, id, title, text, category string) *EditIdeaCommand {
	return &EditIdeaCommand{session: session, ID: id, Title: title, Text: text, Category: category}
}

// Validate checks if the edit is valid
func (c *EditIdeaCommand) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	return application.ValidateRequired("text", c.Text)
}

// Execute runs the edit idea command
func (c *EditIdeaCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "edit idea", func(data *domain.Aggregate) (bool, error) {
		i := domain.IndexByID(data.Ideas, c.ID)
		if i < 0 {
			return false, nil
		}
		idea := &data.Ideas[i]
		idea.Title = strings.TrimSpace(c.Title)
		idea.Text = strings.TrimSpace(c.Text)
		idea.Category = strings.TrimSpace(c.Category)
		return true, nil
	})
	if !changed {
		return unchanged("idea", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Updated idea"}, err
}

// DeleteIdeaCommand removes an idea
type DeleteIdeaCommand struct {
	session *application.Session
	ID      string
}

// NewDeleteIdeaCommand creates a new DeleteIdeaCommand
func NewDeleteIdeaCommand(session *application.Session, id string) *DeleteIdeaCommand {
	return &DeleteIdeaCommand{session: session, ID: id}
}

// Validate checks if the delete is valid
func (c *DeleteIdeaCommand) Validate() error {
	return requireID(c.ID)
}

// Execute runs the delete idea command
func (c *DeleteIdeaCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "delete idea", func(data *domain.Aggregate) (bool, error) {
		var removed bool
		data.Ideas, removed = domain.RemoveByID(data.Ideas, c.ID)
		return removed, nil
	})
	if !changed {
		return unchanged("idea", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Deleted idea"}, err
}

// ListIdeasCommand returns ideas newest first
type ListIdeasCommand struct {
	session  *application.Session
	Category string
}

// NewListIdeasCommand creates a new ListIdeasCommand
func NewListIdeasCommand(session *application.Session, category string) *ListIdeasCommand {
	return &ListIdeasCommand{session: session, Category: category}
}

// Execute runs the list ideas command
func (c *ListIdeasCommand) Execute(ctx context.Context) ([]domain.Idea, error) {
	var ideas []domain.Idea
	c.session.View(func(data *domain.Aggregate) {
		for _, idea := range data.Ideas {
			if domain.MatchesCategory(idea.Category, c.Category) {
				ideas = append(ideas, idea)
			}
		}
	})
	domain.SortByCreated(ideas, domain.NewestFirst)
	return ideas, nil
}
