package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"daybook/internal/application"
	"daybook/internal/domain"
)

// AddNoteCommand creates a note
type AddNoteCommand struct {
	session *application.Session
	Title   string
	Content string
}

// NewAddNoteCommand creates a new AddNoteCommand
func NewAddNoteCommand(session *application.Session, title, content string) *AddNoteCommand {
	return &AddNoteCommand{session: session, Title: title, Content: content}
}

// Validate checks if the note can be created
func (c *AddNoteCommand) Validate() error {
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	return application.ValidateRequired("content", c.Content)
}

// Execute runs the add note command
func (c *AddNoteCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note := domain.Note{
		ID:        c.session.NewID(),
		Title:     strings.TrimSpace(c.Title),
		Content:   c.Content,
		CreatedAt: c.session.Now(),
	}
	_, err := c.session.Mutate(ctx, "add note", func(data *domain.Aggregate) (bool, error) {
		data.Notes = append(data.Notes, note)
		return true, nil
	})

	return &Result{ID: note.ID, Changed: true, Message: fmt.Sprintf("Added note: %s", note.Title)}, err
}

// EditNoteCommand replaces the title and content of a note and stamps UpdatedAt
type EditNoteCommand struct {
	session *application.Session
	ID      string
	Title   string
	Content string
}

// NewEditNoteCommand creates a new EditNoteCommand
func NewEditNoteCommand(session *application.Session, id, title, content string) *EditNoteCommand {
	return &EditNoteCommand{session: session, ID: id, Title: title, Content: content}
}

// Validate checks if the edit is valid
func (c *EditNoteCommand) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	return application.ValidateRequired("content", c.Content)
}

// Execute runs the edit note command
func (c *EditNoteCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "edit note", func(data *domain.Aggregate) (bool, error) {
		i := domain.IndexByID(data.Notes, c.ID)
		if i < 0 {
			return false, nil
		}
		now := c.session.Now()
		n := &data.Notes[i]
		n.Title = strings.TrimSpace(c.Title)
		n.Content = c.Content
		n.UpdatedAt = &now
		return true, nil
	})
	if !changed {
		return unchanged("note", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Updated note"}, err
}

// DeleteNoteCommand removes a note
type DeleteNoteCommand struct {
	session *application.Session
	ID      string
}

// NewDeleteNoteCommand creates a new DeleteNoteCommand
func NewDeleteNoteCommand(session *application.Session, id string) *DeleteNoteCommand {
	return &DeleteNoteCommand{session: session, ID: id}
}

// Validate checks if the delete is valid
func (c *DeleteNoteCommand) Validate() error {
	return requireID(c.ID)
}

// Execute runs the delete note command
func (c *DeleteNoteCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "delete note", func(data *domain.Aggregate) (bool, error) {
		var removed bool
		data.Notes, removed = domain.RemoveByID(data.Notes, c.ID)
		return removed, nil
	})
	if !changed {
		return unchanged("note", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Deleted note"}, err
}

// GetNoteCommand looks up a single note
type GetNoteCommand struct {
	session *application.Session
	ID      string
}

// NewGetNoteCommand creates a new GetNoteCommand
func NewGetNoteCommand(session *application.Session, id string) *GetNoteCommand {
	return &GetNoteCommand{session: session, ID: id}
}

// Execute returns the note, or nil when the id is unknown
func (c *GetNoteCommand) Execute(ctx context.Context) (*domain.Note, error) {
	var note *domain.Note
	c.session.View(func(data *domain.Aggregate) {
		if i := domain.IndexByID(data.Notes, c.ID); i >= 0 {
			n := data.Notes[i]
			note = &n
		}
	})
	return note, nil
}

// ListNotesCommand returns notes oldest first
type ListNotesCommand struct {
	session *application.Session
}

// NewListNotesCommand creates a new ListNotesCommand
func NewListNotesCommand(session *application.Session) *ListNotesCommand {
	return &ListNotesCommand{session: session}
}

// Execute runs the list notes command
func (c *ListNotesCommand) Execute(ctx context.Context) ([]domain.Note, error) {
	var notes []domain.Note
	c.session.View(func(data *domain.Aggregate) {
		notes = slices.Clone(data.Notes)
	})
	domain.SortByCreated(notes, domain.OldestFirst)
	return notes, nil
}
