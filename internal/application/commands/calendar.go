package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"daybook/internal/application"
	"daybook/internal/domain"
)

// AddCalendarEntryCommand adds a plain dated entry to the calendar list
type AddCalendarEntryCommand struct {
	session *application.Session
	Text    string
	Date    string
}

// NewAddCalendarEntryCommand creates a new AddCalendarEntryCommand
func NewAddCalendarEntryCommand(session *application.Session, text, date string) *AddCalendarEntryCommand {
	return &AddCalendarEntryCommand{session: session, Text: text, Date: date}
}

// Validate checks if the entry can be added
func (c *AddCalendarEntryCommand) Validate() error {
	if err := application.ValidateRequired("text", c.Text); err != nil {
		return err
	}
	return application.ValidateDate("date", c.Date)
}

// Execute runs the add calendar entry command
func (c *AddCalendarEntryCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry := domain.CalendarEntry{
		ID:        c.session.NewID(),
		Text:      strings.TrimSpace(c.Text),
		Date:      strings.TrimSpace(c.Date),
		CreatedAt: c.session.Now(),
	}
	_, err := c.session.Mutate(ctx, "add calendar entry", func(data *domain.Aggregate) (bool, error) {
		data.Calendar = append(data.Calendar, entry)
		return true, nil
	})

	return &Result{ID: entry.ID, Changed: true, Message: fmt.Sprintf("Added calendar entry: %s", entry.Text)}, err
}

// DeleteCalendarEntryCommand removes a calendar entry
type DeleteCalendarEntryCommand struct {
	session *application.Session
	ID      string
}

// NewDeleteCalendarEntryCommand creates a new DeleteCalendarEntryCommand
func NewDeleteCalendarEntryCommand(session *application.Session, id string) *DeleteCalendarEntryCommand {
	return &DeleteCalendarEntryCommand{session: session, ID: id}
}

// Validate checks if the delete is valid
func (c *DeleteCalendarEntryCommand) Validate() error {
	return requireID(c.ID)
}

// Execute runs the delete calendar entry command
func (c *DeleteCalendarEntryCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "delete calendar entry", func(data *domain.Aggregate) (bool, error) {
		var removed bool
		data.Calendar, removed = domain.RemoveByID(data.Calendar, c.ID)
		return removed, nil
	})
	if !changed {
		return unchanged("calendar entry", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Deleted calendar entry"}, err
}

// ListCalendarEntriesCommand returns calendar entries oldest first
type ListCalendarEntriesCommand struct {
	session *application.Session
}

// NewListCalendarEntriesCommand creates a new ListCalendarEntriesCommand
func NewListCalendarEntriesCommand(session *application.Session) *ListCalendarEntriesCommand {
	return &ListCalendarEntriesCommand{session: session}
}

// Execute runs the list calendar entries command
func (c *ListCalendarEntriesCommand) Execute(ctx context.Context) ([]domain.CalendarEntry, error) {
	var entries []domain.CalendarEntry
	c.session.View(func(data *domain.Aggregate) {
		entries = slices.Clone(data.Calendar)
	})
	domain.SortByCreated(entries, domain.OldestFirst)
	return entries, nil
}
