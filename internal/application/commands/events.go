package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"daybook/internal/application"
	"daybook/internal/domain"
)

// eventDateLayouts are the accepted forms of an event date
var eventDateLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", domain.DateKeyLayout}

func validateEventDate(value string) error {
	if err := application.ValidateRequired("date", value); err != nil {
		return err
	}
	value = strings.TrimSpace(value)
	for _, layout := range eventDateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}
	return &application.ValidationError{
		Field:   "date",
		Message: fmt.Sprintf("expected YYYY-MM-DD or YYYY-MM-DDTHH:MM, got: %s", value),
	}
}

// AddEventCommand schedules an event
type AddEventCommand struct {
	session  *application.Session
	Text     string
	Date     string
	Location string
	Notes    string
}

// NewAddEventCommand creates a new AddEventCommand
func NewAddEventCommand(session *application.Session, text, date, location, notes string) *AddEventCommand {
	return &AddEventCommand{session: session, Text: text, Date: date, Location: location, Notes: notes}
}

// Validate checks if the event can be created
func (c *AddEventCommand) Validate() error {
	if err := application.ValidateRequired("text", c.Text); err != nil {
		return err
	}
	return validateEventDate(c.Date)
}

// Execute runs the add event command
func (c *AddEventCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	event := domain.Event{
		ID:        c.session.NewID(),
		Text:      strings.TrimSpace(c.Text),
		Date:      strings.TrimSpace(c.Date),
		Location:  strings.TrimSpace(c.Location),
		Notes:     strings.TrimSpace(c.Notes),
		CreatedAt: c.session.Now(),
	}
	_, err := c.session.Mutate(ctx, "add event", func(data *domain.Aggregate) (bool, error) {
		data.Events = append(data.Events, event)
		return true, nil
	})

	return &Result{ID: event.ID, Changed: true, Message: fmt.Sprintf("Added event: %s on %s", event.Text, event.Date)}, err
}

// EditEventCommand replaces the fields of an event
type EditEventCommand struct {
	session  *application.Session
	ID       string
	Text     string
	Date     string
	Location string
	Notes    string
}

// NewEditEventCommand creates a new EditEventCommand
func NewEditEventCommand(session *application.Session, id, text, date, location, notes string) *EditEventCommand {
	return &EditEventCommand{session: session, ID: id, Text: text, Date: date, Location: location, Notes: notes}
}

// Validate checks if the edit is valid
func (c *EditEventCommand) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	if err := application.ValidateRequired("text", c.Text); err != nil {
		return err
	}
	return validateEventDate(c.Date)
}

// Execute runs the edit event command
func (c *EditEventCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "edit event", func(data *domain.Aggregate) (bool, error) {
		i := domain.IndexByID(data.Events, c.ID)
		if i < 0 {
			return false, nil
		}
		e := &data.Events[i]
		e.Text = strings.TrimSpace(c.Text)
		e.Date = strings.TrimSpace(c.Date)
		e.Location = strings.TrimSpace(c.Location)
		e.Notes = strings.TrimSpace(c.Notes)
		return true, nil
	})
	if !changed {
		return unchanged("event", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Updated event"}, err
}

// DeleteEventCommand removes an event
type DeleteEventCommand struct {
	session *application.Session
	ID      string
}

// NewDeleteEventCommand creates a new DeleteEventCommand
func NewDeleteEventCommand(session *application.Session, id string) *DeleteEventCommand {
	return &DeleteEventCommand{session: session, ID: id}
}

// Validate checks if the delete is valid
func (c *DeleteEventCommand) Validate() error {
	return requireID(c.ID)
}

// Execute runs the delete event command
func (c *DeleteEventCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "delete event", func(data *domain.Aggregate) (bool, error) {
		var removed bool
		data.Events, removed = domain.RemoveByID(data.Events, c.ID)
		return removed, nil
	})
	if !changed {
		return unchanged("event", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Deleted event"}, err
}

// ListEventsCommand returns events oldest first
type ListEventsCommand struct {
	session *application.Session
}

// NewListEventsCommand creates a new ListEventsCommand
func NewListEventsCommand(session *application.Session) *ListEventsCommand {
	return &ListEventsCommand{session: session}
}

// Execute runs the list events command
func (c *ListEventsCommand) Execute(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	c.session.View(func(data *domain.Aggregate) {
		events = slices.Clone(data.Events)
	})
	domain.SortByCreated(events, domain.OldestFirst)
	return events, nil
}
