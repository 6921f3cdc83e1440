package commands

import (
	"context"
	"fmt"
	"strings"

	"daybook/internal/application"
	"daybook/internal/domain"
)

type routineFields struct {
	Text      string
	StartTime string
	EndTime   string
	Frequency string
	Days      []string
}

// validate checks the fields and returns the normalized routine values
func (f routineFields) validate() (start, end string, freq domain.Frequency, days []domain.Weekday, err error) {
	if err = application.ValidateRequired("text", f.Text); err != nil {
		return
	}
	if err = application.ValidateTimeOfDay("startTime", f.StartTime); err != nil {
		return
	}
	if err = application.ValidateTimeOfDay("endTime", f.EndTime); err != nil {
		return
	}
	start, _ = domain.ParseTimeOfDay(f.StartTime)
	end, _ = domain.ParseTimeOfDay(f.EndTime)

	freq, err = domain.ParseFrequency(f.Frequency)
	if err != nil || !freq.IsRoutineFrequency() {
		err = &application.ValidationError{
			Field:   "frequency",
			Message: fmt.Sprintf("expected everyday, weekdays, weekends or specific, got: %s", f.Frequency),
		}
		return
	}

	chosen, err := parseWeekdays(f.Days)
	if err != nil {
		return
	}
	rule, err := domain.NewRoutineRule(freq, chosen)
	if err != nil {
		err = application.FromDomain("selectedDays", err)
		return
	}
	days = rule.Days
	return
}

// AddRoutineCommand creates a routine
type AddRoutineCommand struct {
	session *application.Session
	routineFields
}

// NewAddRoutineCommand creates a new AddRoutineCommand. Days are only read for
// the specific frequency; presets expand to their own day sets.
func NewAddRoutineCommand(session *application.Session, text, start, end, frequency string, days []string) *AddRoutineCommand {
	return &AddRoutineCommand{
		session: session,
		routineFields: routineFields{
			Text:      text,
			StartTime: start,
			EndTime:   end,
			Frequency: frequency,
			Days:      days,
		},
	}
}

// Validate checks if the routine can be created
func (c *AddRoutineCommand) Validate() error {
	_, _, _, _, err := c.validate()
	return err
}

// Execute runs the add routine command
func (c *AddRoutineCommand) Execute(ctx context.Context) (*Result, error) {
	start, end, freq, days, err := c.validate()
	if err != nil {
		return nil, err
	}

	routine := domain.Routine{
		ID:           c.session.NewID(),
		Text:         strings.TrimSpace(c.Text),
		StartTime:    start,
		EndTime:      end,
		Frequency:    freq,
		SelectedDays: days,
		CreatedAt:    c.session.Now(),
	}
	_, err = c.session.Mutate(ctx, "add routine", func(data *domain.Aggregate) (bool, error) {
		data.Routines = append(data.Routines, routine)
		return true, nil
	})

	return &Result{
		ID:      routine.ID,
		Changed: true,
		Message: fmt.Sprintf("Added routine: %s %s-%s (%s)", routine.Text, start, end, routine.ScheduleLabel()),
	}, err
}

// EditRoutineCommand replaces text, times and days of a routine
type EditRoutineCommand struct {
	session *application.Session
	ID      string
	routineFields
}

// NewEditRoutineCommand creates a new EditRoutineCommand
func NewEditRoutineCommand(session *application.Session, id, text, start, end, frequency string, days []string) *EditRoutineCommand {
	return &EditRoutineCommand{
		session: session,
		ID:      id,
		routineFields: routineFields{
			Text:      text,
			StartTime: start,
			EndTime:   end,
			Frequency: frequency,
			Days:      days,
		},
	}
}

// Validate checks if the edit is valid
func (c *EditRoutineCommand) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	_, _, _, _, err := c.validate()
	return err
}

// Execute runs the edit routine command
func (c *EditRoutineCommand) Execute(ctx context.Context) (*Result, error) {
	if err := requireID(c.ID); err != nil {
		return nil, err
	}
	start, end, freq, days, err := c.validate()
	if err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "edit routine", func(data *domain.Aggregate) (bool, error) {
		r := data.Routine(c.ID)
		if r == nil {
			return false, nil
		}
		r.Text = strings.TrimSpace(c.Text)
		r.StartTime = start
		r.EndTime = end
		r.Frequency = freq
		r.SelectedDays = days
		return true, nil
	})
	if !changed {
		return unchanged("routine", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Updated routine"}, err
}

// DeleteRoutineOccurrenceCommand removes one weekday from a routine. The
// routine is deleted once no days remain.
type DeleteRoutineOccurrenceCommand struct {
	session *application.Session
	ID      string
	Day     string
}

// NewDeleteRoutineOccurrenceCommand creates a new DeleteRoutineOccurrenceCommand
func NewDeleteRoutineOccurrenceCommand(session *application.Session, id, day string) *DeleteRoutineOccurrenceCommand {
	return &DeleteRoutineOccurrenceCommand{session: session, ID: id, Day: day}
}

// Validate checks if the delete is valid
func (c *DeleteRoutineOccurrenceCommand) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	if _, err := domain.ParseWeekday(c.Day); err != nil {
		return application.FromDomain("day", err)
	}
	return nil
}

// Execute runs the delete occurrence command
func (c *DeleteRoutineOccurrenceCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	day, _ := domain.ParseWeekday(c.Day)

	var emptied bool
	changed, err := c.session.Mutate(ctx, "delete routine occurrence", func(data *domain.Aggregate) (bool, error) {
		i := domain.IndexByID(data.Routines, c.ID)
		if i < 0 {
			return false, nil
		}
		before := len(data.Routines[i].SelectedDays)
		emptied = data.Routines[i].RemoveDay(day)
		if emptied {
			data.Routines, _ = domain.RemoveByID(data.Routines, c.ID)
			return true, nil
		}
		return len(data.Routines[i].SelectedDays) != before, nil
	})
	if !changed {
		return unchanged("routine occurrence", c.ID), err
	}

	msg := fmt.Sprintf("Removed %s from routine", day.ShortName())
	if emptied {
		msg = "Deleted routine (no days left)"
	}
	return &Result{ID: c.ID, Changed: true, Message: msg}, err
}

// DeleteRoutineCommand removes a routine on every day
type DeleteRoutineCommand struct {
	session *application.Session
	ID      string
}

// NewDeleteRoutineCommand creates a new DeleteRoutineCommand
func NewDeleteRoutineCommand(session *application.Session, id string) *DeleteRoutineCommand {
	return &DeleteRoutineCommand{session: session, ID: id}
}

// Validate checks if the delete is valid
func (c *DeleteRoutineCommand) Validate() error {
	return requireID(c.ID)
}

// Execute runs the delete routine command
func (c *DeleteRoutineCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "delete routine", func(data *domain.Aggregate) (bool, error) {
		var removed bool
		data.Routines, removed = domain.RemoveByID(data.Routines, c.ID)
		return removed, nil
	})
	if !changed {
		return unchanged("routine", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Deleted routine"}, err
}

// ListRoutinesCommand returns routines newest first
type ListRoutinesCommand struct {
	session *application.Session
}

// NewListRoutinesCommand creates a new ListRoutinesCommand
func NewListRoutinesCommand(session *application.Session) *ListRoutinesCommand {
	return &ListRoutinesCommand{session: session}
}

// Execute runs the list routines command
func (c *ListRoutinesCommand) Execute(ctx context.Context) ([]domain.Routine, error) {
	var routines []domain.Routine
	c.session.View(func(data *domain.Aggregate) {
		routines = append(routines, data.Routines...)
	})
	domain.SortByCreated(routines, domain.NewestFirst)
	return routines, nil
}

// WeekRoutinesCommand groups routines by the weekdays they run on
type WeekRoutinesCommand struct {
	session *application.Session
}

// NewWeekRoutinesCommand creates a new WeekRoutinesCommand
func NewWeekRoutinesCommand(session *application.Session) *WeekRoutinesCommand {
	return &WeekRoutinesCommand{session: session}
}

// Execute runs the week routines command
func (c *WeekRoutinesCommand) Execute(ctx context.Context) (map[domain.Weekday][]domain.Routine, error) {
	var week map[domain.Weekday][]domain.Routine
	c.session.View(func(data *domain.Aggregate) {
		week = domain.RoutinesByWeekday(data.Routines)
	})
	return week, nil
}
