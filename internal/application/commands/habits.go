package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"daybook/internal/application"
	"daybook/internal/domain"
)

// habitFields holds the editable fields shared by add and edit
type habitFields struct {
	Text      string
	Category  string
	Frequency string
	Days      []string
	SubHabits []string
}

// rule validates the fields and returns the normalized frequency and days
func (f habitFields) rule(createdAt time.Time) (domain.Frequency, []domain.Weekday, error) {
	if err := application.ValidateRequired("text", f.Text); err != nil {
		return "", nil, err
	}

	freq, err := domain.ParseFrequency(f.Frequency)
	if err != nil || !freq.IsHabitFrequency() {
		return "", nil, &application.ValidationError{
			Field:   "frequency",
			Message: fmt.Sprintf("expected daily, weekly or monthly, got: %s", f.Frequency),
		}
	}

	days, err := parseWeekdays(f.Days)
	if err != nil {
		return "", nil, err
	}
	rule, err := domain.NewHabitRule(freq, days, createdAt)
	if err != nil {
		return "", nil, application.FromDomain("selectedDays", err)
	}
	if rule.Days == nil {
		rule.Days = []domain.Weekday{}
	}
	return freq, rule.Days, nil
}

func parseWeekdays(input []string) ([]domain.Weekday, error) {
	days := make([]domain.Weekday, 0, len(input))
	for _, s := range input {
		if strings.TrimSpace(s) == "" {
			continue
		}
		d, err := domain.ParseWeekday(s)
		if err != nil {
			return nil, application.FromDomain("selectedDays", err)
		}
		days = append(days, d)
	}
	return days, nil
}

func cleanSubHabits(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AddHabitCommand creates a habit
type AddHabitCommand struct {
	session *application.Session
	habitFields
}

// NewAddHabitCommand creates a new AddHabitCommand. Days are only used by
// daily habits and must not be empty for them.
func NewAddHabitCommand(session *application.Session, text, category, frequency string, days, subHabits []string) *AddHabitCommand {
	return &AddHabitCommand{
		session: session,
		habitFields: habitFields{
			Text:      text,
			Category:  category,
			Frequency: frequency,
			Days:      days,
			SubHabits: subHabits,
		},
	}
}

// Validate checks if the habit can be created
func (c *AddHabitCommand) Validate() error {
	_, _, err := c.rule(time.Time{})
	return err
}

// Execute runs the add habit command
func (c *AddHabitCommand) Execute(ctx context.Context) (*Result, error) {
	now := c.session.Now()
	freq, days, err := c.rule(now)
	if err != nil {
		return nil, err
	}

	habit := domain.Habit{
		ID:                  c.session.NewID(),
		Text:                strings.TrimSpace(c.Text),
		Category:            strings.TrimSpace(c.Category),
		Frequency:           freq,
		SelectedDays:        days,
		SubHabits:           cleanSubHabits(c.SubHabits),
		CompletionDates:     []string{},
		SubHabitCompletions: map[string][]int{},
		CreatedAt:           now,
	}
	_, err = c.session.Mutate(ctx, "add habit", func(data *domain.Aggregate) (bool, error) {
		data.Habits = append(data.Habits, habit)
		return true, nil
	})

	return &Result{ID: habit.ID, Changed: true, Message: fmt.Sprintf("Added habit: %s (%s)", habit.Text, habit.ScheduleLabel())}, err
}

// EditHabitCommand replaces the definition of a habit. Completion history is
// kept and re-checked against the new sub-habit list.
type EditHabitCommand struct {
	session *application.Session
	ID      string
	habitFields
}

// NewEditHabitCommand creates a new EditHabitCommand
func NewEditHabitCommand(session *application.Session, id, text, category, frequency string, days, subHabits []string) *EditHabitCommand {
	return &EditHabitCommand{
		session: session,
		ID:      id,
		habitFields: habitFields{
			Text:      text,
			Category:  category,
			Frequency: frequency,
			Days:      days,
			SubHabits: subHabits,
		},
	}
}

// Validate checks if the edit is valid
func (c *EditHabitCommand) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	_, _, err := c.rule(time.Time{})
	return err
}

// Execute runs the edit habit command
func (c *EditHabitCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	freq, days, _ := c.rule(time.Time{})
	today := c.session.Today()

	changed, err := c.session.Mutate(ctx, "edit habit", func(data *domain.Aggregate) (bool, error) {
		h := data.Habit(c.ID)
		if h == nil {
			return false, nil
		}
		h.Text = strings.TrimSpace(c.Text)
		h.Category = strings.TrimSpace(c.Category)
		h.Frequency = freq
		h.SelectedDays = days
		h.SetSubHabits(cleanSubHabits(c.SubHabits), today)
		return true, nil
	})
	if !changed {
		return unchanged("habit", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Updated habit"}, err
}

// DeleteHabitCommand removes a habit and its history
type DeleteHabitCommand struct {
	session *application.Session
	ID      string
}

// NewDeleteHabitCommand creates a new DeleteHabitCommand
func NewDeleteHabitCommand(session *application.Session, id string) *DeleteHabitCommand {
	return &DeleteHabitCommand{session: session, ID: id}
}

// Validate checks if the delete is valid
func (c *DeleteHabitCommand) Validate() error {
	return requireID(c.ID)
}

// Execute runs the delete habit command
func (c *DeleteHabitCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "delete habit", func(data *domain.Aggregate) (bool, error) {
		var removed bool
		data.Habits, removed = domain.RemoveByID(data.Habits, c.ID)
		return removed, nil
	})
	if !changed {
		return unchanged("habit", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Deleted habit"}, err
}

// ToggleHabitDayCommand marks or unmarks a habit as done on a day
type ToggleHabitDayCommand struct {
	session *application.Session
	ID      string
	Date    string
}

// NewToggleHabitDayCommand creates a new ToggleHabitDayCommand. An empty date means today.
func NewToggleHabitDayCommand(session *application.Session, id, date string) *ToggleHabitDayCommand {
	return &ToggleHabitDayCommand{session: session, ID: id, Date: date}
}

// Validate checks if the toggle is valid
func (c *ToggleHabitDayCommand) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	return application.ValidateOptionalDate("date", c.Date)
}

// Execute runs the toggle habit day command
func (c *ToggleHabitDayCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	today := c.session.Today()
	key := dayOrToday(c.Date, today)

	var h domain.Habit
	changed, err := c.session.Mutate(ctx, "toggle habit", func(data *domain.Aggregate) (bool, error) {
		habit := data.Habit(c.ID)
		if habit == nil {
			return false, nil
		}
		if err := habit.ToggleDay(key, today); err != nil {
			return false, application.FromDomain("date", err)
		}
		h = *habit
		return true, nil
	})
	if !changed {
		if err != nil {
			return nil, err
		}
		return unchanged("habit", c.ID), nil
	}
	return &Result{ID: c.ID, Changed: true, Message: toggleMessage(&h, key)}, err
}

// ToggleSubHabitCommand checks or unchecks one sub-habit of a habit on a day
type ToggleSubHabitCommand struct {
	session *application.Session
	ID      string
	Date    string
	Index   int
}

// NewToggleSubHabitCommand creates a new ToggleSubHabitCommand. An empty date means today.
func NewToggleSubHabitCommand(session *application.Session, id, date string, index int) *ToggleSubHabitCommand {
	return &ToggleSubHabitCommand{session: session, ID: id, Date: date, Index: index}
}

// Validate checks if the toggle is valid
func (c *ToggleSubHabitCommand) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	if c.Index < 0 {
		return &application.ValidationError{Field: "subHabit", Message: "sub-habit index must not be negative"}
	}
	return application.ValidateOptionalDate("date", c.Date)
}

// Execute runs the toggle sub-habit command
func (c *ToggleSubHabitCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	today := c.session.Today()
	key := dayOrToday(c.Date, today)

	var h domain.Habit
	changed, err := c.session.Mutate(ctx, "toggle sub-habit", func(data *domain.Aggregate) (bool, error) {
		habit := data.Habit(c.ID)
		if habit == nil {
			return false, nil
		}
		if err := habit.ToggleSubHabit(key, c.Index, today); err != nil {
			field := "date"
			if errors.Is(err, domain.ErrSubHabitIndex) {
				field = "subHabit"
			}
			return false, application.FromDomain(field, err)
		}
		h = *habit
		return true, nil
	})
	if !changed {
		if err != nil {
			return nil, err
		}
		return unchanged("habit", c.ID), nil
	}
	return &Result{
		ID:      c.ID,
		Changed: true,
		Message: fmt.Sprintf("%s: %d%% done on %s", h.Text, h.Progress(key), key),
	}, err
}

func dayOrToday(date string, today time.Time) string {
	if strings.TrimSpace(date) == "" {
		return domain.DateKey(today)
	}
	// Already validated
	day, _ := domain.ParseDateKey(date, today.Location())
	return domain.DateKey(day)
}

func toggleMessage(h *domain.Habit, key string) string {
	if h.CompletedOn(key) {
		return fmt.Sprintf("%s done on %s (streak %d)", h.Text, key, h.Streak)
	}
	return fmt.Sprintf("%s not done on %s (streak %d)", h.Text, key, h.Streak)
}

// ListHabitsCommand returns habits newest first
type ListHabitsCommand struct {
	session  *application.Session
	Category string
}

// NewListHabitsCommand creates a new ListHabitsCommand
func NewListHabitsCommand(session *application.Session, category string) *ListHabitsCommand {
	return &ListHabitsCommand{session: session, Category: category}
}

// Execute runs the list habits command
func (c *ListHabitsCommand) Execute(ctx context.Context) ([]domain.Habit, error) {
	var habits []domain.Habit
	c.session.View(func(data *domain.Aggregate) {
		for _, h := range data.Habits {
			if domain.MatchesCategory(h.Category, c.Category) {
				habits = append(habits, h)
			}
		}
	})
	domain.SortByCreated(habits, domain.NewestFirst)
	return habits, nil
}

// HabitStatsCommand computes streak, completion rate, the last seven days and
// today's progress for every habit
type HabitStatsCommand struct {
	session  *application.Session
	Category string
}

// NewHabitStatsCommand creates a new HabitStatsCommand
func NewHabitStatsCommand(session *application.Session, category string) *HabitStatsCommand {
	return &HabitStatsCommand{session: session, Category: category}
}

// Execute runs the habit stats command
func (c *HabitStatsCommand) Execute(ctx context.Context) ([]application.HabitStats, error) {
	habits, err := NewListHabitsCommand(c.session, c.Category).Execute(ctx)
	if err != nil {
		return nil, err
	}

	now := c.session.Now()
	today := c.session.Today()
	key := domain.DateKey(today)

	stats := make([]application.HabitStats, 0, len(habits))
	for i := range habits {
		h := &habits[i]
		stats = append(stats, application.HabitStats{
			HabitID:   h.ID,
			Text:      h.Text,
			Category:  h.Category,
			Schedule:  h.ScheduleLabel(),
			Streak:    h.ComputeStreak(today),
			Rate:      h.CompletionRate(now),
			Last7Days: h.Last7Days(today),
			Progress:  h.Progress(key),
		})
	}
	return stats, nil
}
