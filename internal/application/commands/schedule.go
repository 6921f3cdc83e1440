package commands

import (
	"context"
	"fmt"
	"time"

	"daybook/internal/application"
	"daybook/internal/domain"
)

func resolveDay(session *application.Session, date string) (time.Time, error) {
	if date == "" {
		return session.Today(), nil
	}
	if err := application.ValidateDate("date", date); err != nil {
		return time.Time{}, err
	}
	return domain.ParseDateKey(date, session.Now().Location())
}

// AgendaCommand lists everything scheduled on a day
type AgendaCommand struct {
	session *application.Session
	Date    string
}

// NewAgendaCommand creates a new AgendaCommand. An empty date means today.
func NewAgendaCommand(session *application.Session, date string) *AgendaCommand {
	return &AgendaCommand{session: session, Date: date}
}

// Execute runs the agenda command
func (c *AgendaCommand) Execute(ctx context.Context) (*domain.Agenda, error) {
	day, err := resolveDay(c.session, c.Date)
	if err != nil {
		return nil, err
	}

	var agenda domain.Agenda
	c.session.View(func(data *domain.Aggregate) {
		agenda = domain.NewScheduleIndex(data).AgendaFor(day)
	})
	return &agenda, nil
}

// DayActivityCommand reports which kinds of items occupy a day
type DayActivityCommand struct {
	session *application.Session
	Date    string
}

// NewDayActivityCommand creates a new DayActivityCommand. An empty date means today.
func NewDayActivityCommand(session *application.Session, date string) *DayActivityCommand {
	return &DayActivityCommand{session: session, Date: date}
}

// Execute runs the day activity command
func (c *DayActivityCommand) Execute(ctx context.Context) (*domain.DayActivity, error) {
	day, err := resolveDay(c.session, c.Date)
	if err != nil {
		return nil, err
	}

	activity := domain.DayActivity{Date: domain.DateKey(day)}
	c.session.View(func(data *domain.Aggregate) {
		activity.Kinds = domain.NewScheduleIndex(data).ActivityKinds(day)
	})
	return &activity, nil
}

// MonthCommand reports the activity of every day in a month
type MonthCommand struct {
	session *application.Session
	Year    int
	Month   int
}

// NewMonthCommand creates a new MonthCommand. Zero values mean the current year and month.
func NewMonthCommand(session *application.Session, year, month int) *MonthCommand {
	return &MonthCommand{session: session, Year: year, Month: month}
}

// Validate checks the month number
func (c *MonthCommand) Validate() error {
	if c.Month < 0 || c.Month > 12 {
		return &application.ValidationError{Field: "month", Message: fmt.Sprintf("expected 1-12, got: %d", c.Month)}
	}
	return nil
}

// Execute runs the month command
func (c *MonthCommand) Execute(ctx context.Context) ([]domain.DayActivity, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	now := c.session.Now()
	year, month := c.Year, time.Month(c.Month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	var days []domain.DayActivity
	c.session.View(func(data *domain.Aggregate) {
		days = domain.NewScheduleIndex(data).Month(year, month, now.Location())
	})
	return days, nil
}
