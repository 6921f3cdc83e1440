package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/application"
	"daybook/internal/application/commands"
	"daybook/internal/domain"
)

// weekOrder lists weekdays Monday first for display
var weekOrder = []domain.Weekday{
	domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday,
	domain.Friday, domain.Saturday, domain.Sunday,
}

type weekLoadedMsg struct {
	week map[domain.Weekday][]domain.Routine
}

type weekRow struct {
	day     domain.Weekday
	routine domain.Routine
}

// WeekModel shows the routines of every weekday
type WeekModel struct {
	ViewState
	session *application.Session
	week    map[domain.Weekday][]domain.Routine
	rows    []weekRow
	cursor  int
}

// NewWeekModel creates a new week view
func NewWeekModel(session *application.Session) *WeekModel {
	return &WeekModel{session: session}
}

// Init loads the routines
func (m *WeekModel) Init() tea.Cmd {
	return m.load
}

// Reload reloads the routines
func (m *WeekModel) Reload() tea.Cmd {
	return m.load
}

func (m *WeekModel) load() tea.Msg {
	week, err := commands.NewWeekRoutinesCommand(m.session).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return weekLoadedMsg{week}
}

// Update handles messages for the week view
func (m *WeekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weekLoadedMsg:
		m.week = msg.week
		m.rows = m.rows[:0]
		for _, day := range weekOrder {
			for _, r := range msg.week[day] {
				m.rows = append(m.rows, weekRow{day: day, routine: r})
			}
		}
		m.cursor = clamp(m.cursor, len(m.rows))
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, Keys.Back), key.Matches(msg, Keys.Week):
			return m, switchTo(SwitchToDayMsg{})
		case key.Matches(msg, Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, Keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, Keys.Delete):
			return m, m.confirmDelete(false)
		case key.Matches(msg, Keys.DeleteAll):
			return m, m.confirmDelete(true)
		case key.Matches(msg, Keys.Help):
			return m, switchTo(SwitchToHelpMsg{})
		}
	}
	return m, nil
}

func (m *WeekModel) confirmDelete(all bool) tea.Cmd {
	if m.cursor >= len(m.rows) {
		return nil
	}
	row := m.rows[m.cursor]
	ctx := context.Background()
	id := row.routine.ID

	if all {
		return switchTo(SwitchToConfirmMsg{
			Prompt: fmt.Sprintf("Delete routine %q on every day?", row.routine.Text),
			OnConfirm: run(func() (*commands.Result, error) {
				return commands.NewDeleteRoutineCommand(m.session, id).Execute(ctx)
			}),
		})
	}
	return switchTo(SwitchToConfirmMsg{
		Prompt: fmt.Sprintf("Remove %q from %s?", row.routine.Text, row.day.ShortName()),
		OnConfirm: run(func() (*commands.Result, error) {
			return commands.NewDeleteRoutineOccurrenceCommand(m.session, id, string(row.day)).Execute(ctx)
		}),
	})
}

// View renders the week view
func (m *WeekModel) View() string {
	v := newScreen("Week", "Routines by weekday")

	if m.week == nil {
		v.note("Loading...")
	} else {
		i := 0
		for _, day := range weekOrder {
			v.group(domain.ActivityRoutines, day.ShortName())
			if len(m.week[day]) == 0 {
				v.note("  -")
			}
			for _, r := range m.week[day] {
				text := fmt.Sprintf("%s-%s  %s", r.StartTime, r.EndTime, r.Text)
				v.item(text, i == m.cursor, false)
				i++
			}
		}
	}

	return v.render(m.Message, m.MessageErr, Keys.Up, Keys.Down, Keys.Delete, Keys.DeleteAll, Keys.Back)
}
