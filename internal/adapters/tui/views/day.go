package views

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/format"
	"daybook/internal/application"
	"daybook/internal/application/commands"
	"daybook/internal/domain"
)

type agendaLoadedMsg struct {
	agenda *domain.Agenda
}

type errMsg struct {
	err error
}

// dayRow is one selectable line of the day view
type dayRow struct {
	kind domain.ActivityKind
	id   string
	text string
	done bool
}

// DayModel shows the agenda of one day
type DayModel struct {
	ViewState
	session *application.Session
	date    time.Time
	agenda  *domain.Agenda
	rows    []dayRow
	cursor  int
	copy    func(string) error
}

// NewDayModel creates a day view positioned on today
func NewDayModel(session *application.Session) *DayModel {
	return &DayModel{
		session: session,
		date:    session.Today(),
		copy:    clipboard.WriteAll,
	}
}

// Init loads the agenda
func (m *DayModel) Init() tea.Cmd {
	return m.load
}

// Reload reloads the agenda of the current day
func (m *DayModel) Reload() tea.Cmd {
	return m.load
}

// Date returns the day being shown as a date key
func (m *DayModel) Date() string {
	return domain.DateKey(m.date)
}

func (m *DayModel) load() tea.Msg {
	agenda, err := commands.NewAgendaCommand(m.session, m.Date()).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return agendaLoadedMsg{agenda}
}

// Update handles messages for the day view
func (m *DayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case agendaLoadedMsg:
		if msg.agenda.Date != m.Date() {
			// Stale load from a previous day
			return m, nil
		}
		m.agenda = msg.agenda
		m.rows = agendaRows(msg.agenda)
		m.cursor = clamp(m.cursor, len(m.rows))
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *DayModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, Keys.Quit):
		return tea.Quit

	case key.Matches(msg, Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, Keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, Keys.PrevDay):
		return m.moveTo(m.date.AddDate(0, 0, -1))

	case key.Matches(msg, Keys.NextDay):
		return m.moveTo(m.date.AddDate(0, 0, 1))

	case key.Matches(msg, Keys.Today):
		return m.moveTo(m.session.Today())

	case key.Matches(msg, Keys.Toggle):
		return m.toggle()

	case key.Matches(msg, Keys.Delete):
		return m.confirmDelete()

	case key.Matches(msg, Keys.Copy):
		if m.agenda == nil {
			return nil
		}
		if err := m.copy(format.Agenda(m.agenda)); err != nil {
			m.SetMessage("Copy failed: "+err.Error(), true)
			return nil
		}
		m.SetMessage("Agenda copied to clipboard", false)

	case key.Matches(msg, Keys.Add):
		return switchTo(SwitchToAddTaskMsg{Date: m.Date()})

	case key.Matches(msg, Keys.Note):
		return switchTo(NewNoteMsg{})

	case key.Matches(msg, Keys.Week):
		return switchTo(SwitchToWeekMsg{})

	case key.Matches(msg, Keys.Habits):
		return switchTo(SwitchToHabitsMsg{})

	case key.Matches(msg, Keys.Help):
		return switchTo(SwitchToHelpMsg{})
	}
	return nil
}

func (m *DayModel) moveTo(day time.Time) tea.Cmd {
	m.date = domain.Day(day)
	m.agenda = nil
	m.rows = nil
	m.cursor = 0
	return m.load
}

func (m *DayModel) selected() *dayRow {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return &m.rows[m.cursor]
	}
	return nil
}

func (m *DayModel) toggle() tea.Cmd {
	row := m.selected()
	if row == nil {
		return nil
	}
	ctx := context.Background()
	id := row.id
	switch row.kind {
	case domain.ActivityTasks:
		return run(func() (*commands.Result, error) {
			return commands.NewToggleTaskCommand(m.session, id).Execute(ctx)
		})
	case domain.ActivityHabits:
		date := m.Date()
		return run(func() (*commands.Result, error) {
			return commands.NewToggleHabitDayCommand(m.session, id, date).Execute(ctx)
		})
	default:
		m.SetMessage("Only tasks and habits can be checked off", false)
		return nil
	}
}

func (m *DayModel) confirmDelete() tea.Cmd {
	row := m.selected()
	if row == nil {
		return nil
	}
	ctx := context.Background()
	id := row.id
	switch row.kind {
	case domain.ActivityTasks:
		return switchTo(SwitchToConfirmMsg{
			Prompt: fmt.Sprintf("Delete task %q?", row.text),
			OnConfirm: run(func() (*commands.Result, error) {
				return commands.NewDeleteTaskCommand(m.session, id).Execute(ctx)
			}),
		})
	case domain.ActivityEvents:
		return switchTo(SwitchToConfirmMsg{
			Prompt: fmt.Sprintf("Delete event %q?", row.text),
			OnConfirm: run(func() (*commands.Result, error) {
				return commands.NewDeleteEventCommand(m.session, id).Execute(ctx)
			}),
		})
	case domain.ActivityRoutines:
		day := domain.WeekdayOf(m.date)
		return switchTo(SwitchToConfirmMsg{
			Prompt: fmt.Sprintf("Remove %q from every %s?", row.text, day.ShortName()),
			OnConfirm: run(func() (*commands.Result, error) {
				return commands.NewDeleteRoutineOccurrenceCommand(m.session, id, string(day)).Execute(ctx)
			}),
		})
	default:
		m.SetMessage("Delete habits from the habits view", false)
		return nil
	}
}

func agendaRows(a *domain.Agenda) []dayRow {
	var rows []dayRow
	for _, e := range a.Events {
		text := format.EventTime(e.Date) + "  " + e.Text
		if e.Location != "" {
			text += " @ " + e.Location
		}
		rows = append(rows, dayRow{kind: domain.ActivityEvents, id: e.ID, text: text})
	}
	for _, t := range a.Tasks {
		rows = append(rows, dayRow{kind: domain.ActivityTasks, id: t.ID, text: t.Text, done: t.Completed})
	}
	for _, r := range a.Routines {
		rows = append(rows, dayRow{kind: domain.ActivityRoutines, id: r.ID, text: r.StartTime + "-" + r.EndTime + "  " + r.Text})
	}
	for _, h := range a.Habits {
		text := h.Habit.Text
		if len(h.Habit.SubHabits) > 0 && !h.Completed {
			text += fmt.Sprintf(" (%d%%)", h.Progress)
		}
		rows = append(rows, dayRow{kind: domain.ActivityHabits, id: h.Habit.ID, text: text, done: h.Completed})
	}
	return rows
}

var sectionTitles = map[domain.ActivityKind]string{
	domain.ActivityEvents:   "Events",
	domain.ActivityTasks:    "Tasks",
	domain.ActivityRoutines: "Routines",
	domain.ActivityHabits:   "Habits",
}

// View renders the day view
func (m *DayModel) View() string {
	v := newScreen("Daybook", m.date.Format("Monday, 2 January 2006"))

	switch {
	case m.agenda == nil:
		v.note("Loading...")
	case len(m.rows) == 0:
		v.note("Nothing scheduled.")
	default:
		var last domain.ActivityKind
		for i, row := range m.rows {
			if row.kind != last {
				v.group(row.kind, sectionTitles[row.kind])
				last = row.kind
			}
			text := row.text
			if row.kind == domain.ActivityTasks || row.kind == domain.ActivityHabits {
				text = format.Check(row.done) + " " + text
			}
			v.item(text, i == m.cursor, row.done)
		}
	}

	return v.render(m.Message, m.MessageErr,
		Keys.PrevDay, Keys.NextDay, Keys.Toggle, Keys.Add, Keys.Delete, Keys.Week, Keys.Habits, Keys.Help, Keys.Quit)
}

func clamp(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
