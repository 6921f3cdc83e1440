package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/format"
	"daybook/internal/application"
	"daybook/internal/application/commands"
)

type statsLoadedMsg struct {
	stats []application.HabitStats
}

// HabitsModel lists habits with their streaks and recent days
type HabitsModel struct {
	ViewState
	session *application.Session
	stats   []application.HabitStats
	loaded  bool
	cursor  int
}

// NewHabitsModel creates a new habits view
func NewHabitsModel(session *application.Session) *HabitsModel {
	return &HabitsModel{session: session}
}

// Init loads the habit stats
func (m *HabitsModel) Init() tea.Cmd {
	return m.load
}

// Reload reloads the habit stats
func (m *HabitsModel) Reload() tea.Cmd {
	return m.load
}

func (m *HabitsModel) load() tea.Msg {
	stats, err := commands.NewHabitStatsCommand(m.session, "").Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return statsLoadedMsg{stats}
}

// Update handles messages for the habits view
func (m *HabitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.stats = msg.stats
		m.loaded = true
		m.cursor = clamp(m.cursor, len(m.stats))
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, Keys.Back), key.Matches(msg, Keys.Habits):
			return m, switchTo(SwitchToDayMsg{})
		case key.Matches(msg, Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, Keys.Down):
			if m.cursor < len(m.stats)-1 {
				m.cursor++
			}
		case key.Matches(msg, Keys.Toggle):
			return m, m.toggleToday()
		case key.Matches(msg, Keys.Delete):
			return m, m.confirmDelete()
		case key.Matches(msg, Keys.Help):
			return m, switchTo(SwitchToHelpMsg{})
		}
	}
	return m, nil
}

func (m *HabitsModel) toggleToday() tea.Cmd {
	if m.cursor >= len(m.stats) {
		return nil
	}
	id := m.stats[m.cursor].HabitID
	return run(func() (*commands.Result, error) {
		return commands.NewToggleHabitDayCommand(m.session, id, "").Execute(context.Background())
	})
}

func (m *HabitsModel) confirmDelete() tea.Cmd {
	if m.cursor >= len(m.stats) {
		return nil
	}
	s := m.stats[m.cursor]
	return switchTo(SwitchToConfirmMsg{
		Prompt: fmt.Sprintf("Delete habit %q and its history?", s.Text),
		OnConfirm: run(func() (*commands.Result, error) {
			return commands.NewDeleteHabitCommand(m.session, s.HabitID).Execute(context.Background())
		}),
	})
}

// View renders the habits view
func (m *HabitsModel) View() string {
	v := newScreen("Habits",
		"Last 7 days: "+format.DotDone+" done  "+format.DotMissed+" missed  "+format.DotOffSchedule+" not scheduled")

	switch {
	case !m.loaded:
		v.note("Loading...")
	case len(m.stats) == 0:
		v.note("No habits yet.")
	default:
		for i, s := range m.stats {
			text := fmt.Sprintf("%s  %s  streak %d  %d%%  [%s]",
				format.DotStrip(s.Last7Days), s.Text, s.Streak, s.Rate, s.Schedule)
			v.item(text, i == m.cursor, false)
		}
	}

	return v.render(m.Message, m.MessageErr, Keys.Up, Keys.Down, Keys.Toggle, Keys.Delete, Keys.Back)
}
