package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/format"
	"daybook/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, switchTo(CancelledMsg{})
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Daybook Help"))
	b.WriteString("\n")

	section(&b, "Day",
		Keys.Up, Keys.Down, Keys.PrevDay, Keys.NextDay, Keys.Today,
		Keys.Toggle, Keys.Add, Keys.Note, Keys.Delete, Keys.Copy)
	section(&b, "Week", Keys.Delete, Keys.DeleteAll)
	section(&b, "Habits", Keys.Toggle, Keys.Delete)
	section(&b, "General", Keys.Week, Keys.Habits, Keys.Back, Keys.Help, Keys.Quit)

	b.WriteString(styles.InputLabel.Render("Habit strip"))
	b.WriteString("\n")
	b.WriteString(helpLine(format.DotDone, "done"))
	b.WriteString(helpLine(format.DotMissed, "scheduled, not done"))
	b.WriteString(helpLine(format.DotOffSchedule, "not scheduled"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func section(b *strings.Builder, title string, bindings ...key.Binding) {
	b.WriteString(styles.InputLabel.Render(title))
	b.WriteString("\n")
	for _, binding := range bindings {
		help := binding.Help()
		b.WriteString(helpLine(help.Key, help.Desc))
	}
	b.WriteString("\n")
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 12)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
