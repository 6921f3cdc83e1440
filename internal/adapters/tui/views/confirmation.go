package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for the confirmation prompt
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// CancelledMsg is sent when a confirmation is declined
type CancelledMsg struct{}

// ConfirmModel asks a yes/no question before running a destructive command
type ConfirmModel struct {
	ViewState
	prompt    string
	onConfirm tea.Cmd
}

// NewConfirmModel creates an empty confirmation prompt
func NewConfirmModel() *ConfirmModel {
	return &ConfirmModel{}
}

// Ask sets the question and the command to run on confirm
func (m *ConfirmModel) Ask(prompt string, onConfirm tea.Cmd) {
	m.prompt = prompt
	m.onConfirm = onConfirm
}

// Init does nothing
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation prompt
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, ConfirmKeys.Confirm):
			cmd := m.onConfirm
			m.onConfirm = nil
			return m, cmd
		case key.Matches(msg, ConfirmKeys.Cancel):
			m.onConfirm = nil
			return m, switchTo(CancelledMsg{})
		}
	}
	return m, nil
}

// View renders the confirmation prompt
func (m *ConfirmModel) View() string {
	return newScreen("Confirm", "").
		line(m.prompt+" "+
			styles.HelpKey.Render("y")+styles.HelpDesc.Render(" to confirm, ")+
			styles.HelpKey.Render("n")+styles.HelpDesc.Render(" to cancel")).
		render("", false)
}
