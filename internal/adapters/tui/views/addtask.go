package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/application"
	"daybook/internal/application/commands"
)

const (
	fieldText = iota
	fieldDate
	fieldCategory
)

// AddTaskModel is the quick-add form for tasks
type AddTaskModel struct {
	ViewState
	session *application.Session
	form    *InputForm
}

// NewAddTaskModel creates a new add task form
func NewAddTaskModel(session *application.Session) *AddTaskModel {
	return &AddTaskModel{
		session: session,
		form: NewInputForm(
			NewInputField("Task", "What needs doing?", 200),
			NewInputField("Date", "YYYY-MM-DD, empty for none", 10),
			NewInputField("Category", "work, personal, ...", 50),
		),
	}
}

// Open clears the form and prefills the date
func (m *AddTaskModel) Open(date string) tea.Cmd {
	m.ClearMessage()
	m.form.Reset()
	m.form.SetValue(fieldDate, date)
	return textinput.Blink
}

// Init starts the cursor blink
func (m *AddTaskModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the add task form
func (m *AddTaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, FormKeys.Cancel):
			return m, switchTo(SwitchToDayMsg{})
		case key.Matches(msg, FormKeys.Submit):
			return m, m.submit()
		}
	}
	return m, m.form.Update(msg)
}

func (m *AddTaskModel) submit() tea.Cmd {
	cmd := commands.NewAddTaskCommand(m.session,
		m.form.Value(fieldText),
		m.form.Value(fieldDate),
		m.form.Value(fieldCategory),
	)
	// Keep the form open on validation errors
	if err := cmd.Validate(); err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	return run(func() (*commands.Result, error) {
		return cmd.Execute(context.Background())
	})
}

// View renders the add task form
func (m *AddTaskModel) View() string {
	return newScreen("New task", "").
		line(m.form.View()).
		render(m.Message, m.MessageErr, FormKeys.Next, FormKeys.Submit, FormKeys.Cancel)
}
