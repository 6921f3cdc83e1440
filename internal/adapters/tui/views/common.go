package views

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/application"
	"daybook/internal/application/commands"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// SetResult shows the outcome of a command. A failed save keeps the
// command message and marks it as an error.
func (s *ViewState) SetResult(msg ResultMsg) {
	var persistErr *application.PersistError
	switch {
	case errors.As(msg.Err, &persistErr) && msg.Result != nil:
		s.SetMessage(msg.Result.Message+" (not saved)", true)
	case msg.Err != nil:
		s.SetMessage(msg.Err.Error(), true)
	case msg.Result != nil:
		s.SetMessage(msg.Result.Message, false)
	}
}

// ResultMsg carries the outcome of a mutating command back to the views
type ResultMsg struct {
	Result *commands.Result
	Err    error
}

// run executes a mutating command off the update loop
func run(exec func() (*commands.Result, error)) tea.Cmd {
	return func() tea.Msg {
		result, err := exec()
		return ResultMsg{Result: result, Err: err}
	}
}

// Messages for view switching
type (
	SwitchToDayMsg     struct{}
	SwitchToWeekMsg    struct{}
	SwitchToHabitsMsg  struct{}
	SwitchToHelpMsg    struct{}
	SwitchToAddTaskMsg struct{ Date string }
	SwitchToConfirmMsg struct {
		Prompt    string
		OnConfirm tea.Cmd
	}
	// NewNoteMsg asks the app to open the editor for a new note
	NewNoteMsg struct{}
)

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
