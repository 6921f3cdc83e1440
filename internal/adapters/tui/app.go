package tui

import (
	"context"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/tui/views"
	"daybook/internal/application"
	"daybook/internal/application/commands"
	"daybook/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDay ViewState = iota
	ViewWeek
	ViewHabits
	ViewAddTask
	ViewConfirm
	ViewHelp
)

// screen is a list view that can reload and show command results
type screen interface {
	tea.Model
	SetSize(width, height int)
	SetResult(msg views.ResultMsg)
	Reload() tea.Cmd
}

// App is the main TUI application model
type App struct {
	session *application.Session
	editor  ports.TextEditor

	state ViewState
	back  ViewState

	day     *views.DayModel
	week    *views.WeekModel
	habits  *views.HabitsModel
	addTask *views.AddTaskModel
	confirm *views.ConfirmModel
	help    *views.HelpModel
}

// NewApp creates a new TUI application. A nil editor disables new notes.
func NewApp(session *application.Session, ed ports.TextEditor) *App {
	return &App{
		session: session,
		editor:  ed,
		state:   ViewDay,
		day:     views.NewDayModel(session),
		week:    views.NewWeekModel(session),
		habits:  views.NewHabitsModel(session),
		addTask: views.NewAddTaskModel(session),
		confirm: views.NewConfirmModel(),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.day.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		for _, s := range a.screens() {
			s.SetSize(msg.Width, msg.Height)
		}
		a.addTask.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToDayMsg:
		a.state = ViewDay
		return a, a.day.Reload()

	case views.SwitchToWeekMsg:
		a.state = ViewWeek
		return a, a.week.Reload()

	case views.SwitchToHabitsMsg:
		a.state = ViewHabits
		return a, a.habits.Reload()

	case views.SwitchToHelpMsg:
		a.back, a.state = a.state, ViewHelp
		return a, nil

	case views.SwitchToAddTaskMsg:
		a.back, a.state = ViewDay, ViewAddTask
		return a, a.addTask.Open(msg.Date)

	case views.SwitchToConfirmMsg:
		a.back, a.state = a.state, ViewConfirm
		a.confirm.Ask(msg.Prompt, msg.OnConfirm)
		return a, nil

	case views.CancelledMsg:
		a.state = a.back
		return a, nil

	case views.ResultMsg:
		if a.state == ViewAddTask || a.state == ViewConfirm {
			a.state = a.back
		}
		current := a.current()
		current.SetResult(msg)
		return a, current.Reload()

	case views.NewNoteMsg:
		return a, a.openEditor()

	case noteEditedMsg:
		return a, a.saveNote(msg)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewAddTask:
		_, cmd = a.addTask.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.current().Update(msg)
	}
	return a, cmd
}

// current returns the list view that is shown or returned to
func (a *App) current() screen {
	state := a.state
	if state == ViewAddTask || state == ViewConfirm || state == ViewHelp {
		state = a.back
	}
	switch state {
	case ViewWeek:
		return a.week
	case ViewHabits:
		return a.habits
	default:
		return a.day
	}
}

func (a *App) screens() []screen {
	return []screen{a.day, a.week, a.habits}
}

type noteEditedMsg struct {
	path string
	err  error
}

func (a *App) openEditor() tea.Cmd {
	if a.editor == nil {
		return nil
	}

	f, err := os.CreateTemp("", "daybook-note-*.md")
	if err != nil {
		return func() tea.Msg { return views.ResultMsg{Err: err} }
	}
	path := f.Name()
	f.Close()

	cmd, err := a.editor.Command(path)
	if err != nil {
		os.Remove(path)
		return func() tea.Msg { return views.ResultMsg{Err: err} }
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return noteEditedMsg{path: path, err: err}
	})
}

// saveNote turns the edited file into a note. The first line is the title.
func (a *App) saveNote(msg noteEditedMsg) tea.Cmd {
	return func() tea.Msg {
		defer os.Remove(msg.path)
		if msg.err != nil {
			return views.ResultMsg{Err: msg.err}
		}
		raw, err := os.ReadFile(msg.path)
		if err != nil {
			return views.ResultMsg{Err: err}
		}
		title, content := splitNote(string(raw))
		if title == "" && content == "" {
			return views.ResultMsg{Result: &commands.Result{Message: "Empty note discarded"}}
		}
		result, err := commands.NewAddNoteCommand(a.session, title, content).Execute(context.Background())
		return views.ResultMsg{Result: result, Err: err}
	}
}

func splitNote(text string) (title, content string) {
	text = strings.TrimSpace(text)
	title, content, _ = strings.Cut(text, "\n")
	return strings.TrimSpace(strings.TrimLeft(title, "# ")), strings.TrimSpace(content)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewAddTask:
		return a.addTask.View()
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.current().View()
	}
}
