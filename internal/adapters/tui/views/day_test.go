package views

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/filesystem"
	"daybook/internal/application"
	"daybook/internal/application/commands"
	"daybook/internal/domain"
)

// newTestSession opens a session on Wednesday 2024-01-10 with one task,
// one routine and one habit scheduled that day
func newTestSession(t *testing.T) *application.Session {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	s, err := application.OpenSession(ctx, filesystem.NewStore(t.TempDir()), "tester",
		application.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}

	if _, err := commands.NewAddTaskCommand(s, "File taxes", "2024-01-10", "").Execute(ctx); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := commands.NewAddRoutineCommand(s, "Gym", "18:00", "19:00", "specific", []string{"wed", "fri"}).Execute(ctx); err != nil {
		t.Fatalf("add routine: %v", err)
	}
	if _, err := commands.NewAddHabitCommand(s, "Stretch", "", "daily", []string{"wed"}, nil).Execute(ctx); err != nil {
		t.Fatalf("add habit: %v", err)
	}
	return s
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs a command and feeds its message back into the model
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	m.Update(msg)
	return msg
}

func loadedDay(t *testing.T) (*DayModel, *application.Session) {
	t.Helper()
	s := newTestSession(t)
	m := NewDayModel(s)
	drain(t, m, m.Init())
	return m, s
}

func (m *DayModel) cursorTo(kind domain.ActivityKind) bool {
	for i, r := range m.rows {
		if r.kind == kind {
			m.cursor = i
			return true
		}
	}
	return false
}

func TestDayModel_ShowsAgenda(t *testing.T) {
	m, _ := loadedDay(t)

	if len(m.rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(m.rows), m.rows)
	}
	view := m.View()
	for _, want := range []string{"Wednesday, 10 January 2024", "File taxes", "18:00-19:00  Gym", "Stretch"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDayModel_ToggleTask(t *testing.T) {
	m, _ := loadedDay(t)
	if !m.cursorTo(domain.ActivityTasks) {
		t.Fatal("no task row")
	}

	_, cmd := m.Update(keyMsg(" "))
	msg, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatal("expected ResultMsg")
	}
	if msg.Err != nil || !msg.Result.Changed {
		t.Fatalf("toggle failed: %+v %v", msg.Result, msg.Err)
	}

	drain(t, m, m.Reload())
	m.cursorTo(domain.ActivityTasks)
	if !m.selected().done {
		t.Error("task should be completed after toggle")
	}
}

func TestDayModel_ToggleHabit(t *testing.T) {
	m, _ := loadedDay(t)
	m.cursorTo(domain.ActivityHabits)

	_, cmd := m.Update(keyMsg(" "))
	msg := cmd().(ResultMsg)
	if msg.Err != nil {
		t.Fatalf("toggle failed: %v", msg.Err)
	}
	if !strings.Contains(msg.Result.Message, "done on 2024-01-10") {
		t.Errorf("unexpected message %q", msg.Result.Message)
	}
}

func TestDayModel_ToggleRoutineIsRejected(t *testing.T) {
	m, _ := loadedDay(t)
	m.cursorTo(domain.ActivityRoutines)

	if _, cmd := m.Update(keyMsg(" ")); cmd != nil {
		t.Error("routines cannot be toggled")
	}
	if m.Message == "" || m.MessageErr {
		t.Errorf("expected an informational message, got %q", m.Message)
	}
}

func TestDayModel_DeleteRoutineAsksFirst(t *testing.T) {
	m, s := loadedDay(t)
	m.cursorTo(domain.ActivityRoutines)

	_, cmd := m.Update(keyMsg("d"))
	confirm, ok := cmd().(SwitchToConfirmMsg)
	if !ok {
		t.Fatal("expected SwitchToConfirmMsg")
	}
	if !strings.Contains(confirm.Prompt, "Wed") {
		t.Errorf("unexpected prompt %q", confirm.Prompt)
	}

	result := confirm.OnConfirm().(ResultMsg)
	if result.Err != nil {
		t.Fatalf("delete failed: %v", result.Err)
	}

	week, _ := commands.NewWeekRoutinesCommand(s).Execute(context.Background())
	if len(week[domain.Wednesday]) != 0 || len(week[domain.Friday]) != 1 {
		t.Errorf("expected only the Wednesday occurrence removed, got %v", week)
	}
}

func TestDayModel_NavigateDays(t *testing.T) {
	m, _ := loadedDay(t)

	_, cmd := m.Update(keyMsg("l"))
	if m.Date() != "2024-01-11" {
		t.Fatalf("Date() = %s, want 2024-01-11", m.Date())
	}
	drain(t, m, cmd)
	if len(m.rows) != 0 {
		t.Errorf("expected empty Thursday, got %+v", m.rows)
	}
	if !strings.Contains(m.View(), "Nothing scheduled.") {
		t.Error("expected empty agenda text")
	}

	_, cmd = m.Update(keyMsg("t"))
	drain(t, m, cmd)
	if m.Date() != "2024-01-10" || len(m.rows) != 3 {
		t.Errorf("expected today's agenda, got %s with %d rows", m.Date(), len(m.rows))
	}
}

func TestDayModel_IgnoresStaleLoad(t *testing.T) {
	m, _ := loadedDay(t)

	m.Update(agendaLoadedMsg{agenda: &domain.Agenda{Date: "2024-01-09"}})
	if len(m.rows) != 3 {
		t.Errorf("stale agenda replaced current rows: %+v", m.rows)
	}
}

func TestDayModel_CopyAgenda(t *testing.T) {
	m, _ := loadedDay(t)
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m.Update(keyMsg("y"))
	if !strings.HasPrefix(copied, "Agenda for 2024-01-10") {
		t.Errorf("unexpected clipboard text %q", copied)
	}
	if m.MessageErr {
		t.Errorf("unexpected error message %q", m.Message)
	}
}

func TestViewState_SetResult(t *testing.T) {
	var v ViewState

	v.SetResult(ResultMsg{Result: &commands.Result{Message: "Added task"}})
	if v.Message != "Added task" || v.MessageErr {
		t.Errorf("got %q err=%v", v.Message, v.MessageErr)
	}

	v.SetResult(ResultMsg{
		Result: &commands.Result{Message: "Added task"},
		Err:    &application.PersistError{Op: "add task", Err: context.DeadlineExceeded},
	})
	if v.Message != "Added task (not saved)" || !v.MessageErr {
		t.Errorf("got %q err=%v", v.Message, v.MessageErr)
	}
}
