package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/filesystem"
	"daybook/internal/application"
	"daybook/internal/application/commands"
)

func newTestApp(t *testing.T) (*App, *application.Session) {
	t.Helper()
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	s, err := application.OpenSession(context.Background(), filesystem.NewStore(t.TempDir()), "tester",
		application.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	a := NewApp(s, nil)
	a.Update(a.Init()())
	return a, s
}

// send feeds a message and then every view message its command produces.
// Cursor blink ticks are not followed.
func send(a *App, msg tea.Msg) {
	_, cmd := a.Update(msg)
	for i := 0; cmd != nil && i < 10; i++ {
		next := cmd()
		if next == nil || !strings.HasPrefix(fmt.Sprintf("%T", next), "views.") {
			return
		}
		_, cmd = a.Update(next)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_QuickAddTask(t *testing.T) {
	a, s := newTestApp(t)

	send(a, runes("a"))
	if a.state != ViewAddTask {
		t.Fatalf("state = %v, want ViewAddTask", a.state)
	}

	a.Update(runes("Buy milk"))
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.state != ViewDay {
		t.Fatalf("state = %v, want ViewDay", a.state)
	}

	tasks, err := commands.NewListTasksCommand(s, "").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Text != "Buy milk" || tasks[0].Date != "2024-01-10" {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestApp_QuickAddTaskRequiresText(t *testing.T) {
	a, _ := newTestApp(t)

	send(a, runes("a"))
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.state != ViewAddTask {
		t.Errorf("form should stay open, state = %v", a.state)
	}

	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.state != ViewDay {
		t.Errorf("esc should return to the day view, state = %v", a.state)
	}
}

func TestApp_SwitchViews(t *testing.T) {
	a, _ := newTestApp(t)

	send(a, runes("w"))
	if a.state != ViewWeek {
		t.Fatalf("state = %v, want ViewWeek", a.state)
	}
	send(a, runes("?"))
	if a.state != ViewHelp {
		t.Fatalf("state = %v, want ViewHelp", a.state)
	}
	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.state != ViewWeek {
		t.Fatalf("help should return to week, state = %v", a.state)
	}
	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	send(a, runes("s"))
	if a.state != ViewHabits {
		t.Fatalf("state = %v, want ViewHabits", a.state)
	}
}

func TestSplitNote(t *testing.T) {
	tests := []struct {
		input, title, content string
	}{
		{"# Groceries\nmilk\neggs\n", "Groceries", "milk\neggs"},
		{"Title only", "Title only", ""},
		{"\n\n", "", ""},
	}

	for _, tt := range tests {
		title, content := splitNote(tt.input)
		if title != tt.title || content != tt.content {
			t.Errorf("splitNote(%q) = %q, %q", tt.input, title, content)
		}
	}
}
