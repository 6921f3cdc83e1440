package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"daybook/internal/adapters/filesystem"
	"daybook/internal/application"
)

// Wednesday 2024-01-10 08:00 UTC
var testNow = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) *application.Session {
	t.Helper()
	store := filesystem.NewStore(t.TempDir())
	n := 0
	s, err := application.OpenSession(context.Background(), store, "tester",
		application.WithClock(func() time.Time { return testNow }),
		application.WithIDGenerator(func() string {
			n++
			return "id-" + string(rune('0'+n))
		}),
	)
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	return s
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
	result, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(result.Content) == 0 {
		t.Fatal("empty result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text, result.IsError
}

func TestAddTaskShowsOnAgenda(t *testing.T) {
	s := newTestSession(t)

	msg, isErr := call(t, addTaskHandler(s), map[string]any{"text": "File taxes", "date": "2024-01-10"})
	if isErr {
		t.Fatalf("add_task failed: %s", msg)
	}
	if !strings.Contains(msg, "File taxes") {
		t.Errorf("unexpected message %q", msg)
	}

	out, isErr := call(t, agendaHandler(s), map[string]any{})
	if isErr {
		t.Fatalf("agenda failed: %s", out)
	}
	if !strings.Contains(out, "Agenda for 2024-01-10") || !strings.Contains(out, "[ ] File taxes") {
		t.Errorf("unexpected agenda:\n%s", out)
	}

	out, _ = call(t, agendaHandler(s), map[string]any{"date": "2024-01-10", "format": "json"})
	if !strings.Contains(out, `"tasks"`) {
		t.Errorf("expected json agenda, got:\n%s", out)
	}
}

func TestAddTaskRequiresText(t *testing.T) {
	s := newTestSession(t)

	msg, isErr := call(t, addTaskHandler(s), map[string]any{"text": "  "})
	if !isErr {
		t.Fatalf("expected tool error, got %q", msg)
	}
}

func TestToggleTask_UnknownID(t *testing.T) {
	s := newTestSession(t)

	msg, isErr := call(t, toggleTaskHandler(s), map[string]any{"id": "missing"})
	if isErr {
		t.Fatalf("unknown ids are not errors: %s", msg)
	}
	if !strings.Contains(msg, "No task") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestRoutineTools(t *testing.T) {
	s := newTestSession(t)

	msg, isErr := call(t, addRoutineHandler(s), map[string]any{
		"text": "Gym", "start": "18:00", "end": "19:00", "frequency": "specific", "days": "wed, sat",
	})
	if isErr {
		t.Fatalf("add_routine failed: %s", msg)
	}

	out, _ := call(t, agendaHandler(s), map[string]any{})
	if !strings.Contains(out, "18:00-19:00  Gym") {
		t.Errorf("routine missing from agenda:\n%s", out)
	}

	msg, isErr = call(t, deleteRoutineHandler(s), map[string]any{"id": "id-1", "day": "wed"})
	if isErr {
		t.Fatalf("delete occurrence failed: %s", msg)
	}
	out, _ = call(t, agendaHandler(s), map[string]any{})
	if strings.Contains(out, "Gym") {
		t.Errorf("routine should be gone on Wednesday:\n%s", out)
	}
	out, _ = call(t, agendaHandler(s), map[string]any{"date": "2024-01-13"})
	if !strings.Contains(out, "Gym") {
		t.Errorf("routine should remain on Saturday:\n%s", out)
	}

	msg, _ = call(t, deleteRoutineHandler(s), map[string]any{"id": "id-1", "day": "sat"})
	if !strings.Contains(msg, "no days left") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestAddRoutine_InvalidTime(t *testing.T) {
	s := newTestSession(t)

	_, isErr := call(t, addRoutineHandler(s), map[string]any{
		"text": "Gym", "start": "25:00", "end": "19:00", "frequency": "everyday",
	})
	if !isErr {
		t.Error("expected tool error for invalid start time")
	}
}

func TestSearch(t *testing.T) {
	s := newTestSession(t)
	call(t, addTaskHandler(s), map[string]any{"text": "Buy groceries"})

	out, isErr := call(t, searchHandler(s), map[string]any{"query": "groc"})
	if isErr {
		t.Fatalf("search failed: %s", out)
	}
	if !strings.Contains(out, "task  id-1  Buy groceries") {
		t.Errorf("unexpected search output %q", out)
	}

	out, _ = call(t, searchHandler(s), map[string]any{"query": "zzzz"})
	if out != "No results found." {
		t.Errorf("unexpected output %q", out)
	}

	_, isErr = call(t, searchHandler(s), map[string]any{})
	if !isErr {
		t.Error("expected error without query")
	}
}

func TestMonth_InvalidMonth(t *testing.T) {
	s := newTestSession(t)

	_, isErr := call(t, monthHandler(s), map[string]any{"year": 2024, "month": 13})
	if !isErr {
		t.Error("expected tool error for month 13")
	}
	out, isErr := call(t, monthHandler(s), map[string]any{"year": 2024, "month": 1})
	if isErr {
		t.Fatalf("month failed: %s", out)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" mon, ,wed,fri ")
	want := []string{"mon", "wed", "fri"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("splitList() = %v, want %v", got, want)
	}
	if splitList("") != nil {
		t.Error("expected nil for empty input")
	}
}

func TestRegisterTools(t *testing.T) {
	s := server.NewMCPServer("test", "0.0.0", server.WithToolCapabilities(true))
	session := newTestSession(t)
	RegisterReadTools(s, session)
	RegisterWriteTools(s, session)

	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var listed struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &listed); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got := len(listed.Result.Tools); got != 10 {
		t.Errorf("registered %d tools, want 10: %s", got, raw)
	}
}
