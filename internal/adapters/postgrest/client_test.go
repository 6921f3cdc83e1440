package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

// fakeTable is a single-table PostgREST stand-in keyed by user_id
type fakeTable struct {
	mu   sync.Mutex
	rows map[string]json.RawMessage
	t    *testing.T
}

func newFakeServer(t *testing.T) (*fakeTable, *httptest.Server) {
	table := &fakeTable{rows: map[string]json.RawMessage{}, t: t}
	server := httptest.NewServer(table)
	t.Cleanup(server.Close)
	return table, server
}

func (f *fakeTable) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.URL.Path != tablePath {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Header.Get("apikey") != "anon-key" {
		f.t.Errorf("missing apikey header")
	}
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		f.t.Errorf("missing bearer token")
	}

	userID := strings.TrimPrefix(r.URL.Query().Get("user_id"), "eq.")
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		if row, ok := f.rows[userID]; ok {
			w.Write([]byte("[" + string(row) + "]"))
			return
		}
		w.Write([]byte("[]"))
	case http.MethodPatch:
		body, _ := io.ReadAll(r.Body)
		if _, ok := f.rows[userID]; !ok {
			w.Write([]byte("[]"))
			return
		}
		f.rows[userID] = body
		w.Write([]byte("[" + string(body) + "]"))
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		var head struct {
			UserID string `json:"user_id"`
		}
		json.Unmarshal(body, &head)
		if _, ok := f.rows[head.UserID]; ok {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"code":"23505"}`))
			return
		}
		f.rows[head.UserID] = body
		w.WriteHeader(http.StatusCreated)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestStore(server *httptest.Server) *Store {
	return NewStore(Config{URL: server.URL + "/", APIKey: "anon-key", Token: "user-token"})
}

func TestStore_LoadMissing(t *testing.T) {
	_, server := newFakeServer(t)
	store := newTestStore(server)

	_, err := store.Load(context.Background(), "alice")
	if !errors.Is(err, ports.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestStore_InitializeConflict(t *testing.T) {
	ctx := context.Background()
	_, server := newFakeServer(t)
	store := newTestStore(server)

	if _, err := store.Initialize(ctx, "alice"); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if _, err := store.Initialize(ctx, "alice"); !errors.Is(err, ports.ErrSnapshotExists) {
		t.Errorf("expected ErrSnapshotExists, got %v", err)
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	table, server := newFakeServer(t)
	store := newTestStore(server)

	if _, err := store.Initialize(ctx, "alice"); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	data := domain.NewAggregate()
	data.Routines = []domain.Routine{{
		ID:           "r1",
		Text:         "Standup",
		StartTime:    "09:30",
		EndTime:      "09:45",
		Frequency:    domain.FrequencyWeekdays,
		SelectedDays: domain.WorkWeek,
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	data.HabitCategories = []domain.Category{{Name: "mindful", Color: "#123456"}}

	if err := store.Save(ctx, "alice", data); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	stored := string(table.rows["alice"])
	if !strings.Contains(stored, `"habitcategories"`) || !strings.Contains(stored, `"updated_at"`) {
		t.Errorf("unexpected wire row: %s", stored)
	}

	got, err := store.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Routines) != 1 || got.Routines[0].Text != "Standup" {
		t.Errorf("Routines = %v", got.Routines)
	}
	if len(got.HabitCategories) != 1 || got.HabitCategories[0].Name != "mindful" {
		t.Errorf("HabitCategories = %v", got.HabitCategories)
	}
}

func TestStore_SaveCreatesMissingRow(t *testing.T) {
	ctx := context.Background()
	table, server := newFakeServer(t)
	store := newTestStore(server)

	if err := store.Save(ctx, "bob", domain.NewAggregate()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, ok := table.rows["bob"]; !ok {
		t.Error("expected Save to insert a missing row")
	}
}

func TestStore_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	store := NewStore(Config{URL: server.URL, APIKey: "anon-key"})
	_, err := store.Load(context.Background(), "alice")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.Status != http.StatusInternalServerError || statusErr.Body != "boom" {
		t.Errorf("unexpected error: %+v", statusErr)
	}
}

func TestStore_FallsBackToAPIKeyToken(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	store := NewStore(Config{URL: server.URL, APIKey: "anon-key"})
	store.Load(context.Background(), "alice")

	if auth != "Bearer anon-key" {
		t.Errorf("Authorization = %q", auth)
	}
}
