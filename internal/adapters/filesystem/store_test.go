package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

func sampleAggregate() *domain.Aggregate {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	a := domain.NewAggregate()
	a.Tasks = []domain.Task{{ID: "t1", Text: "File taxes", Date: "2024-01-11T12:00:00", Category: "work", CreatedAt: created}}
	a.Habits = []domain.Habit{{
		ID:                  "h1",
		Text:                "Stretch",
		Frequency:           domain.FrequencyDaily,
		SelectedDays:        []domain.Weekday{domain.Monday, domain.Wednesday},
		SubHabits:           []string{"neck", "back"},
		CompletionDates:     []string{"2024-01-08"},
		SubHabitCompletions: map[string][]int{"2024-01-08": {0, 1}},
		Streak:              1,
		CreatedAt:           created,
	}}
	a.Routines = []domain.Routine{{
		ID:           "r1",
		Text:         "Gym",
		StartTime:    "18:00",
		EndTime:      "19:00",
		Frequency:    domain.FrequencyWeekends,
		SelectedDays: domain.Weekend,
		CreatedAt:    created,
	}}
	a.TaskCategories = []domain.Category{{Name: "errands", Color: "#abcdef"}}
	return a
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load(context.Background(), "alice")
	if !errors.Is(err, ports.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())
	want := sampleAggregate()

	if err := store.Save(ctx, "alice", want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := store.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// save(load()) leaves the stored snapshot unchanged
	before, _ := os.ReadFile(store.Path("alice"))
	if err := store.Save(ctx, "alice", got); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	after, _ := os.ReadFile(store.Path("alice"))
	if string(before) != string(after) {
		t.Error("expected identical file after save(load())")
	}
}

func TestStore_Initialize(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	data, err := store.Initialize(ctx, "bob")
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if data.Tasks == nil || data.HabitCategories == nil {
		t.Error("expected allocated lists")
	}

	if _, err := store.Initialize(ctx, "bob"); !errors.Is(err, ports.ErrSnapshotExists) {
		t.Errorf("expected ErrSnapshotExists, got %v", err)
	}
}

func TestStore_CamelCaseKeys(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	if err := store.Save(ctx, "alice", sampleAggregate()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	content, err := os.ReadFile(store.Path("alice"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	for _, key := range []string{`"taskCategories"`, `"subHabitCompletions"`, `"selectedDays"`, `"createdAt"`} {
		if !strings.Contains(string(content), key) {
			t.Errorf("expected key %s in snapshot", key)
		}
	}
}

func TestStore_PathSanitizesUser(t *testing.T) {
	store := NewStore("/data")

	got := store.Path("../../etc/passwd")
	if filepath.Dir(got) != filepath.Join("/data", "users") {
		t.Errorf("path escaped the users directory: %s", got)
	}
}

func TestStore_NoTempFilesLeft(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewStore(dir)

	for i := 0; i < 3; i++ {
		if err := store.Save(ctx, "alice", sampleAggregate()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := os.ReadDir(filepath.Join(dir, "users"))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/daybook"); got != filepath.Join(home, "daybook") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/abs"); got != "/abs" {
		t.Errorf("ExpandHome() = %q", got)
	}
}
