package export

import (
	"bytes"
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
	a.Tasks = []domain.Task{{ID: "t1", Text: "File taxes", Date: "2024-01-11T12:00:00", CreatedAt: created}}
	a.Notes = []domain.Note{{ID: "n1", Title: "Plan", Content: "line one\nline two", CreatedAt: created}}
	a.Habits = []domain.Habit{{
		ID:                  "h1",
		Text:                "Stretch",
		Frequency:           domain.FrequencyDaily,
		SelectedDays:        []domain.Weekday{domain.Monday},
		SubHabits:           []string{"neck"},
		CompletionDates:     []string{"2024-01-08"},
		SubHabitCompletions: map[string][]int{"2024-01-08": {0}},
		Streak:              1,
		CreatedAt:           created,
	}}
	a.CustomCategories = []domain.Category{{Name: "garden", Color: "#00ff00"}}
	return a
}

func TestCodecs_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		codec ports.SnapshotCodec
	}{
		{"json", JSONCodec{}},
		{"yaml", YAMLCodec{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := sampleAggregate()

			var buf bytes.Buffer
			if err := tt.codec.Encode(&buf, want); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			got, err := tt.codec.Decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestYAMLCodec_BlockStyleCamelCase(t *testing.T) {
	var buf bytes.Buffer
	if err := (YAMLCodec{}).Encode(&buf, sampleAggregate()); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "customCategories:") {
		t.Errorf("expected camel-case keys:\n%s", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("expected block style output:\n%s", out)
	}
}

func TestJSONCodec_DecodeFillsMissingLists(t *testing.T) {
	got, err := (JSONCodec{}).Decode(strings.NewReader(`{"tasks":[{"id":"t1","text":"x","completed":false,"createdAt":"2024-01-01T00:00:00Z"}]}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(got.Tasks) != 1 || got.Habits == nil || got.Routines == nil {
		t.Errorf("unexpected aggregate: %+v", got)
	}
}

func TestForFormat(t *testing.T) {
	if _, err := ForFormat("yaml"); err != nil {
		t.Errorf("yaml: %v", err)
	}
	if _, err := ForFormat("JSON"); err != nil {
		t.Errorf("JSON: %v", err)
	}
	if _, err := ForFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestForPath(t *testing.T) {
	if _, ok := ForPath("backup.yml").(YAMLCodec); !ok {
		t.Error("expected YAML codec for .yml")
	}
	if _, ok := ForPath("backup.json").(JSONCodec); !ok {
		t.Error("expected JSON codec for .json")
	}
}
