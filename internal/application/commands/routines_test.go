package commands

import (
	"context"
	"testing"

	"daybook/internal/domain"
)

func TestAddRoutineCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		frequency string
		days      []string
		wantField string
	}{
		{name: "specific days", start: "07:00", end: "07:30", frequency: "specific", days: []string{"tue"}},
		{name: "preset", start: "07:00", end: "07:30", frequency: "weekdays"},
		{name: "specific without days", start: "07:00", end: "07:30", frequency: "specific", wantField: "selectedDays"},
		{name: "malformed start", start: "7am", end: "07:30", frequency: "everyday", wantField: "startTime"},
		{name: "missing end", start: "07:00", end: "", frequency: "everyday", wantField: "endTime"},
		{name: "habit frequency", start: "07:00", end: "07:30", frequency: "daily", wantField: "frequency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewAddRoutineCommand(nil, "Yoga", tt.start, tt.end, tt.frequency, tt.days)
			err := cmd.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			requireValidation(t, err, tt.wantField)
		})
	}
}

func TestDeleteRoutineOccurrence(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSession(t)

	res, err := NewAddRoutineCommand(s, "Brunch", "11:00", "12:00", "weekends", []string{"mon"}).Execute(ctx)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	routines, _ := NewListRoutinesCommand(s).Execute(ctx)
	if got := routines[0].SelectedDays; len(got) != 2 || got[0] != domain.Saturday || got[1] != domain.Sunday {
		t.Fatalf("weekends should expand to sat, sun, got %v", got)
	}

	if _, err := NewDeleteRoutineOccurrenceCommand(s, res.ID, "sat").Execute(ctx); err != nil {
		t.Fatalf("delete sat: %v", err)
	}
	routines, _ = NewListRoutinesCommand(s).Execute(ctx)
	if len(routines) != 1 || len(routines[0].SelectedDays) != 1 {
		t.Fatalf("expected routine on Sunday only, got %v", routines)
	}
	if got := routines[0].ScheduleLabel(); got != "Sun" {
		t.Errorf("label after removing a weekend day = %q, want Sun", got)
	}

	// Removing a day the routine does not run on changes nothing
	noop, err := NewDeleteRoutineOccurrenceCommand(s, res.ID, "wed").Execute(ctx)
	if err != nil || noop.Changed {
		t.Errorf("expected no-op, got %+v, %v", noop, err)
	}

	last, err := NewDeleteRoutineOccurrenceCommand(s, res.ID, "sunday").Execute(ctx)
	if err != nil {
		t.Fatalf("delete sun: %v", err)
	}
	if !contains(last.Message, "no days left") {
		t.Errorf("unexpected message %q", last.Message)
	}
	routines, _ = NewListRoutinesCommand(s).Execute(ctx)
	if len(routines) != 0 {
		t.Errorf("routine should be gone, got %v", routines)
	}
}

func TestEditAndDeleteRoutine(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSession(t)

	res, _ := NewAddRoutineCommand(s, "Gym", "18:00", "19:00", "specific", []string{"wed", "mon"}).Execute(ctx)
	if _, err := NewEditRoutineCommand(s, res.ID, "Gym", "7:30", "8:30", "everyday", nil).Execute(ctx); err != nil {
		t.Fatalf("edit: %v", err)
	}

	week, _ := NewWeekRoutinesCommand(s).Execute(ctx)
	if len(week[domain.Saturday]) != 1 || week[domain.Saturday][0].StartTime != "07:30" {
		t.Errorf("expected edited routine on Saturday at 07:30, got %v", week[domain.Saturday])
	}

	if _, err := NewDeleteRoutineCommand(s, res.ID).Execute(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	routines, _ := NewListRoutinesCommand(s).Execute(ctx)
	if len(routines) != 0 {
		t.Errorf("expected no routines, got %v", routines)
	}
}
