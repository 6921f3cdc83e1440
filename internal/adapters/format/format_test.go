package format

import (
	"strings"
	"testing"

	"daybook/internal/application"
	"daybook/internal/domain"
)

func TestAgenda(t *testing.T) {
	a := &domain.Agenda{
		Date:     "2024-01-10",
		Events:   []domain.Event{{Text: "Dentist", Date: "2024-01-10T15:30", Location: "Clinic"}},
		Tasks:    []domain.Task{{Text: "Call mom", Completed: true}},
		Routines: []domain.Routine{{Text: "Gym", StartTime: "18:00", EndTime: "19:00"}},
		Habits: []domain.HabitEntry{{
			Habit:    domain.Habit{Text: "Stretch", SubHabits: []string{"a", "b"}, Streak: 3},
			Progress: 50,
		}},
	}

	got := Agenda(a)
	for _, want := range []string{
		"Agenda for 2024-01-10",
		"15:30  Dentist @ Clinic",
		"[x] Call mom",
		"18:00-19:00  Gym",
		"[ ] Stretch (50%)  streak 3",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}
}

func TestAgenda_Empty(t *testing.T) {
	got := Agenda(&domain.Agenda{Date: "2024-01-13"})
	if !strings.Contains(got, "Nothing scheduled.") {
		t.Errorf("got:\n%s", got)
	}
}

func TestDotStrip(t *testing.T) {
	days := []domain.DayStatus{
		{IsScheduled: true, IsCompleted: true},
		{IsScheduled: true},
		{},
	}
	if got := DotStrip(days); got != DotDone+DotMissed+DotOffSchedule {
		t.Errorf("DotStrip() = %q", got)
	}
}

func TestHabitStats(t *testing.T) {
	got := HabitStats([]application.HabitStats{{HabitID: "h1", Text: "Read", Schedule: "Every day", Streak: 2, Rate: 50}})
	if !strings.Contains(got, "h1  Read  [Every day]  streak 2  rate 50%") {
		t.Errorf("got:\n%s", got)
	}
	if HabitStats(nil) != "No habits.\n" {
		t.Error("expected placeholder for no habits")
	}
}

func TestMonth_SkipsEmptyDays(t *testing.T) {
	got := Month([]domain.DayActivity{
		{Date: "2024-02-01", Kinds: []domain.ActivityKind{domain.ActivityEvents, domain.ActivityHabits}},
		{Date: "2024-02-02", Kinds: []domain.ActivityKind{}},
	})
	if got != "2024-02-01  events, habits\n" {
		t.Errorf("got %q", got)
	}
}

func TestEventTime(t *testing.T) {
	tests := map[string]string{
		"2024-01-10T15:30":    "15:30",
		"2024-01-10T07:05:00": "07:05",
		"2024-01-10":          "all day",
	}
	for input, want := range tests {
		if got := EventTime(input); got != want {
			t.Errorf("EventTime(%q) = %q, want %q", input, got, want)
		}
	}
}
