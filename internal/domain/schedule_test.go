package domain

import (
	"slices"
	"testing"
	"time"
)

func scheduleFixture() *Aggregate {
	a := NewAggregate()
	a.Events = []Event{
		{ID: "e1", Text: "Dentist", Date: "2024-01-10T15:30", CreatedAt: date(2024, 1, 1)},
	}
	a.Tasks = []Task{
		{ID: "t1", Text: "File taxes", Date: "2024-01-11T12:00:00", CreatedAt: date(2024, 1, 1)},
		{ID: "t2", Text: "Undated", CreatedAt: date(2024, 1, 1)},
	}
	a.Habits = []Habit{
		{
			ID:              "h1",
			Text:            "Run",
			Frequency:       FrequencyDaily,
			SelectedDays:    []Weekday{Wednesday},
			CompletionDates: []string{"2024-01-10"},
			CreatedAt:       time.Date(2024, 1, 9, 18, 0, 0, 0, time.UTC),
		},
	}
	a.Routines = []Routine{
		{ID: "r1", Text: "Gym", StartTime: "18:00", EndTime: "19:00", Frequency: FrequencySpecific, SelectedDays: []Weekday{Wednesday}},
		{ID: "r2", Text: "Standup", StartTime: "09:30", EndTime: "09:45", Frequency: FrequencyWeekdays, SelectedDays: WorkWeek},
	}
	return a
}

func TestScheduleIndex_ActivityKinds(t *testing.T) {
	idx := NewScheduleIndex(scheduleFixture())

	tests := []struct {
		name string
		date time.Time
		want []ActivityKind
	}{
		{"wednesday with everything", date(2024, 1, 10), []ActivityKind{ActivityEvents, ActivityHabits, ActivityRoutines}},
		{"thursday task and standup", date(2024, 1, 11), []ActivityKind{ActivityTasks, ActivityRoutines}},
		{"empty sunday", date(2024, 1, 14), []ActivityKind{}},
		{"wednesday before habit creation", date(2024, 1, 3), []ActivityKind{ActivityRoutines}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.ActivityKinds(tt.date)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ActivityKinds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScheduleIndex_HasAnyActivity_BeforeHabitCreation(t *testing.T) {
	a := NewAggregate()
	a.Habits = []Habit{{
		ID:           "h1",
		Frequency:    FrequencyDaily,
		SelectedDays: []Weekday{Wednesday},
		CreatedAt:    date(2024, 1, 10),
	}}
	idx := NewScheduleIndex(a)

	if idx.HasAnyActivity(date(2024, 1, 3)) {
		t.Error("habit must not be active before it was created")
	}
	if !idx.HasAnyActivity(date(2024, 1, 10)) {
		t.Error("habit should be active on its creation day")
	}
}

func TestScheduleIndex_AgendaFor(t *testing.T) {
	idx := NewScheduleIndex(scheduleFixture())

	agenda := idx.AgendaFor(time.Date(2024, 1, 10, 22, 0, 0, 0, time.UTC))
	if agenda.Date != "2024-01-10" {
		t.Errorf("Date = %s", agenda.Date)
	}
	if len(agenda.Events) != 1 || agenda.Events[0].ID != "e1" {
		t.Errorf("Events = %v", agenda.Events)
	}
	if len(agenda.Tasks) != 0 {
		t.Errorf("Tasks = %v", agenda.Tasks)
	}
	if len(agenda.Routines) != 2 || agenda.Routines[0].ID != "r2" || agenda.Routines[1].ID != "r1" {
		t.Errorf("Routines not sorted by start time: %v", agenda.Routines)
	}
	if len(agenda.Habits) != 1 || !agenda.Habits[0].Completed {
		t.Errorf("Habits = %v", agenda.Habits)
	}
	if agenda.IsEmpty() {
		t.Error("agenda should not be empty")
	}

	if !idx.AgendaFor(date(2024, 1, 13)).IsEmpty() {
		t.Error("saturday agenda should be empty")
	}
}

func TestScheduleIndex_AgendaFor_Ordering(t *testing.T) {
	a := NewAggregate()
	a.Events = []Event{
		{ID: "late", Text: "Dinner", Date: "2024-01-10T19:00", CreatedAt: date(2024, 1, 1)},
		{ID: "early", Text: "Standup", Date: "2024-01-10T09:00", CreatedAt: date(2024, 1, 2)},
		{ID: "noon", Text: "Lunch", Date: "2024-01-10T12:30", CreatedAt: date(2024, 1, 3)},
	}
	a.Tasks = []Task{
		{ID: "old", Text: "Old", Date: "2024-01-10T12:00:00", CreatedAt: date(2024, 1, 1)},
		{ID: "new", Text: "New", Date: "2024-01-10T12:00:00", CreatedAt: date(2024, 1, 5)},
	}
	a.Habits = []Habit{
		{ID: "h-old", Frequency: FrequencyDaily, CreatedAt: date(2024, 1, 1)},
		{ID: "h-new", Frequency: FrequencyDaily, CreatedAt: date(2024, 1, 4)},
	}

	agenda := NewScheduleIndex(a).AgendaFor(date(2024, 1, 10))

	var events, tasks, habits []string
	for _, e := range agenda.Events {
		events = append(events, e.ID)
	}
	for _, t := range agenda.Tasks {
		tasks = append(tasks, t.ID)
	}
	for _, h := range agenda.Habits {
		habits = append(habits, h.Habit.ID)
	}

	if want := []string{"early", "noon", "late"}; !slices.Equal(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}
	if want := []string{"new", "old"}; !slices.Equal(tasks, want) {
		t.Errorf("tasks = %v, want %v", tasks, want)
	}
	if want := []string{"h-new", "h-old"}; !slices.Equal(habits, want) {
		t.Errorf("habits = %v, want %v", habits, want)
	}

	// Aggregate order must not leak into the agenda
	slices.Reverse(a.Tasks)
	slices.Reverse(a.Events)
	again := NewScheduleIndex(a).AgendaFor(date(2024, 1, 10))
	if again.Tasks[0].ID != "new" || again.Events[0].ID != "early" {
		t.Errorf("order depends on insertion: tasks[0]=%s events[0]=%s", again.Tasks[0].ID, again.Events[0].ID)
	}
}

func TestScheduleIndex_Month(t *testing.T) {
	idx := NewScheduleIndex(scheduleFixture())

	days := idx.Month(2024, time.February, time.UTC)
	if len(days) != 29 {
		t.Fatalf("expected 29 days in February 2024, got %d", len(days))
	}
	if days[0].Date != "2024-02-01" || days[28].Date != "2024-02-29" {
		t.Errorf("unexpected range %s..%s", days[0].Date, days[28].Date)
	}
	// 2024-02-03 is a Saturday
	if len(days[2].Kinds) != 0 {
		t.Errorf("expected no activity on Saturday, got %v", days[2].Kinds)
	}
}

func TestRoutine_RemoveDay(t *testing.T) {
	r := Routine{Frequency: FrequencyWeekends, SelectedDays: []Weekday{Saturday, Sunday}}

	if r.RemoveDay(Saturday) {
		t.Fatal("routine should still have Sunday")
	}
	if r.OccursOn(date(2024, 1, 6)) {
		t.Error("routine should no longer occur on Saturday")
	}
	if !r.OccursOn(date(2024, 1, 7)) {
		t.Error("routine should still occur on Sunday")
	}
	if r.Frequency != FrequencySpecific || r.ScheduleLabel() != "Sun" {
		t.Errorf("frequency %q label %q, want specific Sun", r.Frequency, r.ScheduleLabel())
	}
	if !r.RemoveDay(Sunday) {
		t.Error("removing the last day should report empty")
	}
}

func TestRoutine_RemoveDay_UnknownDayKeepsPreset(t *testing.T) {
	r := Routine{Frequency: FrequencyWeekdays, SelectedDays: slices.Clone(WorkWeek)}

	if r.RemoveDay(Saturday) {
		t.Fatal("routine should keep its weekdays")
	}
	if r.Frequency != FrequencyWeekdays || r.ScheduleLabel() != "Weekdays" {
		t.Errorf("frequency %q label %q, want weekdays", r.Frequency, r.ScheduleLabel())
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"09:30", "09:30", false},
		{"9:05", "09:05", false},
		{"23:59", "23:59", false},
		{"24:00", "", true},
		{"noon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoutinesByWeekday(t *testing.T) {
	week := RoutinesByWeekday(scheduleFixture().Routines)

	wed := week[Wednesday]
	if len(wed) != 2 || wed[0].ID != "r2" {
		t.Errorf("Wednesday = %v", wed)
	}
	if len(week[Saturday]) != 0 {
		t.Errorf("Saturday = %v", week[Saturday])
	}
}
