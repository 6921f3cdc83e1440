package domain

import (
	"slices"
	"time"
)

// ActivityKind names a family of items that can occupy a calendar day
type ActivityKind string

const (
	ActivityEvents   ActivityKind = "events"
	ActivityTasks    ActivityKind = "tasks"
	ActivityHabits   ActivityKind = "habits"
	ActivityRoutines ActivityKind = "routines"
)

// HabitEntry is a habit scheduled on an agenda day with its completion for that day
type HabitEntry struct {
	Habit     Habit `json:"habit"`
	Completed bool  `json:"completed"`
	Progress  int   `json:"progress"`
}

// Agenda lists everything that applies to a single day
type Agenda struct {
	Date     string       `json:"date"`
	Events   []Event      `json:"events"`
	Tasks    []Task       `json:"tasks"`
	Routines []Routine    `json:"routines"`
	Habits   []HabitEntry `json:"habits"`
}

// IsEmpty reports whether nothing is scheduled on the agenda day
func (a Agenda) IsEmpty() bool {
	return len(a.Events)+len(a.Tasks)+len(a.Routines)+len(a.Habits) == 0
}

// DayActivity is one cell of a month view
type DayActivity struct {
	Date  string         `json:"date"`
	Kinds []ActivityKind `json:"kinds"`
}

// ScheduleIndex answers day-level questions over an aggregate. It holds a
// reference, so results always reflect the current state.
type ScheduleIndex struct {
	data *Aggregate
}

// NewScheduleIndex creates an index over data
func NewScheduleIndex(data *Aggregate) *ScheduleIndex {
	return &ScheduleIndex{data: data}
}

// ActivityKinds returns the kinds that have at least one item on the day of
// date, in the fixed order events, tasks, habits, routines.
func (s *ScheduleIndex) ActivityKinds(date time.Time) []ActivityKind {
	key := DateKey(date)
	kinds := []ActivityKind{}

	for _, e := range s.data.Events {
		if e.OnDay(key) {
			kinds = append(kinds, ActivityEvents)
			break
		}
	}
	for _, t := range s.data.Tasks {
		if t.OnDay(key) {
			kinds = append(kinds, ActivityTasks)
			break
		}
	}
	for i := range s.data.Habits {
		if s.data.Habits[i].ScheduledOn(date) {
			kinds = append(kinds, ActivityHabits)
			break
		}
	}
	for i := range s.data.Routines {
		if s.data.Routines[i].OccursOn(date) {
			kinds = append(kinds, ActivityRoutines)
			break
		}
	}
	return kinds
}

// HasAnyActivity reports whether anything is scheduled on the day of date
func (s *ScheduleIndex) HasAnyActivity(date time.Time) bool {
	return len(s.ActivityKinds(date)) > 0
}

// AgendaFor collects the items of each kind that apply on the day of date.
// Events are ordered by time, routines by start time, tasks and habits newest
// first.
func (s *ScheduleIndex) AgendaFor(date time.Time) Agenda {
	key := DateKey(date)
	agenda := Agenda{
		Date:     key,
		Events:   []Event{},
		Tasks:    []Task{},
		Routines: []Routine{},
		Habits:   []HabitEntry{},
	}

	for _, e := range s.data.Events {
		if e.OnDay(key) {
			agenda.Events = append(agenda.Events, e)
		}
	}
	for _, t := range s.data.Tasks {
		if t.OnDay(key) {
			agenda.Tasks = append(agenda.Tasks, t)
		}
	}
	SortEventsByTime(agenda.Events)
	SortByCreated(agenda.Tasks, NewestFirst)

	for i := range s.data.Routines {
		if s.data.Routines[i].OccursOn(date) {
			agenda.Routines = append(agenda.Routines, s.data.Routines[i])
		}
	}
	SortRoutinesByStart(agenda.Routines)

	for i := range s.data.Habits {
		h := &s.data.Habits[i]
		if !h.ScheduledOn(date) {
			continue
		}
		agenda.Habits = append(agenda.Habits, HabitEntry{
			Habit:     *h,
			Completed: h.CompletedOn(key),
			Progress:  h.Progress(key),
		})
	}
	slices.SortStableFunc(agenda.Habits, func(a, b HabitEntry) int {
		return b.Habit.CreatedAt.Compare(a.Habit.CreatedAt)
	})
	return agenda
}

// Month returns the activity of every day of the given month
func (s *ScheduleIndex) Month(year int, month time.Month, loc *time.Location) []DayActivity {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	var days []DayActivity
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, DayActivity{Date: DateKey(d), Kinds: s.ActivityKinds(d)})
	}
	return days
}
