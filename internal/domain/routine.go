package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// TimeOfDayLayout is the HH:MM format of routine start and end times
const TimeOfDayLayout = "15:04"

// Routine is a time slot that repeats on a set of weekdays.
// SelectedDays always holds the expanded day set, even for preset frequencies.
type Routine struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Frequency    Frequency `json:"frequency"`
	SelectedDays []Weekday `json:"selectedDays"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r Routine) RecordID() string   { return r.ID }
func (r Routine) Created() time.Time { return r.CreatedAt }

// ParseTimeOfDay validates an HH:MM value and returns it zero-padded
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(TimeOfDayLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return t.Format(TimeOfDayLayout), nil
}

// Rule evaluates the stored day set. Routines are not anchored to their
// creation date.
func (r *Routine) Rule() RecurrenceRule {
	kind := RuleSpecificWeekdays
	switch r.Frequency {
	case FrequencyEveryday:
		kind = RuleEveryday
	case FrequencyWeekdays:
		kind = RuleWeekdays
	case FrequencyWeekends:
		kind = RuleWeekends
	}
	return RecurrenceRule{Kind: kind, Days: r.SelectedDays}
}

// OccursOn reports whether the routine runs on the weekday of date
func (r *Routine) OccursOn(date time.Time) bool {
	return r.Rule().AppliesOn(date)
}

// RemoveDay drops a single weekday from the routine. A preset that loses a day
// becomes a specific-days routine. It reports whether the routine has no days
// left.
func (r *Routine) RemoveDay(day Weekday) bool {
	before := len(r.SelectedDays)
	r.SelectedDays = slices.DeleteFunc(r.SelectedDays, func(d Weekday) bool { return d == day })
	if len(r.SelectedDays) != before {
		r.Frequency = FrequencySpecific
	}
	return len(r.SelectedDays) == 0
}

// ScheduleLabel describes the routine's days for display
func (r *Routine) ScheduleLabel() string {
	switch r.Frequency {
	case FrequencyEveryday:
		return "Every day"
	case FrequencyWeekdays:
		return "Weekdays"
	case FrequencyWeekends:
		return "Weekends"
	}
	names := make([]string, len(r.SelectedDays))
	for i, d := range r.SelectedDays {
		names[i] = d.ShortName()
	}
	return strings.Join(names, ", ")
}

// SortRoutinesByStart orders routines by start time. HH:MM strings sort
// lexically.
func SortRoutinesByStart(routines []Routine) {
	slices.SortStableFunc(routines, func(a, b Routine) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
}

// RoutinesByWeekday groups routines under each weekday they run on, every
// group sorted by start time.
func RoutinesByWeekday(routines []Routine) map[Weekday][]Routine {
	week := make(map[Weekday][]Routine, len(AllWeekdays))
	for _, r := range routines {
		for _, d := range r.SelectedDays {
			week[d] = append(week[d], r)
		}
	}
	for _, group := range week {
		SortRoutinesByStart(group)
	}
	return week
}
