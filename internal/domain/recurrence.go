package domain

import (
	"fmt"
	"strings"
	"time"
)

// Frequency is the stored frequency tag of a habit or routine
type Frequency string

const (
	// Habit frequencies
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"

	// Routine frequencies
	FrequencyEveryday Frequency = "everyday"
	FrequencyWeekdays Frequency = "weekdays"
	FrequencyWeekends Frequency = "weekends"
	FrequencySpecific Frequency = "specific"
)

// IsHabitFrequency reports whether f can be used for a habit
func (f Frequency) IsHabitFrequency() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// IsRoutineFrequency reports whether f can be used for a routine
func (f Frequency) IsRoutineFrequency() bool {
	switch f {
	case FrequencyEveryday, FrequencyWeekdays, FrequencyWeekends, FrequencySpecific:
		return true
	default:
		return false
	}
}

// ParseFrequency normalizes user input into a Frequency
func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(input)))
	if f.IsHabitFrequency() || f.IsRoutineFrequency() {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, input)
}

// RuleKind identifies how a RecurrenceRule selects days
type RuleKind string

const (
	RuleDailyWithWeekdays RuleKind = "daily-with-explicit-weekdays"
	RuleDailyAnyDay       RuleKind = "daily-any-day"
	RuleWeekly            RuleKind = "weekly"
	RuleMonthly           RuleKind = "monthly"
	RuleEveryday          RuleKind = "everyday"
	RuleWeekdays          RuleKind = "weekdays"
	RuleWeekends          RuleKind = "weekends"
	RuleSpecificWeekdays  RuleKind = "specific-weekdays"
)

// RecurrenceRule answers which calendar days a habit or routine applies to.
//
// Days holds the normalized weekday set for weekday-based kinds. Anchor is the
// creation time of the owning entity; when set, days before it never apply and
// weekly/monthly rules take their weekday and day-of-month from it.
type RecurrenceRule struct {
	Kind   RuleKind
	Days   []Weekday
	Anchor time.Time
}

// NewHabitRule validates and builds the rule for a habit being created or edited.
// Daily habits require at least one selected day.
func NewHabitRule(freq Frequency, days []Weekday, createdAt time.Time) (RecurrenceRule, error) {
	switch freq {
	case FrequencyDaily:
		if len(days) == 0 {
			return RecurrenceRule{}, ErrNoWeekdays
		}
		normalized, err := normalizeWeekdays(days)
		if err != nil {
			return RecurrenceRule{}, err
		}
		return RecurrenceRule{Kind: RuleDailyWithWeekdays, Days: normalized, Anchor: createdAt}, nil
	case FrequencyWeekly:
		return RecurrenceRule{Kind: RuleWeekly, Anchor: createdAt}, nil
	case FrequencyMonthly:
		return RecurrenceRule{Kind: RuleMonthly, Anchor: createdAt}, nil
	default:
		return RecurrenceRule{}, fmt.Errorf("%w for habit: %q", ErrInvalidFrequency, freq)
	}
}

// NewRoutineRule validates and builds a routine rule, expanding presets into
// their weekday sets. Only the specific kind takes days from the caller.
func NewRoutineRule(freq Frequency, days []Weekday) (RecurrenceRule, error) {
	switch freq {
	case FrequencyEveryday:
		return RecurrenceRule{Kind: RuleEveryday, Days: append([]Weekday(nil), AllWeekdays...)}, nil
	case FrequencyWeekdays:
		return RecurrenceRule{Kind: RuleWeekdays, Days: append([]Weekday(nil), WorkWeek...)}, nil
	case FrequencyWeekends:
		return RecurrenceRule{Kind: RuleWeekends, Days: append([]Weekday(nil), Weekend...)}, nil
	case FrequencySpecific:
		if len(days) == 0 {
			return RecurrenceRule{}, ErrNoWeekdays
		}
		normalized, err := normalizeWeekdays(days)
		if err != nil {
			return RecurrenceRule{}, err
		}
		return RecurrenceRule{Kind: RuleSpecificWeekdays, Days: normalized}, nil
	default:
		return RecurrenceRule{}, fmt.Errorf("%w for routine: %q", ErrInvalidFrequency, freq)
	}
}

// WeekdayScoped reports whether the rule is restricted to an explicit weekday set
func (r RecurrenceRule) WeekdayScoped() bool {
	switch r.Kind {
	case RuleDailyAnyDay, RuleWeekly, RuleMonthly:
		return false
	default:
		return len(r.Days) > 0
	}
}

// AppliesOn reports whether the rule schedules the calendar day of date.
func (r RecurrenceRule) AppliesOn(date time.Time) bool {
	var anchor time.Time
	if !r.Anchor.IsZero() {
		anchor = r.Anchor.In(date.Location())
		if DaysBetween(anchor, date) < 0 {
			return false
		}
	}

	switch r.Kind {
	case RuleDailyAnyDay:
		return true
	case RuleWeekly:
		return !anchor.IsZero() && WeekdayOf(date) == WeekdayOf(anchor)
	case RuleMonthly:
		// A month without the anchor's day of month never matches.
		return !anchor.IsZero() && date.Day() == anchor.Day()
	case RuleDailyWithWeekdays, RuleEveryday, RuleWeekdays, RuleWeekends, RuleSpecificWeekdays:
		return containsWeekday(r.Days, WeekdayOf(date))
	default:
		return false
	}
}
