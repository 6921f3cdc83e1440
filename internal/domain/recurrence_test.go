package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewRoutineRule_SpecificRequiresDays(t *testing.T) {
	_, err := NewRoutineRule(FrequencySpecific, nil)
	if !errors.Is(err, ErrNoWeekdays) {
		t.Errorf("expected ErrNoWeekdays, got %v", err)
	}
}

func TestNewHabitRule_DailyRequiresDays(t *testing.T) {
	_, err := NewHabitRule(FrequencyDaily, []Weekday{}, date(2024, 1, 1))
	if !errors.Is(err, ErrNoWeekdays) {
		t.Errorf("expected ErrNoWeekdays, got %v", err)
	}
}

func TestNewHabitRule_RejectsRoutineFrequency(t *testing.T) {
	_, err := NewHabitRule(FrequencyWeekends, nil, date(2024, 1, 1))
	if !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestNewRoutineRule_ExpandsPresets(t *testing.T) {
	tests := []struct {
		freq Frequency
		want []Weekday
	}{
		{FrequencyEveryday, AllWeekdays},
		{FrequencyWeekdays, WorkWeek},
		{FrequencyWeekends, Weekend},
	}

	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			rule, err := NewRoutineRule(tt.freq, []Weekday{Monday})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rule.Days) != len(tt.want) {
				t.Fatalf("got %v, want %v", rule.Days, tt.want)
			}
			for i := range tt.want {
				if rule.Days[i] != tt.want[i] {
					t.Errorf("got %v, want %v", rule.Days, tt.want)
				}
			}
		})
	}
}

func TestRecurrenceRule_AppliesOn(t *testing.T) {
	// Anchor: Wednesday 2024-01-31 at 18:30
	anchor := time.Date(2024, 1, 31, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		rule RecurrenceRule
		date time.Time
		want bool
	}{
		{"any day on anchor day", RecurrenceRule{Kind: RuleDailyAnyDay, Anchor: anchor}, date(2024, 1, 31), true},
		{"any day before anchor", RecurrenceRule{Kind: RuleDailyAnyDay, Anchor: anchor}, date(2024, 1, 30), false},
		{"explicit weekday match", RecurrenceRule{Kind: RuleDailyWithWeekdays, Days: []Weekday{Friday}, Anchor: anchor}, date(2024, 2, 2), true},
		{"explicit weekday miss", RecurrenceRule{Kind: RuleDailyWithWeekdays, Days: []Weekday{Friday}, Anchor: anchor}, date(2024, 2, 3), false},
		{"explicit weekday before anchor", RecurrenceRule{Kind: RuleDailyWithWeekdays, Days: []Weekday{Friday}, Anchor: anchor}, date(2024, 1, 26), false},
		{"weekly same weekday", RecurrenceRule{Kind: RuleWeekly, Anchor: anchor}, date(2024, 2, 7), true},
		{"weekly other weekday", RecurrenceRule{Kind: RuleWeekly, Anchor: anchor}, date(2024, 2, 8), false},
		{"monthly same day", RecurrenceRule{Kind: RuleMonthly, Anchor: anchor}, date(2024, 3, 31), true},
		{"monthly short month never matches", RecurrenceRule{Kind: RuleMonthly, Anchor: anchor}, date(2024, 2, 29), false},
		{"monthly other day", RecurrenceRule{Kind: RuleMonthly, Anchor: anchor}, date(2024, 4, 30), false},
		{"weekends saturday", RecurrenceRule{Kind: RuleWeekends, Days: Weekend}, date(2024, 1, 6), true},
		{"weekdays saturday", RecurrenceRule{Kind: RuleWeekdays, Days: WorkWeek}, date(2024, 1, 6), false},
		{"everyday unanchored far past", RecurrenceRule{Kind: RuleEveryday, Days: AllWeekdays}, date(1999, 12, 31), true},
		{"unknown kind", RecurrenceRule{Kind: "fortnightly"}, date(2024, 2, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.AppliesOn(tt.date); got != tt.want {
				t.Errorf("AppliesOn(%s) = %v, want %v", DateKey(tt.date), got, tt.want)
			}
		})
	}
}

func TestRecurrenceRule_WeekdayScoped(t *testing.T) {
	tests := []struct {
		rule RecurrenceRule
		want bool
	}{
		{RecurrenceRule{Kind: RuleDailyWithWeekdays, Days: []Weekday{Monday}}, true},
		{RecurrenceRule{Kind: RuleDailyAnyDay}, false},
		{RecurrenceRule{Kind: RuleWeekly}, false},
		{RecurrenceRule{Kind: RuleMonthly}, false},
		{RecurrenceRule{Kind: RuleSpecificWeekdays, Days: []Weekday{Monday}}, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.rule.Kind), func(t *testing.T) {
			if got := tt.rule.WeekdayScoped(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFrequency(t *testing.T) {
	if f, err := ParseFrequency(" Weekly "); err != nil || f != FrequencyWeekly {
		t.Errorf("got %q, %v", f, err)
	}
	if _, err := ParseFrequency("hourly"); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("expected ErrInvalidFrequency, got %v", err)
	}
}
