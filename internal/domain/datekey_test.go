package domain

import (
	"errors"
	"testing"
	"time"
)

func TestDateKey_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 3, 10, 0, 5, 0, 0, time.UTC)
	night := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)

	if DateKey(morning) != DateKey(night) {
		t.Errorf("expected same key, got %s and %s", DateKey(morning), DateKey(night))
	}
	if !SameDay(morning, night) {
		t.Error("expected SameDay to be true")
	}
	if got := DaysBetween(morning, night); got != 0 {
		t.Errorf("expected 0 days between, got %d", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2024, 1, 1), date(2024, 1, 1), 0},
		{"next day", date(2024, 1, 1), date(2024, 1, 2), 1},
		{"backwards", date(2024, 1, 8), date(2024, 1, 1), -7},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 2},
		{"late to early", time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysBetween_DSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	before := time.Date(2024, 3, 30, 12, 0, 0, 0, loc)
	after := time.Date(2024, 3, 31, 0, 30, 0, 0, loc)

	if got := DaysBetween(before, after); got != 1 {
		t.Errorf("expected 1 day across DST change, got %d", got)
	}
}

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"2024-05-17", "2024-05-17", false},
		{"2024-05-17T12:00:00", "2024-05-17", false},
		{"2024-05-17T23:45", "2024-05-17", false},
		{"17/05/2024", "", true},
		{"", "", true},
		{"2024-02-30", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateKey(tt.input, time.UTC)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if DateKey(got) != tt.want {
				t.Errorf("got %s, want %s", DateKey(got), tt.want)
			}
		})
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    Weekday
		wantErr bool
	}{
		{"mon", Monday, false},
		{"Sat", Saturday, false},
		{"thursday", Thursday, false},
		{" Sunday ", Sunday, false},
		{"sunshine", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWeekday) {
					t.Errorf("expected ErrInvalidWeekday, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2024-01-01 was a Monday
	start := date(2024, 1, 1)
	want := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

	for i, w := range want {
		if got := WeekdayOf(start.AddDate(0, 0, i)); got != w {
			t.Errorf("day %d: got %s, want %s", i, got, w)
		}
	}
}

func TestNormalizeWeekdays(t *testing.T) {
	got, err := normalizeWeekdays([]Weekday{Friday, Monday, Friday, Sunday})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Weekday{Sunday, Monday, Friday}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	if _, err := normalizeWeekdays([]Weekday{"xyz"}); !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("expected ErrInvalidWeekday, got %v", err)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
