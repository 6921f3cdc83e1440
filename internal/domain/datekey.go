package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout is the canonical day key format (YYYY-MM-DD)
const DateKeyLayout = "2006-01-02"

// Weekday is a three-letter lowercase weekday code (sun..sat)
type Weekday string

const (
	Sunday    Weekday = "sun"
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
)

// AllWeekdays lists every weekday code in time.Weekday order (Sunday first)
var AllWeekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WorkWeek and Weekend are the preset day sets used by routines
var (
	WorkWeek = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
	Weekend  = []Weekday{Saturday, Sunday}
)

// IsValid reports whether w is one of the seven weekday codes
func (w Weekday) IsValid() bool {
	return w.index() >= 0
}

func (w Weekday) index() int {
	for i, d := range AllWeekdays {
		if d == w {
			return i
		}
	}
	return -1
}

// ShortName returns the display form, e.g. "Mon"
func (w Weekday) ShortName() string {
	if !w.IsValid() {
		return string(w)
	}
	return strings.ToUpper(string(w[:1])) + string(w[1:])
}

// ParseWeekday accepts a weekday code or an English weekday name ("monday", "Mon")
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if w := Weekday(s); w.IsValid() {
		return w, nil
	}
	for i := range AllWeekdays {
		if s == strings.ToLower(time.Weekday(i).String()) {
			return AllWeekdays[i], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateKey returns the YYYY-MM-DD key of the calendar day t falls on
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// WeekdayOf returns the weekday code of t
func WeekdayOf(t time.Time) Weekday {
	return AllWeekdays[t.Weekday()]
}

// ParseDateKey parses a day key in loc. Anything after the first ten characters
// (a time-of-day suffix such as "T12:00:00") is ignored.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if len(key) > len(DateKeyLayout) {
		key = key[:len(DateKeyLayout)]
	}
	t, err := time.ParseInLocation(DateKeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", key)
	}
	return t, nil
}

// DaysBetween returns the number of calendar days from a to b (negative if b
// is before a). Time of day and DST transitions do not affect the result.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar date
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}

// normalizeWeekdays validates codes, drops duplicates and orders them sun..sat
func normalizeWeekdays(days []Weekday) ([]Weekday, error) {
	var seen [7]bool
	for _, d := range days {
		i := d.index()
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, d)
		}
		seen[i] = true
	}
	out := make([]Weekday, 0, len(days))
	for i, ok := range seen {
		if ok {
			out = append(out, AllWeekdays[i])
		}
	}
	return out, nil
}

func containsWeekday(days []Weekday, w Weekday) bool {
	for _, d := range days {
		if d == w {
			return true
		}
	}
	return false
}
