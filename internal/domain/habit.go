package domain

import (
	"math"
	"slices"
	"strings"
	"time"
)

// Habit is a recurring activity with a completion history.
//
// CompletionDates is a sorted, de-duplicated list of day keys. When SubHabits is
// non-empty a day is completed exactly when every sub-habit is checked for it.
// Streak is a cached value refreshed on every completion change.
type Habit struct {
	ID                  string           `json:"id"`
	Text                string           `json:"text"`
	Category            string           `json:"category,omitempty"`
	Frequency           Frequency        `json:"frequency"`
	SelectedDays        []Weekday        `json:"selectedDays"`
	SubHabits           []string         `json:"subHabits"`
	Streak              int              `json:"streak"`
	LastCompleted       string           `json:"lastCompleted,omitempty"`
	CompletionDates     []string         `json:"completionDates"`
	SubHabitCompletions map[string][]int `json:"subHabitCompletions"`
	CreatedAt           time.Time        `json:"createdAt"`
}

func (h Habit) RecordID() string   { return h.ID }
func (h Habit) Created() time.Time { return h.CreatedAt }

// DayStatus describes one day of a habit's recent history
type DayStatus struct {
	DateKey     string  `json:"date"`
	DayName     string  `json:"dayName"`
	IsCompleted bool    `json:"isCompleted"`
	IsScheduled bool    `json:"isScheduled"`
	Weekday     Weekday `json:"-"`
}

// Rule derives the recurrence rule from the stored frequency fields. A daily
// habit without selected days applies on every day.
func (h *Habit) Rule() RecurrenceRule {
	switch h.Frequency {
	case FrequencyDaily:
		if len(h.SelectedDays) == 0 {
			return RecurrenceRule{Kind: RuleDailyAnyDay, Anchor: h.CreatedAt}
		}
		return RecurrenceRule{Kind: RuleDailyWithWeekdays, Days: h.SelectedDays, Anchor: h.CreatedAt}
	case FrequencyWeekly:
		return RecurrenceRule{Kind: RuleWeekly, Anchor: h.CreatedAt}
	case FrequencyMonthly:
		return RecurrenceRule{Kind: RuleMonthly, Anchor: h.CreatedAt}
	default:
		return RecurrenceRule{Anchor: h.CreatedAt}
	}
}

// ScheduledOn reports whether the habit applies on the calendar day of date
func (h *Habit) ScheduledOn(date time.Time) bool {
	return h.Rule().AppliesOn(date)
}

// CompletedOn reports whether the habit is marked done for the day key
func (h *Habit) CompletedOn(key string) bool {
	_, found := slices.BinarySearch(h.CompletionDates, key)
	return found
}

// ToggleDay flips the completion of the day key. Days after today are rejected,
// as are days a weekday-scoped habit is not scheduled on. The streak is recomputed against today.
func (h *Habit) ToggleDay(key string, today time.Time) error {
	day, err := ParseDateKey(key, today.Location())
	if err != nil {
		return err
	}
	if err := h.checkScheduled(day, today); err != nil {
		return err
	}
	key = DateKey(day)

	if h.CompletedOn(key) {
		h.unmarkDay(key)
	} else {
		h.markDay(key)
	}
	h.RefreshStreak(today)
	return nil
}

// ToggleSubHabit flips sub-habit index for the day key and keeps the day's
// completion in line with whether all sub-habits are now checked.
func (h *Habit) ToggleSubHabit(key string, index int, today time.Time) error {
	if index < 0 || index >= len(h.SubHabits) {
		return ErrSubHabitIndex
	}
	day, err := ParseDateKey(key, today.Location())
	if err != nil {
		return err
	}
	if err := h.checkScheduled(day, today); err != nil {
		return err
	}
	key = DateKey(day)

	if h.SubHabitCompletions == nil {
		h.SubHabitCompletions = make(map[string][]int)
	}
	done := h.SubHabitCompletions[key]
	if i := slices.Index(done, index); i >= 0 {
		done = slices.Delete(done, i, i+1)
	} else {
		done = append(done, index)
	}
	h.SubHabitCompletions[key] = done

	if h.completedSubHabits(key) == len(h.SubHabits) {
		h.markDay(key)
	} else {
		h.unmarkDay(key)
	}
	h.RefreshStreak(today)
	return nil
}

// SetSubHabits replaces the sub-habit list and re-derives the completion of
// every day that has sub-habit checks. Days completed before any sub-habit was
// tracked count as fully checked.
func (h *Habit) SetSubHabits(items []string, today time.Time) {
	h.SubHabits = items
	if len(items) == 0 {
		h.SubHabitCompletions = map[string][]int{}
		h.RefreshStreak(today)
		return
	}
	if h.SubHabitCompletions == nil {
		h.SubHabitCompletions = make(map[string][]int)
	}

	for key, done := range h.SubHabitCompletions {
		done = slices.DeleteFunc(done, func(i int) bool { return i < 0 || i >= len(items) })
		h.SubHabitCompletions[key] = done
		i, found := slices.BinarySearch(h.CompletionDates, key)
		switch {
		case len(done) == len(items) && !found:
			h.CompletionDates = slices.Insert(h.CompletionDates, i, key)
		case len(done) != len(items) && found:
			h.CompletionDates = slices.Delete(h.CompletionDates, i, i+1)
		}
	}
	for _, key := range h.CompletionDates {
		if _, tracked := h.SubHabitCompletions[key]; !tracked {
			all := make([]int, len(items))
			for i := range all {
				all[i] = i
			}
			h.SubHabitCompletions[key] = all
		}
	}
	h.RefreshStreak(today)
}

func (h *Habit) checkScheduled(day, today time.Time) error {
	if DaysBetween(day, today) < 0 {
		return ErrFutureDay
	}
	rule := h.Rule()
	if rule.WeekdayScoped() && !rule.AppliesOn(day) {
		return ErrNotScheduled
	}
	return nil
}

func (h *Habit) completedSubHabits(key string) int {
	n := 0
	for _, i := range h.SubHabitCompletions[key] {
		if i >= 0 && i < len(h.SubHabits) {
			n++
		}
	}
	return n
}

func (h *Habit) markDay(key string) {
	i, found := slices.BinarySearch(h.CompletionDates, key)
	if !found {
		h.CompletionDates = slices.Insert(h.CompletionDates, i, key)
	}
	h.LastCompleted = key
}

func (h *Habit) unmarkDay(key string) {
	if i, found := slices.BinarySearch(h.CompletionDates, key); found {
		h.CompletionDates = slices.Delete(h.CompletionDates, i, i+1)
	}
}

// RefreshStreak recomputes and caches the streak
func (h *Habit) RefreshStreak(today time.Time) {
	h.Streak = h.ComputeStreak(today)
}

// ComputeStreak walks completion dates from the most recent backwards. The
// cursor starts at today and moves to the day before each consumed date.
// Weekday-scoped habits tolerate gaps of up to 7 days between the cursor and the
// next completion (negative gaps included); other habits only same-day or
// consecutive ones, so a completion after today ends the walk.
func (h *Habit) ComputeStreak(today time.Time) int {
	if len(h.CompletionDates) == 0 {
		return 0
	}

	dates := slices.Clone(h.CompletionDates)
	slices.Sort(dates)
	slices.Reverse(dates)

	maxGap := 1
	if h.Rule().WeekdayScoped() {
		maxGap = 7
	}

	cursor := Day(today)
	streak := 0
	for _, key := range dates {
		completed, err := ParseDateKey(key, today.Location())
		if err != nil {
			break
		}
		gap := DaysBetween(completed, cursor)
		if gap > maxGap || (maxGap == 1 && gap < 0) {
			break
		}
		streak++
		cursor = completed.AddDate(0, 0, -1)
	}
	return streak
}

// CompletionRate returns the percentage of expected days that were completed,
// capped at 100.
func (h *Habit) CompletionRate(now time.Time) int {
	if len(h.CompletionDates) == 0 {
		return 0
	}
	daysSinceCreation := math.Ceil(now.Sub(h.CreatedAt).Hours() / 24)
	if daysSinceCreation <= 0 {
		return 0
	}

	expected := daysSinceCreation
	rule := h.Rule()
	if rule.WeekdayScoped() && len(rule.Days) < 7 {
		expected = math.Floor(daysSinceCreation / 7 * float64(len(rule.Days)))
	}
	if expected <= 0 {
		// Nothing was due yet, so any completion counts as full.
		return 100
	}

	rate := math.Round(float64(len(h.CompletionDates)) / expected * 100)
	return int(math.Min(100, rate))
}

// Last7Days returns today and the six days before it, oldest first
func (h *Habit) Last7Days(today time.Time) []DayStatus {
	days := make([]DayStatus, 0, 7)
	for i := 6; i >= 0; i-- {
		date := Day(today).AddDate(0, 0, -i)
		key := DateKey(date)
		wd := WeekdayOf(date)
		days = append(days, DayStatus{
			DateKey:     key,
			DayName:     wd.ShortName(),
			IsCompleted: h.CompletedOn(key),
			IsScheduled: h.ScheduledOn(date),
			Weekday:     wd,
		})
	}
	return days
}

// Progress returns the percentage of the day's sub-habits that are checked. A
// habit without sub-habits is either 0 or 100.
func (h *Habit) Progress(key string) int {
	if len(h.SubHabits) == 0 {
		if h.CompletedOn(key) {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(h.completedSubHabits(key)) / float64(len(h.SubHabits)) * 100))
}

// SubHabitDone reports whether sub-habit index is checked for the day key
func (h *Habit) SubHabitDone(key string, index int) bool {
	return slices.Contains(h.SubHabitCompletions[key], index)
}

// ScheduleLabel describes the habit's schedule for display
func (h *Habit) ScheduleLabel() string {
	rule := h.Rule()
	switch {
	case rule.Kind == RuleDailyWithWeekdays && len(rule.Days) < 7:
		names := make([]string, len(rule.Days))
		for i, d := range rule.Days {
			names[i] = d.ShortName()
		}
		return strings.Join(names, ", ")
	case h.Frequency == FrequencyDaily:
		return "Every day"
	case h.Frequency == "":
		return ""
	default:
		s := string(h.Frequency)
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// normalize fills nil collections and restores the sorted completion order
func (h *Habit) normalize() {
	if h.SelectedDays == nil {
		h.SelectedDays = []Weekday{}
	}
	if h.SubHabits == nil {
		h.SubHabits = []string{}
	}
	if h.CompletionDates == nil {
		h.CompletionDates = []string{}
	}
	if !slices.IsSorted(h.CompletionDates) {
		slices.Sort(h.CompletionDates)
	}
	h.CompletionDates = slices.Compact(h.CompletionDates)
	if h.SubHabitCompletions == nil {
		h.SubHabitCompletions = map[string][]int{}
	}
}
