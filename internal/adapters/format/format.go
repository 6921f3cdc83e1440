// Package format renders computed schedule values as plain text for the
// CLI, the MCP tools and the clipboard
package format

import (
	"fmt"
	"strings"
	"time"

	"daybook/internal/application"
	"daybook/internal/domain"
)

// Strip symbols for DotStrip
const (
	DotDone        = "●"
	DotMissed      = "○"
	DotOffSchedule = "·"
)

// Agenda renders a day agenda, one section per kind
func Agenda(a *domain.Agenda) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Agenda for %s\n", a.Date)
	if a.IsEmpty() {
		sb.WriteString("Nothing scheduled.\n")
		return sb.String()
	}

	if len(a.Events) > 0 {
		sb.WriteString("\nEvents\n")
		for _, e := range a.Events {
			fmt.Fprintf(&sb, "  %s  %s", EventTime(e.Date), e.Text)
			if e.Location != "" {
				fmt.Fprintf(&sb, " @ %s", e.Location)
			}
			sb.WriteByte('\n')
		}
	}
	if len(a.Tasks) > 0 {
		sb.WriteString("\nTasks\n")
		for _, t := range a.Tasks {
			fmt.Fprintf(&sb, "  %s %s\n", Check(t.Completed), t.Text)
		}
	}
	if len(a.Routines) > 0 {
		sb.WriteString("\nRoutines\n")
		for _, r := range a.Routines {
			fmt.Fprintf(&sb, "  %s-%s  %s\n", r.StartTime, r.EndTime, r.Text)
		}
	}
	if len(a.Habits) > 0 {
		sb.WriteString("\nHabits\n")
		for _, h := range a.Habits {
			fmt.Fprintf(&sb, "  %s %s", Check(h.Completed), h.Habit.Text)
			if len(h.Habit.SubHabits) > 0 && !h.Completed {
				fmt.Fprintf(&sb, " (%d%%)", h.Progress)
			}
			if h.Habit.Streak > 0 {
				fmt.Fprintf(&sb, "  streak %d", h.Habit.Streak)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// HabitStats renders one line per habit plus its 7-day strip
func HabitStats(stats []application.HabitStats) string {
	if len(stats) == 0 {
		return "No habits.\n"
	}

	var sb strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&sb, "%s  %s  [%s]  streak %d  rate %d%%  %s\n",
			s.HabitID, s.Text, s.Schedule, s.Streak, s.Rate, DotStrip(s.Last7Days))
	}
	return sb.String()
}

// DotStrip renders days oldest first
func DotStrip(days []domain.DayStatus) string {
	var sb strings.Builder
	for _, d := range days {
		switch {
		case d.IsCompleted:
			sb.WriteString(DotDone)
		case d.IsScheduled:
			sb.WriteString(DotMissed)
		default:
			sb.WriteString(DotOffSchedule)
		}
	}
	return sb.String()
}

// Month renders the active days of a month view, skipping empty days
func Month(days []domain.DayActivity) string {
	var sb strings.Builder
	for _, d := range days {
		if len(d.Kinds) == 0 {
			continue
		}
		kinds := make([]string, len(d.Kinds))
		for i, k := range d.Kinds {
			kinds[i] = string(k)
		}
		fmt.Fprintf(&sb, "%s  %s\n", d.Date, strings.Join(kinds, ", "))
	}
	if sb.Len() == 0 {
		return "No activity.\n"
	}
	return sb.String()
}

// Check renders a completion box
func Check(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// EventTime returns the HH:MM part of an event date, or "all day"
func EventTime(date string) string {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("15:04")
		}
	}
	return "all day"
}
