package application

import "daybook/internal/domain"

// Re-export domain types for use by adapters
type (
	Aggregate   = domain.Aggregate
	Agenda      = domain.Agenda
	DayActivity = domain.DayActivity
	DayStatus   = domain.DayStatus
	Habit       = domain.Habit
	Routine     = domain.Routine
	Category    = domain.Category
)

// HabitStats bundles the computed values shown next to a habit
type HabitStats struct {
	HabitID   string             `json:"id"`
	Text      string             `json:"text"`
	Category  string             `json:"category,omitempty"`
	Schedule  string             `json:"schedule"`
	Streak    int                `json:"streak"`
	Rate      int                `json:"completionRate"`
	Last7Days []domain.DayStatus `json:"last7Days"`
	Progress  int                `json:"progressToday"`
}
