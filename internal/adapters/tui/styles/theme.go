package styles

import (
	"github.com/charmbracelet/lipgloss"

	"daybook/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Activity colors, matching the month dots
	EventColor   = lipgloss.Color("#3B82F6") // Blue
	TaskColor    = lipgloss.Color("#F97316") // Orange
	HabitColor   = lipgloss.Color("#22C55E") // Green
	RoutineColor = lipgloss.Color("#A855F7") // Violet

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Section = lipgloss.NewStyle().
		Bold(true).
		Underline(true)

	// Rows
	Row = lipgloss.NewStyle()

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowDone = lipgloss.NewStyle().
		Foreground(Muted).
		Strikethrough(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// KindColor returns the color used for an activity kind
func KindColor(kind domain.ActivityKind) lipgloss.Color {
	switch kind {
	case domain.ActivityEvents:
		return EventColor
	case domain.ActivityTasks:
		return TaskColor
	case domain.ActivityHabits:
		return HabitColor
	case domain.ActivityRoutines:
		return RoutineColor
	default:
		return Primary
	}
}

// KindLabel renders a section label in its activity color
func KindLabel(kind domain.ActivityKind, label string) string {
	return Section.Foreground(KindColor(kind)).Render(label)
}
