package application

import (
	"errors"
	"fmt"
	"strings"

	"daybook/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "startTime" -> "start time")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"startTime":    "start time",
		"endTime":      "end time",
		"selectedDays": "selected days",
		"subHabit":     "sub-habit",
		"dateKey":      "date",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateDate checks that value is a YYYY-MM-DD key, optionally followed by a time
func ValidateDate(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if _, err := domain.ParseDateKey(value, nil); err != nil {
		return &ValidationError{Field: fieldName, Message: err.Error()}
	}
	return nil
}

// ValidateOptionalDate is ValidateDate for fields that may be left empty
func ValidateOptionalDate(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return ValidateDate(fieldName, value)
}

// ValidateTimeOfDay checks an HH:MM field
func ValidateTimeOfDay(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if _, err := domain.ParseTimeOfDay(value); err != nil {
		return &ValidationError{Field: fieldName, Message: fmt.Sprintf("expected HH:MM, got: %s", value)}
	}
	return nil
}

// FromDomain converts domain rule violations into a ValidationError for field.
// Other errors are returned unchanged.
func FromDomain(fieldName string, err error) error {
	if err == nil {
		return nil
	}
	for _, target := range []error{
		domain.ErrInvalidWeekday,
		domain.ErrNoWeekdays,
		domain.ErrInvalidFrequency,
		domain.ErrNotScheduled,
		domain.ErrFutureDay,
		domain.ErrSubHabitIndex,
		domain.ErrInvalidTimeOfDay,
		domain.ErrDuplicateCategory,
	} {
		if errors.Is(err, target) {
			return &ValidationError{Field: fieldName, Message: err.Error()}
		}
	}
	return err
}
