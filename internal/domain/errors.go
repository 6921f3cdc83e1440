package domain

import "errors"

var (
	ErrInvalidWeekday    = errors.New("invalid weekday")
	ErrNoWeekdays        = errors.New("at least one day must be selected")
	ErrInvalidFrequency  = errors.New("invalid frequency")
	ErrNotScheduled      = errors.New("not scheduled on this day")
	ErrFutureDay         = errors.New("cannot complete a day in the future")
	ErrSubHabitIndex     = errors.New("sub-habit index out of range")
	ErrInvalidTimeOfDay  = errors.New("invalid time of day")
	ErrDuplicateCategory = errors.New("category already exists")
)
