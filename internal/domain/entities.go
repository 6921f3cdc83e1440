package domain

import (
	"slices"
	"strings"
	"time"
)

// Record is implemented by every entity kept in the aggregate
type Record interface {
	RecordID() string
	Created() time.Time
}

// Task is a to-do item, optionally dated and categorized
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Date      string    `json:"date,omitempty"` // YYYY-MM-DDT12:00:00 when set
	Category  string    `json:"category,omitempty"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShoppingItem is an entry of the to-buy list
type ShoppingItem struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  string    `json:"category,omitempty"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Idea is a titled free-text idea
type Idea struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Note is a titled note
type Note struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Event is a dated appointment. Date is a local date-time string (YYYY-MM-DDTHH:MM).
type Event struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Date      string    `json:"date"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CalendarEntry is a plain dated entry of the legacy calendar list
type CalendarEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t Task) RecordID() string   { return t.ID }
func (t Task) Created() time.Time { return t.CreatedAt }

func (s ShoppingItem) RecordID() string   { return s.ID }
func (s ShoppingItem) Created() time.Time { return s.CreatedAt }

func (i Idea) RecordID() string   { return i.ID }
func (i Idea) Created() time.Time { return i.CreatedAt }

func (n Note) RecordID() string   { return n.ID }
func (n Note) Created() time.Time { return n.CreatedAt }

func (e Event) RecordID() string   { return e.ID }
func (e Event) Created() time.Time { return e.CreatedAt }

func (c CalendarEntry) RecordID() string   { return c.ID }
func (c CalendarEntry) Created() time.Time { return c.CreatedAt }

// OnDay reports whether the task's date falls on the given day key
func (t Task) OnDay(key string) bool {
	return t.Date != "" && strings.HasPrefix(t.Date, key)
}

// OnDay reports whether the event's date falls on the given day key
func (e Event) OnDay(key string) bool {
	return e.Date != "" && strings.HasPrefix(e.Date, key)
}

// TaskDate converts a date-only input into the stored task form. A noon time
// keeps the day stable when the value is later read in another time zone.
func TaskDate(key string) string {
	if key == "" {
		return ""
	}
	if len(key) > len(DateKeyLayout) {
		key = key[:len(DateKeyLayout)]
	}
	return key + "T12:00:00"
}

// SortOrder selects the direction of SortByCreated
type SortOrder int

const (
	NewestFirst SortOrder = iota
	OldestFirst
)

// SortByCreated orders records by creation time. Ties keep their relative order.
func SortByCreated[T Record](items []T, order SortOrder) {
	slices.SortStableFunc(items, func(a, b T) int {
		c := a.Created().Compare(b.Created())
		if order == NewestFirst {
			return -c
		}
		return c
	})
}

// SortEventsByTime orders events by their local date-time, which sorts
// lexically. Events at the same time stay oldest first.
func SortEventsByTime(events []Event) {
	SortByCreated(events, OldestFirst)
	slices.SortStableFunc(events, func(a, b Event) int {
		return strings.Compare(a.Date, b.Date)
	})
}

// IndexByID returns the position of the record with the given id, or -1
func IndexByID[T Record](items []T, id string) int {
	return slices.IndexFunc(items, func(r T) bool { return r.RecordID() == id })
}

// RemoveByID deletes the record with the given id. The boolean reports
// whether anything was removed.
func RemoveByID[T Record](items []T, id string) ([]T, bool) {
	i := IndexByID(items, id)
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

// Category filter values understood by MatchesCategory
const (
	FilterAll        = "all"
	FilterNoCategory = "no-category"
)

// MatchesCategory applies a list filter to an entity's category label
func MatchesCategory(category, filter string) bool {
	switch filter {
	case "", FilterAll:
		return true
	case FilterNoCategory:
		return category == ""
	default:
		return category == filter
	}
}
