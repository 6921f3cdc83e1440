// Package wire holds the row shape shared by the table-backed stores. The
// remote users_data table names the category lists in lowercase, so this is
// where the aggregate's camel-case keys are translated.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"daybook/internal/domain"
)

// Columns lists the list columns of users_data in a fixed order
var Columns = []string{
	"tasks",
	"shopping",
	"ideas",
	"notes",
	"calendar",
	"events",
	"habits",
	"routines",
	"customcategories",
	"shoppingcategories",
	"taskcategories",
	"habitcategories",
}

// Row is one users_data record with every list kept as raw JSON
type Row struct {
	UserID             string          `json:"user_id"`
	Tasks              json.RawMessage `json:"tasks"`
	Shopping           json.RawMessage `json:"shopping"`
	Ideas              json.RawMessage `json:"ideas"`
	Notes              json.RawMessage `json:"notes"`
	Calendar           json.RawMessage `json:"calendar"`
	Events             json.RawMessage `json:"events"`
	Habits             json.RawMessage `json:"habits"`
	Routines           json.RawMessage `json:"routines"`
	CustomCategories   json.RawMessage `json:"customcategories"`
	ShoppingCategories json.RawMessage `json:"shoppingcategories"`
	TaskCategories     json.RawMessage `json:"taskcategories"`
	HabitCategories    json.RawMessage `json:"habitcategories"`
	UpdatedAt          *time.Time      `json:"updated_at,omitempty"`
}

// Fields returns pointers to the list fields in Columns order
func (r *Row) Fields() []*json.RawMessage {
	return []*json.RawMessage{
		&r.Tasks,
		&r.Shopping,
		&r.Ideas,
		&r.Notes,
		&r.Calendar,
		&r.Events,
		&r.Habits,
		&r.Routines,
		&r.CustomCategories,
		&r.ShoppingCategories,
		&r.TaskCategories,
		&r.HabitCategories,
	}
}

func bindings(a *domain.Aggregate) []any {
	return []any{
		&a.Tasks,
		&a.Shopping,
		&a.Ideas,
		&a.Notes,
		&a.Calendar,
		&a.Events,
		&a.Habits,
		&a.Routines,
		&a.CustomCategories,
		&a.ShoppingCategories,
		&a.TaskCategories,
		&a.HabitCategories,
	}
}

// FromAggregate encodes every list of data into a row for userID
func FromAggregate(userID string, data *domain.Aggregate, updatedAt time.Time) (Row, error) {
	row := Row{UserID: userID}
	if !updatedAt.IsZero() {
		ts := updatedAt.UTC()
		row.UpdatedAt = &ts
	}

	fields := row.Fields()
	for i, v := range bindings(data) {
		raw, err := json.Marshal(v)
		if err != nil {
			return Row{}, fmt.Errorf("failed to encode %s: %w", Columns[i], err)
		}
		*fields[i] = raw
	}
	return row, nil
}

// Aggregate decodes the row. Missing or null columns become empty lists.
func (r *Row) Aggregate() (*domain.Aggregate, error) {
	data := &domain.Aggregate{}
	targets := bindings(data)
	for i, raw := range r.Fields() {
		if len(*raw) == 0 || bytes.Equal(*raw, []byte("null")) {
			continue
		}
		if err := json.Unmarshal(*raw, targets[i]); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", Columns[i], err)
		}
	}
	data.Normalize()
	return data, nil
}
