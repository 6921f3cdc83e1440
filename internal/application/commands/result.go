package commands

import (
	"fmt"
	"strings"

	"daybook/internal/application"
)

// Result describes the outcome of a mutating command
type Result struct {
	ID      string
	Changed bool
	Message string
}

// unchanged is returned for ids that match nothing. Unknown ids are not errors.
func unchanged(kind, id string) *Result {
	return &Result{ID: id, Message: fmt.Sprintf("No %s with ID %s", kind, id)}
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &application.ValidationError{Field: "id", Message: "ID is required"}
	}
	return nil
}
