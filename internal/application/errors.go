package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrPersistence = errors.New("persistence failed")
	ErrNoIdentity  = errors.New("no user identity")
)

// ValidationError represents a rejected input. Nothing is mutated when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PersistError reports a failed save. The in-memory change it refers to has
// already been applied and is not rolled back.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s applied but not saved: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func (e *PersistError) Is(target error) bool {
	return target == ErrPersistence
}
