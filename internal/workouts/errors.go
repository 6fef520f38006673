package workouts

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	// ErrUnknownOwner is returned when a record references a user that no longer exists.
	ErrUnknownOwner = errors.New("workout owner does not exist")
)

// ValidationError reports the form field that could not be accepted.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func newValidationError(field, value string, err error) *ValidationError {
	return &ValidationError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s: %q: %s", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
