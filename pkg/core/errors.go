package core

import (
	"errors"
	"fmt"
)

// ErrNoSequence is returned for a cursor without an "i=" component.
var ErrNoSequence = errors.New("cursor has no i= component")

// FieldError reports a field that is present but malformed. It aborts
// report generation, unlike a missing field which is substituted.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("malformed %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
