// Package types
package types

import (
	"errors"
	"fmt"
)

var ErrIndexConflict = errors.New("index conflict")
var ErrConstraintViolation = errors.New("constraint violation")
var ErrConnection = errors.New("connection error")

// IndexError reports which index of which collection could not be created.
// Kind is one of the sentinels above, or nil when the cause is unclassified.
type IndexError struct {
	Collection string
	Index      string
	Kind       error
	Err        error
}

func (e *IndexError) Error() string {
	if e.Kind == nil {
		return fmt.Sprintf("create index %s on %s: %v", e.Index, e.Collection, e.Err)
	}
	return fmt.Sprintf("create index %s on %s: %v: %v", e.Index, e.Collection, e.Kind, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

func (e *IndexError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}
