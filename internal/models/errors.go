package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// ValidationError reports a missing or invalid field. Fields lists every
// offending field name, sorted.
type ValidationError struct {
	Entity string
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Entity != "" {
		b.WriteString(e.Entity)
		b.WriteString(": ")
	}
	if len(e.Fields) > 0 {
		b.WriteString(strings.Join(e.Fields, ", "))
		b.WriteString(": ")
	}
	if e.Reason != "" {
		b.WriteString(e.Reason)
	} else {
		b.WriteString(ErrValidation.Error())
	}
	return b.String()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports an operation on an id absent from the collection.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", strings.ToLower(e.Entity), e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NewValidationError(entity, field, reason string) *ValidationError {
	e := &ValidationError{Entity: entity, Reason: reason}
	if field != "" {
		e.Fields = []string{field}
	}
	return e
}
