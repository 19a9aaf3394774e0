package services

import (
	"fmt"
	"slices"
	"time"

	"nellis/internal/models"
)

type Column struct {
	Field  string
	Header string
}

// Transitions maps a current enum value to the values it may move to. A
// value without an entry is terminal.
type Transitions map[string][]string

func (t Transitions) Allows(from, to string) bool {
	if from == to {
		return true
	}
	return slices.Contains(t[from], to)
}

type Messages struct {
	Created       string
	Received      string
	Updated       string
	Deleted       string
	ConfirmDelete string
	// Status formats the SetField notification; nil means "Status updated to <value>".
	Status func(value string) string
}

func (m Messages) status(value string) string {
	if m.Status != nil {
		return m.Status(value)
	}
	return fmt.Sprintf("Status updated to %s", value)
}

type Intake struct {
	Required []string
	// Set is applied unconditionally to every received record.
	Set map[string]func(now time.Time) string
}

// EntitySchema describes how a page's records are validated, searched,
// displayed and aggregated.
type EntitySchema[T models.Record] struct {
	Name       string
	Title      string
	Noun       string
	Aliases    []string
	Searchable []string
	Columns    []Column
	Required   []string
	ListFields []string
	Enums      map[string][]string
	// Formats holds extra gookit/validate rules per field.
	Formats map[string]string
	// Defaults fill blank fields on create only.
	Defaults map[string]func(now time.Time) string
	// Preserved fields are set on create and keep their value on update.
	Preserved []string
	// Computed fields are derived at read time and never stored.
	Computed map[string]func(rec T, now time.Time) string
	// StatusFields may be changed through SetField.
	StatusFields []string
	Transitions  map[string]Transitions
	// Editable enables the admin create and update paths.
	Editable bool
	Intake   *Intake
	Messages Messages
}

func (s *EntitySchema[T]) isListField(field string) bool {
	return slices.Contains(s.ListFields, field)
}
