package services

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	"nellis/internal/models"
)

// Form is the flat field map a page form posts: scalar values as strings,
// list fields as []string.
type Form map[string]any

// recordToForm flattens a record into its edit-form representation. Numbers
// and typed enums become strings, lists are copied.
func recordToForm[T any](rec T) (Form, error) {
	raw := make(map[string]any)
	if err := mapstructure.Decode(rec, &raw); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	form := make(Form, len(raw))
	for k, v := range raw {
		form[k] = formValue(v)
	}
	return form, nil
}

// formToRecord decodes a form into a record. Input is weakly typed so "2021"
// decodes into an int field; unknown keys are rejected.
func formToRecord[T any](form Form) (T, error) {
	var rec T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &rec,
	})
	if err != nil {
		return rec, err
	}
	if err := dec.Decode(map[string]any(form)); err != nil {
		return rec, err
	}
	return rec, nil
}

// fieldOrder returns the form keys of a record type in declaration order.
func fieldOrder(rec any) []string {
	t := reflect.TypeOf(rec)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" {
			name = f.Name
		}
		if name == "-" {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

func formValue(v any) any {
	switch val := v.(type) {
	case nil:
		return ""
	case []string:
		return slices.Clone(val)
	case string:
		return val
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return cast.ToString(v)
}

// fieldString renders any form value as display text.
func fieldString(v any) string {
	switch val := v.(type) {
	case []string:
		return models.JoinList(val)
	case []any:
		return models.JoinList(cast.ToStringSlice(val))
	}
	return cast.ToString(formValue(v))
}

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
