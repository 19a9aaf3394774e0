package models

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// NormalizeList turns a free-text list value into trimmed, non-empty entries.
// It accepts a comma separated string, a []string or a []any; every element
// is split on commas as well, so normalizing an already normalized list is a
// no-op.
func NormalizeList(v any) ([]string, error) {
	var parts []string
	switch val := v.(type) {
	case nil:
	case string:
		parts = strings.Split(val, ",")
	case []string:
		for _, s := range val {
			parts = append(parts, strings.Split(s, ",")...)
		}
	case []any:
		for _, item := range val {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, fmt.Errorf("list element: %w", err)
			}
			parts = append(parts, strings.Split(s, ",")...)
		}
	default:
		return nil, fmt.Errorf("unsupported list value of type %T", v)
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// JoinList is the inverse of NormalizeList for display and edit forms.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
