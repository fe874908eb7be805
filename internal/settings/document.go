// Package settings persists the flat key-value snapshot of form values as a
// JSON document on disk.
package settings

import (
	"strconv"
	"strings"
)

// Document is a flat mapping from option key to stored value: a string for
// text and dropdown options, an int (0/1) for checkboxes. Values read back
// from JSON arrive as string or float64; the accessors below normalize both
// representations.
type Document map[string]any

// String returns the stored value for key rendered as text, or "" when the
// key is absent.
func (d Document) String(key string) string {
	v, ok := d[key]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// Bool reports whether the stored value for key is truthy. Absent and empty
// values are false.
func (d Document) Bool(key string) bool {
	v, ok := d[key]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case int:
		return t != 0
	case float64:
		return t != 0
	case string:
		s := strings.TrimSpace(t)
		return s != "" && s != "0"
	default:
		return false
	}
}
