package server

import (
	"strconv"
	"strings"
)

// StringParam returns params[name] as a string, or def when absent or empty.
func StringParam(params map[string]any, name, def string) string {
	v, ok := params[name]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// IntParam returns params[name] as an int. JSON numbers arrive as float64;
// numeric strings are accepted too.
func IntParam(params map[string]any, name string, def int) int {
	v, ok := params[name]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return def
}
