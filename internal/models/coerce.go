package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceFloat converts a loosely-typed payload value to a float, returning
// nil when the value is absent or unparseable. Clients send numbers,
// numeric strings, and json.Number interchangeably; coercion failure is
// treated as "not provided" rather than an error.
func CoerceFloat(v any) *float64 {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		return &x
	case float32:
		f := float64(x)
		return &f
	case int:
		f := float64(x)
		return &f
	case int64:
		f := float64(x)
		return &f
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil
		}
		return &f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// CoerceString converts a payload value to a string, returning "" for
// absent or non-string values.
func CoerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
