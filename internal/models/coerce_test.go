package models

import (
	"encoding/json"
	"testing"
)

// TestCoerceFloatNumber verifies plain numbers pass through.
func TestCoerceFloatNumber(t *testing.T) {
	got := CoerceFloat(72.5)
	if got == nil || *got != 72.5 {
		t.Errorf("got %v, want 72.5", got)
	}
}

// TestCoerceFloatString verifies numeric strings are coerced. Mobile
// clients send form values as strings.
func TestCoerceFloatString(t *testing.T) {
	got := CoerceFloat(" 95.2 ")
	if got == nil || *got != 95.2 {
		t.Errorf("got %v, want 95.2", got)
	}
}

// TestCoerceFloatJSONNumber verifies json.Number input.
func TestCoerceFloatJSONNumber(t *testing.T) {
	got := CoerceFloat(json.Number("120"))
	if got == nil || *got != 120 {
		t.Errorf("got %v, want 120", got)
	}
}

// TestCoerceFloatAbsent verifies nil, empty, and garbage all coerce to
// absent rather than erroring — the classifier treats these as
// "not provided".
func TestCoerceFloatAbsent(t *testing.T) {
	for _, v := range []any{nil, "", "  ", "eighty", true, []any{1}} {
		if got := CoerceFloat(v); got != nil {
			t.Errorf("CoerceFloat(%v) = %v, want nil", v, *got)
		}
	}
}
