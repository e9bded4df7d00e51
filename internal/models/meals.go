package models

import (
	"encoding/json"
	"fmt"
)

// MealNutrients holds the gram amounts recorded for one meal slot.
// Missing nutrients default to zero for aggregation.
type MealNutrients struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MealSet maps a meal slot name (breakfast, lunch, dinner, snack slots)
// to its nutrient grams. One MealSet is stored per food submission.
type MealSet map[string]MealNutrients

// ParseMealSet parses the stored serialized meal data. Historic rows may
// be double-encoded (a JSON string containing JSON), so a string result
// is unwrapped once and re-parsed.
func ParseMealSet(raw string) (MealSet, error) {
	var set MealSet
	if err := json.Unmarshal([]byte(raw), &set); err == nil {
		return set, nil
	}

	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &set); err == nil {
			return set, nil
		}
	}
	return nil, fmt.Errorf("cannot parse meal data %q", raw)
}

// CanonicalMeals produces the canonical serialized form of an incoming
// meals value, which may be a structured map or already-serialized JSON
// text. Text that fails to parse is passed through unchanged rather than
// rejected; values of any other type yield nil (treated as absent).
func CanonicalMeals(v any) *string {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		if x == "" {
			return nil
		}
		// Already-serialized JSON is stored as-is (never re-encoded, which
		// is how historic rows ended up double-encoded). Unparseable text
		// is stored verbatim; the read path skips it.
		return &x
	default:
		out, err := json.Marshal(x)
		if err != nil {
			return nil
		}
		s := string(out)
		return &s
	}
}
