package models

import "testing"

// TestParseMealSet verifies parsing of a canonical serialized meal set.
func TestParseMealSet(t *testing.T) {
	set, err := ParseMealSet(`{"breakfast":{"protein":20,"carbs":30,"fat":10}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := set["breakfast"]
	if !ok {
		t.Fatal("breakfast slot missing")
	}
	if b.Protein != 20 || b.Carbs != 30 || b.Fat != 10 {
		t.Errorf("breakfast = %+v", b)
	}
}

// TestParseMealSetMissingNutrients verifies that absent nutrients default
// to zero rather than failing the parse.
func TestParseMealSetMissingNutrients(t *testing.T) {
	set, err := ParseMealSet(`{"lunch":{"protein":40}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set["lunch"].Carbs != 0 || set["lunch"].Fat != 0 {
		t.Errorf("missing nutrients should be 0, got %+v", set["lunch"])
	}
}

// TestParseMealSetDoubleEncoded verifies that historic double-encoded rows
// (a JSON string containing JSON) remain readable.
func TestParseMealSetDoubleEncoded(t *testing.T) {
	set, err := ParseMealSet(`"{\"dinner\":{\"protein\":25,\"carbs\":35,\"fat\":15}}"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set["dinner"].Protein != 25 {
		t.Errorf("dinner protein = %v, want 25", set["dinner"].Protein)
	}
}

// TestParseMealSetGarbage verifies that unparseable meal data errors out
// so aggregation can skip the record.
func TestParseMealSetGarbage(t *testing.T) {
	if _, err := ParseMealSet("breakfast: eggs"); err == nil {
		t.Error("expected error for non-JSON meal data")
	}
}

// TestCanonicalMealsMap verifies serialization of a structured meals map.
func TestCanonicalMealsMap(t *testing.T) {
	got := CanonicalMeals(map[string]any{"breakfast": map[string]any{"protein": 20.0}})
	if got == nil {
		t.Fatal("expected serialized meals, got nil")
	}
	set, err := ParseMealSet(*got)
	if err != nil {
		t.Fatalf("canonical form not parseable: %v", err)
	}
	if set["breakfast"].Protein != 20 {
		t.Errorf("protein = %v, want 20", set["breakfast"].Protein)
	}
}

// TestCanonicalMealsString verifies that already-serialized JSON text is
// stored as-is, never re-encoded (re-encoding is how historic rows ended
// up double-encoded).
func TestCanonicalMealsString(t *testing.T) {
	in := `{"lunch":{"protein":40,"carbs":50,"fat":20}}`
	got := CanonicalMeals(in)
	if got == nil || *got != in {
		t.Errorf("got %v, want input unchanged", got)
	}
}

// TestCanonicalMealsUnparseableString verifies pass-through of text that
// fails to parse: the classifier tolerates it rather than rejecting.
func TestCanonicalMealsUnparseableString(t *testing.T) {
	in := "breakfast: eggs"
	got := CanonicalMeals(in)
	if got == nil || *got != in {
		t.Errorf("got %v, want verbatim pass-through", got)
	}
}

// TestCanonicalMealsNil verifies nil input means no food data.
func TestCanonicalMealsNil(t *testing.T) {
	if got := CanonicalMeals(nil); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
