package feed

import (
	"testing"

	"github.com/claude/healthsync/internal/models"
)

func f64(v float64) *float64 { return &v }

// TestMergeChronological verifies that rows from independent sources come
// out date-sorted regardless of per-source insertion order.
func TestMergeChronological(t *testing.T) {
	weights := []models.WeightRow{{Date: "2024-01-02", Weight: 80}}
	glucoses := []models.GlucoseRow{{Date: "2024-01-01", Glucose: 95}}
	bps := []models.BloodPressureRow{{Date: "2024-01-03", Systolic: f64(120), Diastolic: f64(80)}}

	rows := Merge(weights, bps, glucoses, nil)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	for i, w := range want {
		if rows[i].Date != w {
			t.Errorf("row %d date = %q, want %q", i, rows[i].Date, w)
		}
	}
}

// TestMergeParsedOrdering verifies ordering is by parsed time, not string
// comparison — legacy rows carry mixed date formats.
func TestMergeParsedOrdering(t *testing.T) {
	weights := []models.WeightRow{{Date: "2024-02-01T09:00:00Z", Weight: 80}}
	glucoses := []models.GlucoseRow{{Date: "2024-01-31 23:00:00", Glucose: 95}}

	rows := Merge(weights, nil, glucoses, nil)
	if rows[0].Glucose == nil {
		t.Errorf("expected glucose row first, got %+v", rows[0])
	}
}

// TestMergeSparseRows verifies each row carries only its own metric's
// fields; everything else stays null.
func TestMergeSparseRows(t *testing.T) {
	rows := Merge([]models.WeightRow{{Date: "2024-01-01", Weight: 80}}, nil, nil, nil)
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	r := rows[0]
	if r.Weight == nil || *r.Weight != 80 {
		t.Errorf("weight = %v, want 80", r.Weight)
	}
	if r.Systolic != nil || r.Diastolic != nil || r.Glucose != nil || r.Meals != nil {
		t.Errorf("non-weight fields populated: %+v", r)
	}
}

// TestMergeMealsParsed verifies food rows expose the parsed meal set, and
// unparseable meal text falls back to the raw string instead of vanishing.
func TestMergeMealsParsed(t *testing.T) {
	foods := []models.FoodRow{
		{Date: "2024-01-01", Meals: `{"breakfast":{"protein":20,"carbs":30,"fat":10}}`},
		{Date: "2024-01-02", Meals: "not json"},
	}
	rows := Merge(nil, nil, nil, foods)

	if set, ok := rows[0].Meals.(models.MealSet); !ok || set["breakfast"].Protein != 20 {
		t.Errorf("row 0 meals = %v, want parsed meal set", rows[0].Meals)
	}
	if raw, ok := rows[1].Meals.(string); !ok || raw != "not json" {
		t.Errorf("row 1 meals = %v, want raw string", rows[1].Meals)
	}
}

// TestMergeUnparseableDateKept verifies rows with bad dates stay in the
// feed (sorted first) rather than being dropped.
func TestMergeUnparseableDateKept(t *testing.T) {
	weights := []models.WeightRow{
		{Date: "2024-01-01", Weight: 80},
		{Date: "???", Weight: 81},
	}
	rows := Merge(weights, nil, nil, nil)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Date != "???" {
		t.Errorf("bad-date row should sort first, got %q", rows[0].Date)
	}
}

// TestMergeEmpty verifies empty inputs yield an empty feed, not an error.
func TestMergeEmpty(t *testing.T) {
	if rows := Merge(nil, nil, nil, nil); len(rows) != 0 {
		t.Errorf("got %v, want empty", rows)
	}
}
