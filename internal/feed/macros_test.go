package feed

import (
	"testing"

	"github.com/claude/healthsync/internal/models"
)

// TestDailyMacroTotalsSums verifies nutrient summing across meal slots,
// with missing nutrients counted as zero.
func TestDailyMacroTotalsSums(t *testing.T) {
	foods := []models.FoodRow{
		{Date: "2024-01-01 12:00:00", Meals: `{"breakfast":{"protein":20,"carbs":30,"fat":10},"lunch":{"protein":40}}`},
	}
	totals := DailyMacroTotals(foods)
	if len(totals) != 1 {
		t.Fatalf("got %d totals, want 1", len(totals))
	}
	got := totals[0]
	if got.Day != "2024-01-01" || got.Protein != 60 || got.Carbs != 30 || got.Fat != 10 {
		t.Errorf("totals = %+v", got)
	}
}

// TestDailyMacroTotalsDedup verifies that two same-day submissions keep
// only the most recent one — resubmission replaces, never double-counts.
func TestDailyMacroTotalsDedup(t *testing.T) {
	foods := []models.FoodRow{
		{Date: "2024-01-01 08:00:00", Meals: `{"breakfast":{"protein":20,"carbs":30,"fat":10}}`},
		{Date: "2024-01-01 13:00:00", Meals: `{"lunch":{"protein":40,"carbs":50,"fat":20}}`},
	}
	totals := DailyMacroTotals(foods)
	if len(totals) != 1 {
		t.Fatalf("got %d totals, want 1", len(totals))
	}
	got := totals[0]
	if got.Protein != 40 || got.Carbs != 50 || got.Fat != 20 {
		t.Errorf("totals = %+v, want later record only", got)
	}
}

// TestMealBreakdownSameDedup verifies the by-meal breakdown applies the
// same per-day dedup rule as the macro totals: only the kept record's
// meals are walked.
func TestMealBreakdownSameDedup(t *testing.T) {
	foods := []models.FoodRow{
		{Date: "2024-01-01 08:00:00", Meals: `{"breakfast":{"protein":20,"carbs":30,"fat":10}}`},
		{Date: "2024-01-01 13:00:00", Meals: `{"lunch":{"protein":40,"carbs":50,"fat":20}}`},
	}
	portions := MealBreakdown(foods)
	if len(portions) != 1 {
		t.Fatalf("got %d portions, want 1", len(portions))
	}
	p := portions[0]
	if p.Meal != "lunch" || p.Grams != 110 {
		t.Errorf("portion = %+v, want lunch with 110g", p)
	}
}

// TestMealBreakdownMultipleMealsOneDay verifies one day still shows
// multiple meal bars when they come from a single kept record.
func TestMealBreakdownMultipleMealsOneDay(t *testing.T) {
	foods := []models.FoodRow{
		{Date: "2024-01-01", Meals: `{"breakfast":{"protein":20,"carbs":30,"fat":10},"dinner":{"protein":30,"carbs":40,"fat":15}}`},
	}
	portions := MealBreakdown(foods)
	if len(portions) != 2 {
		t.Fatalf("got %d portions, want 2", len(portions))
	}
	if portions[0].Meal != "breakfast" || portions[1].Meal != "dinner" {
		t.Errorf("meals = %q, %q", portions[0].Meal, portions[1].Meal)
	}
}

// TestMacrosSkipUnparseable verifies that a food record with broken meal
// data is skipped without aborting other days.
func TestMacrosSkipUnparseable(t *testing.T) {
	foods := []models.FoodRow{
		{Date: "2024-01-01", Meals: "broken"},
		{Date: "2024-01-02", Meals: `{"lunch":{"protein":10,"carbs":10,"fat":10}}`},
	}
	totals := DailyMacroTotals(foods)
	if len(totals) != 1 || totals[0].Day != "2024-01-02" {
		t.Fatalf("got %+v, want only 2024-01-02", totals)
	}
}

// TestMacrosSortedByDay verifies output ordering.
func TestMacrosSortedByDay(t *testing.T) {
	foods := []models.FoodRow{
		{Date: "2024-01-03", Meals: `{"lunch":{"protein":1}}`},
		{Date: "2024-01-01", Meals: `{"lunch":{"protein":2}}`},
	}
	totals := DailyMacroTotals(foods)
	if len(totals) != 2 || totals[0].Day != "2024-01-01" || totals[1].Day != "2024-01-03" {
		t.Errorf("totals = %+v, want day-sorted", totals)
	}
}
