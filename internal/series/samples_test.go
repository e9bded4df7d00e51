package series

import (
	"testing"

	"github.com/claude/healthsync/internal/models"
)

func ptr(v float64) *float64 { return &v }

// TestBloodPressureSamplesSides verifies that the two sides of a reading
// map independently, and that a missing side yields a nil sample value.
func TestBloodPressureSamplesSides(t *testing.T) {
	rows := []models.BloodPressureRow{
		{Date: "2024-01-01 08:00:00", Systolic: ptr(120), Diastolic: ptr(80)},
		{Date: "2024-01-02 08:00:00", Systolic: ptr(118)},
	}

	sys := SystolicSamples(rows)
	dia := DiastolicSamples(rows)
	if len(sys) != 2 || len(dia) != 2 {
		t.Fatalf("got %d/%d samples, want 2/2", len(sys), len(dia))
	}
	if sys[1].Value != 118.0 {
		t.Errorf("systolic[1] = %v, want 118", sys[1].Value)
	}
	if dia[1].Value != nil {
		t.Errorf("diastolic[1] = %v, want nil for a systolic-only reading", dia[1].Value)
	}
}

// TestExerciseSamples verifies that exercise rows produce separate
// duration and calories series, and that a session logged without one of
// the two fields drops out of that series after Normalize.
func TestExerciseSamples(t *testing.T) {
	rows := []models.ExerciseRow{
		{Date: "2024-01-01 07:00:00", ExerciseType: "running", DurationMin: ptr(30), CaloriesBurned: ptr(300)},
		{Date: "2024-01-02 07:00:00", ExerciseType: "yoga", DurationMin: ptr(45)},
	}

	dur := Normalize(ExerciseDurationSamples(rows), false)
	if len(dur) != 2 {
		t.Fatalf("got %d duration points, want 2", len(dur))
	}
	if dur[1].Value != 45.0 {
		t.Errorf("duration[1] = %v, want 45", dur[1].Value)
	}

	cal := Normalize(ExerciseCaloriesSamples(rows), false)
	if len(cal) != 1 {
		t.Fatalf("got %d calories points, want 1", len(cal))
	}
	if cal[0].Value != 300.0 {
		t.Errorf("calories[0] = %v, want 300", cal[0].Value)
	}
}
