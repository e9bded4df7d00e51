package ingest

import "github.com/google/uuid"

// CreatedRecord identifies one sub-record a payload fanned out into.
type CreatedRecord struct {
	Kind string    `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// Metric kind names used in results and chart keys.
const (
	KindWeight        = "weight"
	KindBloodPressure = "blood_pressure"
	KindGlucose       = "glucose"
	KindFood          = "food"
	KindExercise      = "exercise"
)

// Result holds the outcome of a sync ingest.
type Result struct {
	UserID          int `json:"user_id"`
	RecordsReceived int `json:"records_received"`
	RecordsSkipped  int `json:"records_skipped"`

	WeightInserted        int `json:"weight_inserted"`
	BloodPressureInserted int `json:"blood_pressure_inserted"`
	GlucoseInserted       int `json:"glucose_inserted"`
	FoodInserted          int `json:"food_inserted"`
	ExerciseInserted      int `json:"exercise_inserted"`

	Created []CreatedRecord `json:"created,omitempty"`
	Message string          `json:"message,omitempty"`
}
