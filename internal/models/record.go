package models

import (
	"time"

	"github.com/google/uuid"
)

// Origin identifies which client produced a record.
const (
	OriginDesktop  = "desktop"
	OriginWebPWA   = "web_pwa"
	OriginMobile   = "mobile"
	OriginMigrated = "migrated"
	OriginUnknown  = "unknown"
)

// OriginOrUnknown returns the caller-supplied origin tag, defaulting to
// "unknown" when none was sent.
func OriginOrUnknown(s string) string {
	if s == "" {
		return OriginUnknown
	}
	return s
}

// User owns all metric records. Created on first sync or registration.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// WeightRow is one weight measurement. Date is stored verbatim as the
// client sent it; parsing happens on the read path only.
type WeightRow struct {
	ID         uuid.UUID `json:"id"`
	UserID     int       `json:"user_id"`
	Date       string    `json:"date"`
	Weight     float64   `json:"weight"`
	Notes      string    `json:"notes"`
	Origin     string    `json:"origin"`
	RecordedAt time.Time `json:"recorded_at"`
}

// BloodPressureRow is one blood-pressure measurement. A client may supply
// only one side; the absent side is NULL, never a sentinel zero.
type BloodPressureRow struct {
	ID         uuid.UUID `json:"id"`
	UserID     int       `json:"user_id"`
	Date       string    `json:"date"`
	Systolic   *float64  `json:"systolic"`
	Diastolic  *float64  `json:"diastolic"`
	Notes      string    `json:"notes"`
	Origin     string    `json:"origin"`
	RecordedAt time.Time `json:"recorded_at"`
}

// GlucoseRow is one glucose measurement.
type GlucoseRow struct {
	ID         uuid.UUID `json:"id"`
	UserID     int       `json:"user_id"`
	Date       string    `json:"date"`
	Glucose    float64   `json:"glucose_level"`
	Notes      string    `json:"notes"`
	Origin     string    `json:"origin"`
	RecordedAt time.Time `json:"recorded_at"`
}

// FoodRow is one day's food submission. Meals holds the canonical
// serialized meal-slot structure (see CanonicalMeals).
type FoodRow struct {
	ID         uuid.UUID `json:"id"`
	UserID     int       `json:"user_id"`
	Date       string    `json:"date"`
	Meals      string    `json:"meals"`
	Notes      string    `json:"notes"`
	Origin     string    `json:"origin"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ExerciseRow is one exercise entry.
type ExerciseRow struct {
	ID             uuid.UUID `json:"id"`
	UserID         int       `json:"user_id"`
	Date           string    `json:"date"`
	ExerciseType   string    `json:"exercise_type"`
	DurationMin    *float64  `json:"duration_minutes"`
	CaloriesBurned *float64  `json:"calories_burned"`
	Intensity      string    `json:"intensity"`
	Notes          string    `json:"notes"`
	Origin         string    `json:"origin"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// LegacyHealthRow is a row from the original denormalized health_records
// table, where every metric shared one row and unsupplied values were
// persisted as zero. Kept readable during the transition window.
type LegacyHealthRow struct {
	ID        int      `json:"id"`
	UserID    int      `json:"user_id"`
	Date      string   `json:"date"`
	Weight    *float64 `json:"weight"`
	Systolic  *float64 `json:"blood_pressure_sys"`
	Diastolic *float64 `json:"blood_pressure_dia"`
	Glucose   *float64 `json:"glucose_level"`
	Meals     *string  `json:"meals"`
	Notes     string   `json:"notes"`
	Source    string   `json:"source"`
	SyncDate  *string  `json:"sync_date"`
}
