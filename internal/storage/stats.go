package storage

import (
	"context"
	"fmt"
	"strings"
)

// DataStats holds aggregate counts about one user's stored data.
type DataStats struct {
	WeightRecords        int64 `json:"weight_records"`
	BloodPressureRecords int64 `json:"blood_pressure_records"`
	GlucoseRecords       int64 `json:"glucose_records"`
	FoodRecords          int64 `json:"food_records"`
	ExerciseRecords      int64 `json:"exercise_records"`
	LegacyRecords        int64 `json:"legacy_records"`

	EarliestDate *string `json:"earliest_date"`
	LatestDate   *string `json:"latest_date"`
}

// dateTables lists every table that stores a client-supplied date, so
// the range query below spans all of them. A user whose data lives only
// in food, exercise, or legacy rows still gets a date range.
var dateTables = []string{
	"weight_records",
	"blood_pressure_records",
	"glucose_records",
	"food_records",
	"exercise_records",
	"health_records",
}

// dateRangeQuery builds the MIN/MAX date query across all date-bearing
// tables for one user ($1).
func dateRangeQuery() string {
	parts := make([]string, 0, len(dateTables)*2)
	for _, table := range dateTables {
		parts = append(parts,
			fmt.Sprintf("SELECT MIN(date) AS d FROM %s WHERE user_id = $1", table),
			fmt.Sprintf("SELECT MAX(date) FROM %s WHERE user_id = $1", table),
		)
	}
	return "SELECT MIN(d), MAX(d) FROM (" + strings.Join(parts, " UNION ALL ") + ") sub"
}

// GetDataStats returns per-table row counts and the stored date range for
// a user.
func (db *DB) GetDataStats(ctx context.Context, userID int) (*DataStats, error) {
	stats := &DataStats{}

	counts := []struct {
		table string
		dst   *int64
	}{
		{"weight_records", &stats.WeightRecords},
		{"blood_pressure_records", &stats.BloodPressureRecords},
		{"glucose_records", &stats.GlucoseRecords},
		{"food_records", &stats.FoodRecords},
		{"exercise_records", &stats.ExerciseRecords},
		{"health_records", &stats.LegacyRecords},
	}
	for _, c := range counts {
		err := db.Pool.QueryRow(ctx,
			fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE user_id = $1`, c.table), userID,
		).Scan(c.dst)
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", c.table, err)
		}
	}

	// Dates are stored as client-supplied text, so MIN/MAX here is
	// lexical; it is reported as an approximation, while chart and feed
	// ordering always uses parsed timestamps.
	err := db.Pool.QueryRow(ctx, dateRangeQuery(), userID).Scan(&stats.EarliestDate, &stats.LatestDate)
	if err != nil {
		return nil, fmt.Errorf("querying date range: %w", err)
	}

	return stats, nil
}
