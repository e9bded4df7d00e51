// Package feed combines independently-dated per-metric records into one
// chronological view, and computes the food aggregates derived from it.
package feed

import (
	"sort"
	"time"

	"github.com/claude/healthsync/internal/models"
)

// Row is one entry of the unified feed: sparse in every field except the
// one belonging to the record it came from. Meals carries the parsed
// meal set when it parses, the raw stored text otherwise.
type Row struct {
	Date      string    `json:"date"`
	Time      time.Time `json:"-"`
	Weight    *float64  `json:"weight"`
	Systolic  *float64  `json:"blood_pressure_sys"`
	Diastolic *float64  `json:"blood_pressure_dia"`
	Glucose   *float64  `json:"glucose_level"`
	Meals     any       `json:"meals"`
}

// Merge builds the unified feed from the per-metric record lists, sorted
// chronologically by parsed timestamp. String comparison is deliberately
// not used: legacy rows carry mixed date formats that do not sort
// lexically. Rows whose date fails to parse keep a zero time and sort
// first, in stable input order — the feed is a raw view, not a chart, so
// nothing is dropped.
func Merge(weights []models.WeightRow, bps []models.BloodPressureRow, glucoses []models.GlucoseRow, foods []models.FoodRow) []Row {
	rows := make([]Row, 0, len(weights)+len(bps)+len(glucoses)+len(foods))

	for i := range weights {
		w := &weights[i]
		rows = append(rows, Row{Date: w.Date, Time: parsedOrZero(w.Date), Weight: &w.Weight})
	}
	for i := range bps {
		b := &bps[i]
		rows = append(rows, Row{Date: b.Date, Time: parsedOrZero(b.Date), Systolic: b.Systolic, Diastolic: b.Diastolic})
	}
	for i := range glucoses {
		g := &glucoses[i]
		rows = append(rows, Row{Date: g.Date, Time: parsedOrZero(g.Date), Glucose: &g.Glucose})
	}
	for i := range foods {
		f := &foods[i]
		rows = append(rows, Row{Date: f.Date, Time: parsedOrZero(f.Date), Meals: mealsValue(f.Meals)})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Time.Before(rows[j].Time)
	})
	return rows
}

func parsedOrZero(date string) time.Time {
	ts, err := models.ParseRecordTime(date)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func mealsValue(raw string) any {
	set, err := models.ParseMealSet(raw)
	if err != nil {
		return raw
	}
	return set
}
