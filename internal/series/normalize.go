// Package series turns raw, possibly-dirty per-metric samples into clean
// chartable time series.
package series

import (
	"sort"
	"time"

	"github.com/claude/healthsync/internal/models"
)

// Sample is one raw (timestamp, value) pair as read from storage. Value
// may be numeric, textual, or absent; Date is the verbatim stored string.
type Sample struct {
	Date  string
	Value any
}

// Point is one entry of a normalized series. Day is the calendar day of
// the sample; Time the parsed timestamp.
type Point struct {
	Day   string    `json:"day"`
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Normalize produces a clean time-ordered series from raw samples:
// unparseable timestamps and missing or non-positive values are dropped
// (zero means "not provided", never a measurement), and the remainder is
// sorted by timestamp. With collapseDaily set, multiple same-day samples
// collapse to the chronologically last one — the convention for weight,
// where one weight-of-record per day is charted. Bad individual entries
// never fail the series.
func Normalize(samples []Sample, collapseDaily bool) []Point {
	points := make([]Point, 0, len(samples))
	for _, s := range samples {
		ts, err := models.ParseRecordTime(s.Date)
		if err != nil {
			continue
		}
		v := models.CoerceFloat(s.Value)
		if v == nil || *v <= 0 {
			continue
		}
		points = append(points, Point{Day: models.DayOf(ts), Time: ts, Value: *v})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})

	if !collapseDaily || len(points) == 0 {
		return points
	}

	collapsed := make([]Point, 0, len(points))
	for _, p := range points {
		if n := len(collapsed); n > 0 && collapsed[n-1].Day == p.Day {
			collapsed[n-1] = p
			continue
		}
		collapsed = append(collapsed, p)
	}
	return collapsed
}

// Range is a suggested y-axis display range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DisplayRange computes a padded y-axis range for a weight series. Near-
// identical values get a fixed ±5 band so the chart never degenerates to
// a flat line; otherwise padding is 10% of the spread.
func DisplayRange(points []Point) (Range, bool) {
	if len(points) == 0 {
		return Range{}, false
	}
	min, max := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	spread := max - min
	if spread < 1 {
		return Range{Min: min - 5, Max: max + 5}, true
	}
	padding := spread * 0.1
	if padding < 5 {
		padding = 5
	}
	return Range{Min: min - padding, Max: max + padding}, true
}
