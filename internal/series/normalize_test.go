package series

import "testing"

// TestNormalizeFiltersInvalid verifies that zero, negative, and
// non-numeric values never reach the output. Zero means "not provided",
// so charting it would be wrong data, not just ugly.
func TestNormalizeFiltersInvalid(t *testing.T) {
	samples := []Sample{
		{Date: "2024-01-01 08:00:00", Value: 80.0},
		{Date: "2024-01-02 08:00:00", Value: 0.0},
		{Date: "2024-01-03 08:00:00", Value: -2.0},
		{Date: "2024-01-04 08:00:00", Value: "not a number"},
		{Date: "2024-01-05 08:00:00", Value: nil},
	}
	points := Normalize(samples, false)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	for _, p := range points {
		if p.Value <= 0 {
			t.Errorf("non-positive value %v in output", p.Value)
		}
	}
}

// TestNormalizeDropsBadTimestamps verifies that entries with unparseable
// timestamps are excluded without failing the series.
func TestNormalizeDropsBadTimestamps(t *testing.T) {
	samples := []Sample{
		{Date: "garbage", Value: 80.0},
		{Date: "2024-01-02 08:00:00", Value: 79.0},
	}
	points := Normalize(samples, false)
	if len(points) != 1 || points[0].Value != 79.0 {
		t.Fatalf("got %v, want single point 79.0", points)
	}
}

// TestNormalizeDayCollapse verifies the weight convention: multiple
// same-day entries collapse to the chronologically last one.
func TestNormalizeDayCollapse(t *testing.T) {
	samples := []Sample{
		{Date: "2024-01-01 08:00:00", Value: 80.0},
		{Date: "2024-01-01 20:00:00", Value: 79.5},
		{Date: "2024-01-02 08:00:00", Value: 0.0},
		{Date: "2024-01-03 08:00:00", Value: 78.9},
	}
	points := Normalize(samples, true)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Day != "2024-01-01" || points[0].Value != 79.5 {
		t.Errorf("day 1 = %+v, want last-of-day 79.5", points[0])
	}
	if points[1].Day != "2024-01-03" || points[1].Value != 78.9 {
		t.Errorf("day 3 = %+v, want 78.9", points[1])
	}
}

// TestNormalizeDayCollapseUnsortedInput verifies the last-of-day pick is
// by timestamp, not input order.
func TestNormalizeDayCollapseUnsortedInput(t *testing.T) {
	samples := []Sample{
		{Date: "2024-01-01 20:00:00", Value: 79.5},
		{Date: "2024-01-01 08:00:00", Value: 80.0},
	}
	points := Normalize(samples, true)
	if len(points) != 1 || points[0].Value != 79.5 {
		t.Fatalf("got %v, want 79.5 (20:00 entry)", points)
	}
}

// TestNormalizeNoCollapseForOtherMetrics verifies that without the daily
// collapse every valid sample remains its own point.
func TestNormalizeNoCollapseForOtherMetrics(t *testing.T) {
	samples := []Sample{
		{Date: "2024-01-01 08:00:00", Value: 120.0},
		{Date: "2024-01-01 20:00:00", Value: 118.0},
		{Date: "2024-01-02 08:00:00", Value: 122.0},
	}
	points := Normalize(samples, false)
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3 (no day-collapsing)", len(points))
	}
}

// TestNormalizeIdempotent verifies that re-normalizing an already
// normalized series changes nothing.
func TestNormalizeIdempotent(t *testing.T) {
	samples := []Sample{
		{Date: "2024-01-01 08:00:00", Value: 80.0},
		{Date: "2024-01-01 20:00:00", Value: 79.5},
		{Date: "2024-01-03 08:00:00", Value: 78.9},
	}
	first := Normalize(samples, true)

	again := make([]Sample, len(first))
	for i, p := range first {
		again[i] = Sample{Date: p.Time.Format("2006-01-02 15:04:05"), Value: p.Value}
	}
	second := Normalize(again, true)

	if len(second) != len(first) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Day != second[i].Day || first[i].Value != second[i].Value {
			t.Errorf("point %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestNormalizeEmpty verifies empty and all-invalid inputs yield an empty
// series, not an error.
func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(nil, true); len(got) != 0 {
		t.Errorf("nil input: got %v", got)
	}
	if got := Normalize([]Sample{{Date: "2024-01-01", Value: 0.0}}, true); len(got) != 0 {
		t.Errorf("all-invalid input: got %v", got)
	}
}

// TestDisplayRangeFlat verifies the fixed ±5 band for near-identical
// weights, guarding against a degenerate flat-line chart.
func TestDisplayRangeFlat(t *testing.T) {
	points := []Point{{Value: 80.0}, {Value: 80.3}}
	r, ok := DisplayRange(points)
	if !ok {
		t.Fatal("expected a range")
	}
	if r.Min != 75.0 || r.Max != 85.3 {
		t.Errorf("range = %+v, want [75, 85.3]", r)
	}
}

// TestDisplayRangeSpread verifies proportional padding on a wide spread.
func TestDisplayRangeSpread(t *testing.T) {
	points := []Point{{Value: 70.0}, {Value: 170.0}}
	r, ok := DisplayRange(points)
	if !ok {
		t.Fatal("expected a range")
	}
	// spread 100 → padding 10
	if r.Min != 60.0 || r.Max != 180.0 {
		t.Errorf("range = %+v, want [60, 180]", r)
	}
}

// TestDisplayRangeEmpty verifies no range for an empty series.
func TestDisplayRangeEmpty(t *testing.T) {
	if _, ok := DisplayRange(nil); ok {
		t.Error("expected no range for empty series")
	}
}
