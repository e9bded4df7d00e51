// Package analysis computes the basic statistical summary shown on the
// analysis page and fed to external report generators.
package analysis

import (
	"math"

	"github.com/claude/healthsync/internal/series"
)

// WeightStats summarizes the normalized weight series.
type WeightStats struct {
	Mean  float64 `json:"mean"`
	Trend string  `json:"trend"`
}

// BloodPressureStats summarizes the systolic/diastolic series.
type BloodPressureStats struct {
	SystolicMean  float64 `json:"sys_mean"`
	DiastolicMean float64 `json:"dia_mean"`
}

// GlucoseStats summarizes the glucose series.
type GlucoseStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
}

// Summary is the per-metric statistical overview. Sections are nil when
// the metric has no valid data, so the caller can omit them.
type Summary struct {
	Weight        *WeightStats        `json:"weight,omitempty"`
	BloodPressure *BloodPressureStats `json:"blood_pressure,omitempty"`
	Glucose       *GlucoseStats       `json:"glucose,omitempty"`
}

// Summarize computes the summary from already-normalized series.
func Summarize(weight, systolic, diastolic, glucose []series.Point) Summary {
	var s Summary

	if len(weight) > 0 {
		s.Weight = &WeightStats{Mean: mean(weight), Trend: trend(weight)}
	}
	if len(systolic) > 0 || len(diastolic) > 0 {
		s.BloodPressure = &BloodPressureStats{
			SystolicMean:  mean(systolic),
			DiastolicMean: mean(diastolic),
		}
	}
	if len(glucose) > 0 {
		s.Glucose = &GlucoseStats{Mean: mean(glucose), StdDev: stddev(glucose)}
	}
	return s
}

func mean(points []series.Point) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

// trend labels the series by the mean of successive differences:
// increasing when positive, decreasing otherwise.
func trend(points []series.Point) string {
	if len(points) < 2 {
		return "decreasing"
	}
	var diffSum float64
	for i := 1; i < len(points); i++ {
		diffSum += points[i].Value - points[i-1].Value
	}
	if diffSum/float64(len(points)-1) > 0 {
		return "increasing"
	}
	return "decreasing"
}

// stddev is the sample standard deviation.
func stddev(points []series.Point) float64 {
	if len(points) < 2 {
		return 0
	}
	m := mean(points)
	var sq float64
	for _, p := range points {
		d := p.Value - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(points)-1))
}
