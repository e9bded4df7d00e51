package series

import "github.com/claude/healthsync/internal/models"

// WeightSamples maps stored weight rows to raw samples for Normalize.
func WeightSamples(rows []models.WeightRow) []Sample {
	samples := make([]Sample, len(rows))
	for i, r := range rows {
		samples[i] = Sample{Date: r.Date, Value: r.Weight}
	}
	return samples
}

// SystolicSamples maps the systolic side of blood pressure rows to raw
// samples. Rows without a systolic reading keep a nil value and are
// dropped by Normalize.
func SystolicSamples(rows []models.BloodPressureRow) []Sample {
	return bpSamples(rows, func(r *models.BloodPressureRow) *float64 { return r.Systolic })
}

// DiastolicSamples maps the diastolic side of blood pressure rows to raw
// samples.
func DiastolicSamples(rows []models.BloodPressureRow) []Sample {
	return bpSamples(rows, func(r *models.BloodPressureRow) *float64 { return r.Diastolic })
}

func bpSamples(rows []models.BloodPressureRow, side func(*models.BloodPressureRow) *float64) []Sample {
	samples := make([]Sample, 0, len(rows))
	for i := range rows {
		s := Sample{Date: rows[i].Date}
		if v := side(&rows[i]); v != nil {
			s.Value = *v
		}
		samples = append(samples, s)
	}
	return samples
}

// ExerciseDurationSamples maps exercise rows to duration-minutes
// samples. Rows logged without a duration keep a nil value and are
// dropped by Normalize.
func ExerciseDurationSamples(rows []models.ExerciseRow) []Sample {
	return exerciseSamples(rows, func(r *models.ExerciseRow) *float64 { return r.DurationMin })
}

// ExerciseCaloriesSamples maps exercise rows to calories-burned samples.
func ExerciseCaloriesSamples(rows []models.ExerciseRow) []Sample {
	return exerciseSamples(rows, func(r *models.ExerciseRow) *float64 { return r.CaloriesBurned })
}

func exerciseSamples(rows []models.ExerciseRow, field func(*models.ExerciseRow) *float64) []Sample {
	samples := make([]Sample, 0, len(rows))
	for i := range rows {
		s := Sample{Date: rows[i].Date}
		if v := field(&rows[i]); v != nil {
			s.Value = *v
		}
		samples = append(samples, s)
	}
	return samples
}

// GlucoseSamples maps stored glucose rows to raw samples.
func GlucoseSamples(rows []models.GlucoseRow) []Sample {
	samples := make([]Sample, len(rows))
	for i, r := range rows {
		samples[i] = Sample{Date: r.Date, Value: r.Glucose}
	}
	return samples
}
