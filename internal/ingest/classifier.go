package ingest

import (
	"time"

	"github.com/claude/healthsync/internal/models"
	"github.com/google/uuid"
)

// Submission is one incoming measurement payload after field-alias
// resolution: every client quirk (renamed fields, numeric strings,
// serialized meals) is absorbed here so the rest of the pipeline sees
// one shape. Pointer fields mean "not provided"; an incoming zero also
// means not provided, since no genuine measurement is zero.
type Submission struct {
	Date           string
	Weight         *float64
	Systolic       *float64
	Diastolic      *float64
	Glucose        *float64
	Meals          *string
	ExerciseType   string
	DurationMin    *float64
	CaloriesBurned *float64
	Intensity      string
	Notes          string
	Origin         string
	RecordedAt     time.Time
}

// mealsAliases are the field names clients have used for meal data, in
// resolution order.
var mealsAliases = []string{"meals", "meals_data", "meals_data_json"}

// Resolve maps a loose key-value payload to a Submission. Malformed
// numeric fields coerce to absent rather than failing: upstream clients
// are not fully trusted, and one bad field must not reject an otherwise
// classifiable payload. The date is taken verbatim; recorded_at prefers
// the payload's sync timestamp over the server clock.
func Resolve(raw map[string]any, origin string, now time.Time) Submission {
	sub := Submission{
		Date:           models.CoerceString(raw["date"]),
		Weight:         models.CoerceFloat(raw["weight"]),
		Systolic:       models.CoerceFloat(raw["blood_pressure_sys"]),
		Diastolic:      models.CoerceFloat(raw["blood_pressure_dia"]),
		Glucose:        models.CoerceFloat(raw["glucose_level"]),
		ExerciseType:   models.CoerceString(raw["exercise_type"]),
		DurationMin:    models.CoerceFloat(raw["duration_minutes"]),
		CaloriesBurned: models.CoerceFloat(raw["calories_burned"]),
		Intensity:      models.CoerceString(raw["intensity"]),
		Notes:          models.CoerceString(raw["notes"]),
		Origin:         models.OriginOrUnknown(origin),
		RecordedAt:     now,
	}

	for _, alias := range mealsAliases {
		if v, ok := raw[alias]; ok && v != nil {
			sub.Meals = models.CanonicalMeals(v)
			break
		}
	}

	for _, key := range []string{"sync_date", "recorded_at"} {
		if s := models.CoerceString(raw[key]); s != "" {
			if ts, err := models.ParseRecordTime(s); err == nil {
				sub.RecordedAt = ts
				break
			}
		}
	}

	if o := models.CoerceString(raw["origin"]); o != "" {
		sub.Origin = o
	} else if d := models.CoerceString(raw["device_id"]); d != "" {
		sub.Origin = d
	}

	return sub
}

// Records is the typed fan-out of one submission: between zero and five
// sub-records, decided independently per metric kind.
type Records struct {
	Weight        *models.WeightRow
	BloodPressure *models.BloodPressureRow
	Glucose       *models.GlucoseRow
	Food          *models.FoodRow
	Exercise      *models.ExerciseRow
}

// Empty reports whether the submission carried no classifiable data.
func (r Records) Empty() bool {
	return r.Weight == nil && r.BloodPressure == nil && r.Glucose == nil && r.Food == nil && r.Exercise == nil
}

// Created lists the kinds and ids of the fanned-out sub-records.
func (r Records) Created() []CreatedRecord {
	var out []CreatedRecord
	if r.Weight != nil {
		out = append(out, CreatedRecord{Kind: KindWeight, ID: r.Weight.ID})
	}
	if r.BloodPressure != nil {
		out = append(out, CreatedRecord{Kind: KindBloodPressure, ID: r.BloodPressure.ID})
	}
	if r.Glucose != nil {
		out = append(out, CreatedRecord{Kind: KindGlucose, ID: r.Glucose.ID})
	}
	if r.Food != nil {
		out = append(out, CreatedRecord{Kind: KindFood, ID: r.Food.ID})
	}
	if r.Exercise != nil {
		out = append(out, CreatedRecord{Kind: KindExercise, ID: r.Exercise.ID})
	}
	return out
}

// Classify decides, independently for each metric kind, whether the
// submission supplies data for it, and constructs the typed sub-records:
//
//   - weight: positive weight value
//   - blood pressure: positive systolic OR diastolic (one side may be
//     absent and stays NULL)
//   - glucose: positive glucose value
//   - food: meals present after alias resolution
//   - exercise: exercise_type supplied
//
// A single submission therefore creates between 0 and 5 records.
func Classify(sub Submission, userID int) Records {
	var recs Records

	if sub.Weight != nil && *sub.Weight > 0 {
		recs.Weight = &models.WeightRow{
			ID:         uuid.New(),
			UserID:     userID,
			Date:       sub.Date,
			Weight:     *sub.Weight,
			Notes:      sub.Notes,
			Origin:     sub.Origin,
			RecordedAt: sub.RecordedAt,
		}
	}

	sysPresent := sub.Systolic != nil && *sub.Systolic > 0
	diaPresent := sub.Diastolic != nil && *sub.Diastolic > 0
	if sysPresent || diaPresent {
		bp := &models.BloodPressureRow{
			ID:         uuid.New(),
			UserID:     userID,
			Date:       sub.Date,
			Notes:      sub.Notes,
			Origin:     sub.Origin,
			RecordedAt: sub.RecordedAt,
		}
		if sysPresent {
			bp.Systolic = sub.Systolic
		}
		if diaPresent {
			bp.Diastolic = sub.Diastolic
		}
		recs.BloodPressure = bp
	}

	if sub.Glucose != nil && *sub.Glucose > 0 {
		recs.Glucose = &models.GlucoseRow{
			ID:         uuid.New(),
			UserID:     userID,
			Date:       sub.Date,
			Glucose:    *sub.Glucose,
			Notes:      sub.Notes,
			Origin:     sub.Origin,
			RecordedAt: sub.RecordedAt,
		}
	}

	if sub.Meals != nil {
		recs.Food = &models.FoodRow{
			ID:         uuid.New(),
			UserID:     userID,
			Date:       sub.Date,
			Meals:      *sub.Meals,
			Notes:      sub.Notes,
			Origin:     sub.Origin,
			RecordedAt: sub.RecordedAt,
		}
	}

	if sub.ExerciseType != "" {
		recs.Exercise = &models.ExerciseRow{
			ID:             uuid.New(),
			UserID:         userID,
			Date:           sub.Date,
			ExerciseType:   sub.ExerciseType,
			DurationMin:    sub.DurationMin,
			CaloriesBurned: sub.CaloriesBurned,
			Intensity:      sub.Intensity,
			Notes:          sub.Notes,
			Origin:         sub.Origin,
			RecordedAt:     sub.RecordedAt,
		}
	}

	return recs
}
