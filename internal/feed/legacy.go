package feed

import (
	"time"

	"github.com/claude/healthsync/internal/models"
)

// SplitLegacy fans rows from the old denormalized health_records table
// out into typed per-metric rows, using the same rules the table
// migration used: a value participates only when present and positive
// (the legacy schema persisted 0 for "not provided"), meals only when
// non-empty. The read path runs this during the transition window so
// history not yet backfilled still appears; the importer runs it to do
// the backfill itself.
func SplitLegacy(rows []models.LegacyHealthRow) (weights []models.WeightRow, bps []models.BloodPressureRow, glucoses []models.GlucoseRow, foods []models.FoodRow) {
	for _, r := range rows {
		recordedAt := legacyRecordedAt(r.SyncDate)

		if r.Weight != nil && *r.Weight > 0 {
			weights = append(weights, models.WeightRow{
				UserID:     r.UserID,
				Date:       r.Date,
				Weight:     *r.Weight,
				Notes:      r.Notes,
				Origin:     legacyOrigin(r.Source),
				RecordedAt: recordedAt,
			})
		}

		sysPresent := r.Systolic != nil && *r.Systolic > 0
		diaPresent := r.Diastolic != nil && *r.Diastolic > 0
		if sysPresent || diaPresent {
			bp := models.BloodPressureRow{
				UserID:     r.UserID,
				Date:       r.Date,
				Notes:      r.Notes,
				Origin:     legacyOrigin(r.Source),
				RecordedAt: recordedAt,
			}
			if sysPresent {
				bp.Systolic = r.Systolic
			}
			if diaPresent {
				bp.Diastolic = r.Diastolic
			}
			bps = append(bps, bp)
		}

		if r.Glucose != nil && *r.Glucose > 0 {
			glucoses = append(glucoses, models.GlucoseRow{
				UserID:     r.UserID,
				Date:       r.Date,
				Glucose:    *r.Glucose,
				Notes:      r.Notes,
				Origin:     legacyOrigin(r.Source),
				RecordedAt: recordedAt,
			})
		}

		if r.Meals != nil && *r.Meals != "" {
			foods = append(foods, models.FoodRow{
				UserID:     r.UserID,
				Date:       r.Date,
				Meals:      *r.Meals,
				Notes:      r.Notes,
				Origin:     legacyOrigin(r.Source),
				RecordedAt: recordedAt,
			})
		}
	}
	return weights, bps, glucoses, foods
}

func legacyOrigin(source string) string {
	if source == "" {
		return models.OriginMigrated
	}
	return source
}

func legacyRecordedAt(syncDate *string) time.Time {
	if syncDate == nil {
		return time.Time{}
	}
	ts, err := models.ParseRecordTime(*syncDate)
	if err != nil {
		return time.Time{}
	}
	return ts
}
