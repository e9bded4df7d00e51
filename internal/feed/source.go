package feed

import (
	"context"
	"log/slog"

	"github.com/claude/healthsync/internal/models"
)

// Store is the subset of the storage API the read path needs.
type Store interface {
	ListWeights(ctx context.Context, userID int) ([]models.WeightRow, error)
	ListBloodPressures(ctx context.Context, userID int) ([]models.BloodPressureRow, error)
	ListGlucoses(ctx context.Context, userID int) ([]models.GlucoseRow, error)
	ListFoods(ctx context.Context, userID int) ([]models.FoodRow, error)
	ListExercises(ctx context.Context, userID int) ([]models.ExerciseRow, error)
	ListLegacyRecords(ctx context.Context, userID int) ([]models.LegacyHealthRow, error)
}

// Rows is one user's full history across the per-metric tables, with
// legacy single-table rows fanned out and appended so both schemas stay
// readable during the transition window.
type Rows struct {
	Weights        []models.WeightRow
	BloodPressures []models.BloodPressureRow
	Glucoses       []models.GlucoseRow
	Foods          []models.FoodRow
	Exercises      []models.ExerciseRow
}

// LoadRows reads all metric rows for a user. A metric whose query fails
// is logged and omitted rather than failing the whole read; one broken
// table never blanks every chart.
func LoadRows(ctx context.Context, st Store, userID int, log *slog.Logger) Rows {
	var rows Rows
	var err error

	if rows.Weights, err = st.ListWeights(ctx, userID); err != nil {
		log.Error("loading weight records", "error", err)
	}
	if rows.BloodPressures, err = st.ListBloodPressures(ctx, userID); err != nil {
		log.Error("loading blood pressure records", "error", err)
	}
	if rows.Glucoses, err = st.ListGlucoses(ctx, userID); err != nil {
		log.Error("loading glucose records", "error", err)
	}
	if rows.Foods, err = st.ListFoods(ctx, userID); err != nil {
		log.Error("loading food records", "error", err)
	}
	if rows.Exercises, err = st.ListExercises(ctx, userID); err != nil {
		log.Error("loading exercise records", "error", err)
	}

	// The legacy table predates exercise tracking, so the fan-out below
	// only feeds the other four metrics.
	legacy, err := st.ListLegacyRecords(ctx, userID)
	if err != nil {
		log.Error("loading legacy records", "error", err)
		return rows
	}
	lw, lb, lg, lf := SplitLegacy(legacy)
	rows.Weights = append(rows.Weights, lw...)
	rows.BloodPressures = append(rows.BloodPressures, lb...)
	rows.Glucoses = append(rows.Glucoses, lg...)
	rows.Foods = append(rows.Foods, lf...)
	return rows
}
