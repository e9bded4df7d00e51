package storage

import (
	"context"
	"fmt"

	"github.com/claude/healthsync/internal/models"
)

// InsertExercise writes one exercise record.
func InsertExercise(ctx context.Context, q Querier, r *models.ExerciseRow) error {
	_, err := q.Exec(ctx, `
		INSERT INTO exercise_records (id, user_id, date, exercise_type, duration_minutes, calories_burned, intensity, notes, origin, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, r.ID, r.UserID, r.Date, r.ExerciseType, r.DurationMin, r.CaloriesBurned, r.Intensity, r.Notes, r.Origin, r.RecordedAt)
	if err != nil {
		return fmt.Errorf("inserting exercise record: %w", err)
	}
	return nil
}

// ListExercises returns all exercise records for a user, ordered by date.
func (db *DB) ListExercises(ctx context.Context, userID int) ([]models.ExerciseRow, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, date, exercise_type, duration_minutes, calories_burned, intensity, notes, origin, recorded_at
		FROM exercise_records
		WHERE user_id = $1
		ORDER BY date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying exercise records: %w", err)
	}
	defer rows.Close()

	var result []models.ExerciseRow
	for rows.Next() {
		var r models.ExerciseRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.ExerciseType, &r.DurationMin, &r.CaloriesBurned, &r.Intensity, &r.Notes, &r.Origin, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning exercise record: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
