package storage

import (
	"context"
	"fmt"

	"github.com/claude/healthsync/internal/models"
)

// InsertFood writes one food record. Meals is already in canonical
// serialized form (see models.CanonicalMeals).
func InsertFood(ctx context.Context, q Querier, r *models.FoodRow) error {
	_, err := q.Exec(ctx, `
		INSERT INTO food_records (id, user_id, date, meals, notes, origin, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.UserID, r.Date, r.Meals, r.Notes, r.Origin, r.RecordedAt)
	if err != nil {
		return fmt.Errorf("inserting food record: %w", err)
	}
	return nil
}

// ListFoods returns all food records for a user, ordered by date.
func (db *DB) ListFoods(ctx context.Context, userID int) ([]models.FoodRow, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, date, meals, notes, origin, recorded_at
		FROM food_records
		WHERE user_id = $1
		ORDER BY date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying food records: %w", err)
	}
	defer rows.Close()

	var result []models.FoodRow
	for rows.Next() {
		var r models.FoodRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Meals, &r.Notes, &r.Origin, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning food record: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
