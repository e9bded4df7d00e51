package storage

import (
	"context"
	"fmt"

	"github.com/claude/healthsync/internal/models"
)

// ListLegacyRecords returns a user's rows from the old denormalized
// health_records table. The table stays readable during the transition
// window: rows not yet backfilled into the per-metric tables are merged
// into the read path via feed.SplitLegacy.
func (db *DB) ListLegacyRecords(ctx context.Context, userID int) ([]models.LegacyHealthRow, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, date, weight, blood_pressure_sys, blood_pressure_dia, glucose_level, meals, COALESCE(notes, ''), COALESCE(source, ''), sync_date
		FROM health_records
		WHERE user_id = $1
		ORDER BY date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying legacy health records: %w", err)
	}
	defer rows.Close()

	var result []models.LegacyHealthRow
	for rows.Next() {
		var r models.LegacyHealthRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Weight, &r.Systolic, &r.Diastolic, &r.Glucose, &r.Meals, &r.Notes, &r.Source, &r.SyncDate); err != nil {
			return nil, fmt.Errorf("scanning legacy health record: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// CountLegacyRecords returns the number of legacy rows for a user, used
// by the importer's dry-run reporting.
func (db *DB) CountLegacyRecords(ctx context.Context, userID int) (int64, error) {
	var n int64
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM health_records WHERE user_id = $1`, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting legacy health records: %w", err)
	}
	return n, nil
}
