package storage

import (
	"context"
	"fmt"

	"github.com/claude/healthsync/internal/models"
)

// Every read in this file filters by user_id. The per-user owner filter
// is load-bearing: a query without it leaks another user's records into
// the normalizer and merger.

// InsertWeight writes one weight record.
func InsertWeight(ctx context.Context, q Querier, r *models.WeightRow) error {
	_, err := q.Exec(ctx, `
		INSERT INTO weight_records (id, user_id, date, weight, notes, origin, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.UserID, r.Date, r.Weight, r.Notes, r.Origin, r.RecordedAt)
	if err != nil {
		return fmt.Errorf("inserting weight record: %w", err)
	}
	return nil
}

// ListWeights returns all weight records for a user, ordered by date.
func (db *DB) ListWeights(ctx context.Context, userID int) ([]models.WeightRow, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, date, weight, notes, origin, recorded_at
		FROM weight_records
		WHERE user_id = $1
		ORDER BY date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying weight records: %w", err)
	}
	defer rows.Close()

	var result []models.WeightRow
	for rows.Next() {
		var r models.WeightRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Weight, &r.Notes, &r.Origin, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning weight record: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// InsertBloodPressure writes one blood-pressure record. An absent side
// stays NULL.
func InsertBloodPressure(ctx context.Context, q Querier, r *models.BloodPressureRow) error {
	_, err := q.Exec(ctx, `
		INSERT INTO blood_pressure_records (id, user_id, date, systolic, diastolic, notes, origin, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.ID, r.UserID, r.Date, r.Systolic, r.Diastolic, r.Notes, r.Origin, r.RecordedAt)
	if err != nil {
		return fmt.Errorf("inserting blood pressure record: %w", err)
	}
	return nil
}

// ListBloodPressures returns all blood-pressure records for a user,
// ordered by date.
func (db *DB) ListBloodPressures(ctx context.Context, userID int) ([]models.BloodPressureRow, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, date, systolic, diastolic, notes, origin, recorded_at
		FROM blood_pressure_records
		WHERE user_id = $1
		ORDER BY date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying blood pressure records: %w", err)
	}
	defer rows.Close()

	var result []models.BloodPressureRow
	for rows.Next() {
		var r models.BloodPressureRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Systolic, &r.Diastolic, &r.Notes, &r.Origin, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning blood pressure record: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// InsertGlucose writes one glucose record.
func InsertGlucose(ctx context.Context, q Querier, r *models.GlucoseRow) error {
	_, err := q.Exec(ctx, `
		INSERT INTO glucose_records (id, user_id, date, glucose_level, notes, origin, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.UserID, r.Date, r.Glucose, r.Notes, r.Origin, r.RecordedAt)
	if err != nil {
		return fmt.Errorf("inserting glucose record: %w", err)
	}
	return nil
}

// ListGlucoses returns all glucose records for a user, ordered by date.
func (db *DB) ListGlucoses(ctx context.Context, userID int) ([]models.GlucoseRow, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, date, glucose_level, notes, origin, recorded_at
		FROM glucose_records
		WHERE user_id = $1
		ORDER BY date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying glucose records: %w", err)
	}
	defer rows.Close()

	var result []models.GlucoseRow
	for rows.Next() {
		var r models.GlucoseRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Glucose, &r.Notes, &r.Origin, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning glucose record: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
