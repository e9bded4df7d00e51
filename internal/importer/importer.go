// Package importer backfills the per-metric tables from the legacy
// single-table schema: either a mobile-app SQLite file or rows already
// sitting in the legacy postgres table.
package importer

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/healthsync/internal/feed"
	"github.com/claude/healthsync/internal/ingest"
	"github.com/claude/healthsync/internal/models"
	"github.com/claude/healthsync/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	_ "modernc.org/sqlite"
)

// Stats tracks import progress.
type Stats struct {
	UsersImported  int
	RecordsRead    int
	RecordsSkipped int

	WeightInserted        int
	BloodPressureInserted int
	GlucoseInserted       int
	FoodInserted          int
	ExerciseInserted      int
}

// Importer reads legacy health records and fans them out into the
// per-metric tables using the same classification rules live ingest uses.
type Importer struct {
	db     *storage.DB
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer. With dryRun set, records are read and
// classified but nothing is written.
func New(db *storage.DB, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, log: log, dryRun: dryRun}
}

// ImportSQLite backfills from a mobile-app SQLite database file. Users
// are matched to server users by email; the whole backfill runs in one
// transaction so a failure never leaves a half-imported file behind.
func (imp *Importer) ImportSQLite(ctx context.Context, dbPath string) (*Stats, error) {
	sdb, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return &imp.stats, fmt.Errorf("opening sqlite db: %w", err)
	}
	defer sdb.Close()

	userMap, err := imp.importUsers(ctx, sdb)
	if err != nil {
		return &imp.stats, err
	}

	raws, err := readLegacyRows(ctx, sdb)
	if err != nil {
		return &imp.stats, err
	}

	var fanned []ingest.Records
	for _, raw := range raws {
		imp.stats.RecordsRead++

		legacyUser := int(derefOrZero(models.CoerceFloat(raw["user_id"])))
		userID, ok := userMap[legacyUser]
		if !ok {
			imp.stats.RecordsSkipped++
			imp.log.Warn("record references unknown legacy user", "user_id", raw["user_id"])
			continue
		}

		sub := ingest.Resolve(raw, models.OriginMigrated, time.Now())
		recs := ingest.Classify(sub, userID)
		if recs.Empty() {
			imp.stats.RecordsSkipped++
			continue
		}
		imp.countKinds(recs)
		fanned = append(fanned, recs)
	}

	if imp.dryRun {
		return &imp.stats, nil
	}

	err = imp.db.WithTx(ctx, func(tx pgx.Tx) error {
		for _, recs := range fanned {
			if err := insertRecords(ctx, tx, recs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &imp.stats, fmt.Errorf("writing backfill: %w", err)
	}
	return &imp.stats, nil
}

// ImportLegacyTable backfills one user's rows from the legacy postgres
// health_records table into the per-metric tables.
func (imp *Importer) ImportLegacyTable(ctx context.Context, userID int) (*Stats, error) {
	legacy, err := imp.db.ListLegacyRecords(ctx, userID)
	if err != nil {
		return &imp.stats, fmt.Errorf("reading legacy table: %w", err)
	}
	imp.stats.RecordsRead = len(legacy)

	weights, bps, glucoses, foods := feed.SplitLegacy(legacy)
	imp.stats.WeightInserted = len(weights)
	imp.stats.BloodPressureInserted = len(bps)
	imp.stats.GlucoseInserted = len(glucoses)
	imp.stats.FoodInserted = len(foods)

	if imp.dryRun {
		return &imp.stats, nil
	}

	err = imp.db.WithTx(ctx, func(tx pgx.Tx) error {
		for i := range weights {
			weights[i].ID = uuid.New()
			if err := storage.InsertWeight(ctx, tx, &weights[i]); err != nil {
				return err
			}
		}
		for i := range bps {
			bps[i].ID = uuid.New()
			if err := storage.InsertBloodPressure(ctx, tx, &bps[i]); err != nil {
				return err
			}
		}
		for i := range glucoses {
			glucoses[i].ID = uuid.New()
			if err := storage.InsertGlucose(ctx, tx, &glucoses[i]); err != nil {
				return err
			}
		}
		for i := range foods {
			foods[i].ID = uuid.New()
			if err := storage.InsertFood(ctx, tx, &foods[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &imp.stats, fmt.Errorf("writing backfill: %w", err)
	}
	return &imp.stats, nil
}

// importUsers reads the legacy users table and maps legacy ids to server
// user ids, creating server users as needed.
func (imp *Importer) importUsers(ctx context.Context, sdb *sql.DB) (map[int]int, error) {
	rows, err := sdb.QueryContext(ctx, `SELECT id, name, email, phone FROM users`)
	if err != nil {
		return nil, fmt.Errorf("reading legacy users: %w", err)
	}
	defer rows.Close()

	userMap := map[int]int{}
	for rows.Next() {
		var legacyID int
		var name, email, phone sql.NullString
		if err := rows.Scan(&legacyID, &name, &email, &phone); err != nil {
			return nil, fmt.Errorf("scanning legacy user: %w", err)
		}
		if !email.Valid || email.String == "" {
			imp.log.Warn("skipping legacy user without email", "legacy_id", legacyID)
			continue
		}

		if imp.dryRun {
			userMap[legacyID] = legacyID
			imp.stats.UsersImported++
			continue
		}

		user, err := storage.GetOrCreateUser(ctx, imp.db.Pool, email.String, name.String, phone.String)
		if err != nil {
			return nil, fmt.Errorf("creating user %s: %w", email.String, err)
		}
		userMap[legacyID] = user.ID
		imp.stats.UsersImported++
	}
	return userMap, rows.Err()
}

// readLegacyRows reads health_records into loose key-value maps keyed by
// column name, so schema variants (with or without meal and exercise
// columns) all resolve through the same alias handling as live ingest.
func readLegacyRows(ctx context.Context, sdb *sql.DB) ([]map[string]any, error) {
	rows, err := sdb.QueryContext(ctx, `SELECT * FROM health_records`)
	if err != nil {
		return nil, fmt.Errorf("reading legacy records: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning legacy record: %w", err)
		}

		raw := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				raw[col] = string(b)
			} else {
				raw[col] = vals[i]
			}
		}
		out = append(out, raw)
	}
	return out, rows.Err()
}

func (imp *Importer) countKinds(recs ingest.Records) {
	if recs.Weight != nil {
		imp.stats.WeightInserted++
	}
	if recs.BloodPressure != nil {
		imp.stats.BloodPressureInserted++
	}
	if recs.Glucose != nil {
		imp.stats.GlucoseInserted++
	}
	if recs.Food != nil {
		imp.stats.FoodInserted++
	}
	if recs.Exercise != nil {
		imp.stats.ExerciseInserted++
	}
}

func insertRecords(ctx context.Context, tx pgx.Tx, recs ingest.Records) error {
	if recs.Weight != nil {
		if err := storage.InsertWeight(ctx, tx, recs.Weight); err != nil {
			return err
		}
	}
	if recs.BloodPressure != nil {
		if err := storage.InsertBloodPressure(ctx, tx, recs.BloodPressure); err != nil {
			return err
		}
	}
	if recs.Glucose != nil {
		if err := storage.InsertGlucose(ctx, tx, recs.Glucose); err != nil {
			return err
		}
	}
	if recs.Food != nil {
		if err := storage.InsertFood(ctx, tx, recs.Food); err != nil {
			return err
		}
	}
	if recs.Exercise != nil {
		if err := storage.InsertExercise(ctx, tx, recs.Exercise); err != nil {
			return err
		}
	}
	return nil
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
