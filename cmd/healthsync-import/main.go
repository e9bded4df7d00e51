package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/healthsync/internal/config"
	"github.com/claude/healthsync/internal/importer"
	"github.com/claude/healthsync/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	sqlitePath := flag.String("sqlite", "", "path to a legacy mobile-app SQLite database file")
	fromLegacyTable := flag.Bool("from-legacy-table", false, "backfill from the legacy postgres health_records table")
	userID := flag.Int("user", 1, "user id for -from-legacy-table")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *sqlitePath == "" && !*fromLegacyTable {
		fmt.Fprintf(os.Stderr, "Usage: healthsync-import -config config.yaml (-sqlite /path/to/salud_control.db | -from-legacy-table [-user N]) [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *sqlitePath != "" {
		if info, err := os.Stat(*sqlitePath); err != nil || info.IsDir() {
			log.Error("sqlite path does not exist or is a directory", "path", *sqlitePath)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
	}

	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	imp := importer.New(db, log, *dryRun)

	var stats *importer.Stats
	if *sqlitePath != "" {
		stats, err = imp.ImportSQLite(ctx, *sqlitePath)
	} else {
		stats, err = imp.ImportLegacyTable(ctx, *userID)
	}
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}

	printStats(log, stats)
	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"users_imported", stats.UsersImported,
		"records_read", stats.RecordsRead,
		"records_skipped", stats.RecordsSkipped,
		"weight_inserted", stats.WeightInserted,
		"blood_pressure_inserted", stats.BloodPressureInserted,
		"glucose_inserted", stats.GlucoseInserted,
		"food_inserted", stats.FoodInserted,
		"exercise_inserted", stats.ExerciseInserted,
	)
}
