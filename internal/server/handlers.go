package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/claude/healthsync/internal/analysis"
	"github.com/claude/healthsync/internal/feed"
	"github.com/claude/healthsync/internal/ingest"
	"github.com/claude/healthsync/internal/models"
	"github.com/claude/healthsync/internal/series"
)

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	var payload ingest.SyncPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	result, err := s.ingest.Sync(r.Context(), &payload)
	if err != nil {
		s.writeSyncError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	userID := userIDParam(r)
	result, err := s.ingest.IngestOne(r.Context(), userID, raw, models.OriginWebPWA)
	if err != nil {
		s.writeSyncError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// writeSyncError maps an ingest failure to a response naming the failing
// step, so a client knows whether to retry user creation or just the
// records.
func (s *Server) writeSyncError(w http.ResponseWriter, err error) {
	s.log.Error("ingest error", "error", err)

	var step *ingest.StepError
	if errors.As(err, &step) {
		status := http.StatusInternalServerError
		if step.Step == "user" || errors.Is(err, ingest.ErrNoMetricData) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": step.Err.Error(), "step": step.Step})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

// handleCharts returns one normalized series per metric that has chartable
// data. A metric whose rows cannot be loaded is logged and omitted; one
// broken metric never blanks the whole response.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	userID := userIDParam(r)
	rows := feed.LoadRows(r.Context(), s.db, userID, s.log)

	charts := map[string]any{}

	if pts := series.Normalize(series.WeightSamples(rows.Weights), true); len(pts) > 0 {
		chart := map[string]any{"points": pts}
		if rng, ok := series.DisplayRange(pts); ok {
			chart["range"] = rng
		}
		charts[ingest.KindWeight] = chart
	}

	sys := series.Normalize(series.SystolicSamples(rows.BloodPressures), false)
	dia := series.Normalize(series.DiastolicSamples(rows.BloodPressures), false)
	if len(sys) > 0 || len(dia) > 0 {
		charts[ingest.KindBloodPressure] = map[string]any{"systolic": sys, "diastolic": dia}
	}

	if pts := series.Normalize(series.GlucoseSamples(rows.Glucoses), false); len(pts) > 0 {
		charts[ingest.KindGlucose] = map[string]any{"points": pts}
	}

	dur := series.Normalize(series.ExerciseDurationSamples(rows.Exercises), false)
	cal := series.Normalize(series.ExerciseCaloriesSamples(rows.Exercises), false)
	if len(dur) > 0 || len(cal) > 0 {
		charts[ingest.KindExercise] = map[string]any{"duration": dur, "calories": cal}
	}

	if totals := feed.DailyMacroTotals(rows.Foods); len(totals) > 0 {
		charts["daily_macros"] = totals
	}
	if portions := feed.MealBreakdown(rows.Foods); len(portions) > 0 {
		charts["meal_breakdown"] = portions
	}

	writeJSON(w, http.StatusOK, charts)
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	userID := userIDParam(r)
	rows := feed.LoadRows(r.Context(), s.db, userID, s.log)

	writeJSON(w, http.StatusOK, map[string]any{
		"feed":           feed.Merge(rows.Weights, rows.BloodPressures, rows.Glucoses, rows.Foods),
		"daily_macros":   feed.DailyMacroTotals(rows.Foods),
		"meal_breakdown": feed.MealBreakdown(rows.Foods),
	})
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	userID := userIDParam(r)
	rows := feed.LoadRows(r.Context(), s.db, userID, s.log)

	summary := analysis.Summarize(
		series.Normalize(series.WeightSamples(rows.Weights), true),
		series.Normalize(series.SystolicSamples(rows.BloodPressures), false),
		series.Normalize(series.DiastolicSamples(rows.BloodPressures), false),
		series.Normalize(series.GlucoseSamples(rows.Glucoses), false),
	)

	resp := map[string]any{"summary": summary}
	if r.URL.Query().Get("save") == "true" {
		filename, err := analysis.SaveReport(s.reportsDir, summary)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		resp["report_file"] = filename
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetDataStats(r.Context(), userIDParam(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func userIDParam(r *http.Request) int {
	if v := r.URL.Query().Get("user_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			return id
		}
	}
	return 1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
