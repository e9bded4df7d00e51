package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/healthsync/internal/analysis"
	"github.com/claude/healthsync/internal/feed"
	"github.com/claude/healthsync/internal/ingest"
	"github.com/claude/healthsync/internal/series"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetMetricSeries = mcp.NewTool("get_metric_series",
	mcp.WithDescription("Retrieve the normalized time series for one metric. Weight is collapsed to one reading per day (last of day) and includes a suggested y-axis range; blood pressure returns systolic and diastolic series; glucose returns every valid reading; exercise returns duration and calories series."),
	mcp.WithString("metric", mcp.Required(), mcp.Description("Metric name"), mcp.Enum(ingest.KindWeight, ingest.KindBloodPressure, ingest.KindGlucose, ingest.KindExercise)),
)

var toolGetDailyMacros = mcp.NewTool("get_daily_macros",
	mcp.WithDescription("Per-day macro nutrient totals (protein/carbs/fat grams) plus the by-meal breakdown. Only the most recent food record per day counts, so resubmissions never double-count."),
)

var toolGetUnifiedFeed = mcp.NewTool("get_unified_feed",
	mcp.WithDescription("The unified chronological feed: one sparse row per stored record across weight, blood pressure, glucose, and meals, sorted by timestamp."),
)

var toolGetHealthSummary = mcp.NewTool("get_health_summary",
	mcp.WithDescription("Summary statistics across all metrics: weight mean and trend, blood pressure means, glucose mean and standard deviation, plus per-table record counts and the stored date range."),
)

// --- Tool handlers ---

func (h *handlers) getMetricSeries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	metric, err := req.RequireString("metric")
	if err != nil {
		return mcp.NewToolResultError("metric parameter is required"), nil
	}

	uid := UserIDFromContext(ctx)
	rows := feed.LoadRows(ctx, h.db, uid, h.log)

	var payload any
	switch metric {
	case ingest.KindWeight:
		pts := series.Normalize(series.WeightSamples(rows.Weights), true)
		out := map[string]any{"points": pts}
		if rng, ok := series.DisplayRange(pts); ok {
			out["range"] = rng
		}
		payload = out
	case ingest.KindBloodPressure:
		payload = map[string]any{
			"systolic":  series.Normalize(series.SystolicSamples(rows.BloodPressures), false),
			"diastolic": series.Normalize(series.DiastolicSamples(rows.BloodPressures), false),
		}
	case ingest.KindGlucose:
		payload = map[string]any{
			"points": series.Normalize(series.GlucoseSamples(rows.Glucoses), false),
		}
	case ingest.KindExercise:
		payload = map[string]any{
			"duration": series.Normalize(series.ExerciseDurationSamples(rows.Exercises), false),
			"calories": series.Normalize(series.ExerciseCaloriesSamples(rows.Exercises), false),
		}
	default:
		return mcp.NewToolResultError("unknown metric: " + metric), nil
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getDailyMacros(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	rows := feed.LoadRows(ctx, h.db, uid, h.log)

	result, err := mcp.NewToolResultJSON(map[string]any{
		"daily_macros":   feed.DailyMacroTotals(rows.Foods),
		"meal_breakdown": feed.MealBreakdown(rows.Foods),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getUnifiedFeed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	rows := feed.LoadRows(ctx, h.db, uid, h.log)

	result, err := mcp.NewToolResultJSON(feed.Merge(rows.Weights, rows.BloodPressures, rows.Glucoses, rows.Foods))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getHealthSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	rows := feed.LoadRows(ctx, h.db, uid, h.log)

	summary := analysis.Summarize(
		series.Normalize(series.WeightSamples(rows.Weights), true),
		series.Normalize(series.SystolicSamples(rows.BloodPressures), false),
		series.Normalize(series.DiastolicSamples(rows.BloodPressures), false),
		series.Normalize(series.GlucoseSamples(rows.Glucoses), false),
	)

	out := map[string]any{"summary": summary}
	if stats, err := h.db.GetDataStats(ctx, uid); err != nil {
		h.log.Warn("get_health_summary: stats query failed", "error", err)
	} else {
		out["stats"] = stats
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Resource handlers ---

func (h *handlers) dailySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)
	rows := feed.LoadRows(ctx, h.db, uid, h.log)

	today := time.Now().Format("2006-01-02")

	summary := map[string]any{
		"date":           today,
		"latest_weight":  lastPoint(series.Normalize(series.WeightSamples(rows.Weights), true)),
		"latest_bp_sys":  lastPoint(series.Normalize(series.SystolicSamples(rows.BloodPressures), false)),
		"latest_bp_dia":  lastPoint(series.Normalize(series.DiastolicSamples(rows.BloodPressures), false)),
		"latest_glucose": lastPoint(series.Normalize(series.GlucoseSamples(rows.Glucoses), false)),
		"todays_macros":  todaysMacros(feed.DailyMacroTotals(rows.Foods), today),
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func lastPoint(pts []series.Point) *series.Point {
	if len(pts) == 0 {
		return nil
	}
	return &pts[len(pts)-1]
}

func todaysMacros(totals []feed.DailyMacros, day string) *feed.DailyMacros {
	for i := range totals {
		if totals[i].Day == day {
			return &totals[i]
		}
	}
	return nil
}
