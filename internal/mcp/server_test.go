package mcp

import (
	"context"
	"testing"

	"github.com/claude/healthsync/internal/feed"
	"github.com/claude/healthsync/internal/series"
)

// TestUserIDFromContextDefault verifies the default user ID (1) when no value
// is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != 1 {
		t.Errorf("UserIDFromContext(empty) = %d, want 1", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	if id := UserIDFromContext(ctx); id != 42 {
		t.Errorf("UserIDFromContext = %d, want 42", id)
	}
}

// TestLastPoint verifies lastPoint returns the final (most recent) entry of a
// normalized series, or nil for an empty series.
func TestLastPoint(t *testing.T) {
	if got := lastPoint(nil); got != nil {
		t.Errorf("lastPoint(nil) = %v, want nil", got)
	}

	pts := []series.Point{
		{Day: "2024-01-01", Value: 80},
		{Day: "2024-01-02", Value: 79.5},
	}
	got := lastPoint(pts)
	if got == nil || got.Day != "2024-01-02" || got.Value != 79.5 {
		t.Errorf("lastPoint = %+v, want the 2024-01-02 point", got)
	}
}

// TestTodaysMacros verifies the daily summary picks out the macro totals for
// the requested day only.
func TestTodaysMacros(t *testing.T) {
	totals := []feed.DailyMacros{
		{Day: "2024-01-01", Protein: 20},
		{Day: "2024-01-02", Protein: 40},
	}

	got := todaysMacros(totals, "2024-01-02")
	if got == nil || got.Protein != 40 {
		t.Errorf("todaysMacros = %+v, want the 2024-01-02 totals", got)
	}
	if got := todaysMacros(totals, "2024-01-03"); got != nil {
		t.Errorf("todaysMacros for a day without food = %+v, want nil", got)
	}
}
