package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/healthsync/internal/ingest"
)

// TestHandleSyncInvalidJSON verifies that a malformed sync body is rejected
// with 400 before any ingest work happens.
func TestHandleSyncInvalidJSON(t *testing.T) {
	s := &Server{log: slog.Default()}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	s.handleSync(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message in the response body")
	}
}

// TestWriteSyncErrorSteps verifies that StepError failures are reported with
// the failing step, so clients know whether to retry user creation or records.
func TestWriteSyncErrorSteps(t *testing.T) {
	s := &Server{log: slog.Default()}

	tests := []struct {
		step       string
		err        error
		wantStatus int
	}{
		{"user", http.ErrBodyNotAllowed, http.StatusBadRequest},
		{"records", http.ErrBodyNotAllowed, http.StatusInternalServerError},
		{"records", ingest.ErrNoMetricData, http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		s.writeSyncError(rec, &ingest.StepError{Step: tt.step, Err: tt.err})

		if rec.Code != tt.wantStatus {
			t.Errorf("step %q: status = %d, want %d", tt.step, rec.Code, tt.wantStatus)
		}
		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if body["step"] != tt.step {
			t.Errorf("step = %q, want %q", body["step"], tt.step)
		}
	}
}

// TestUserIDParamDefault verifies that reads fall back to user 1 when no
// user_id query parameter is present or it is invalid.
func TestUserIDParamDefault(t *testing.T) {
	for _, target := range []string{"/api/v1/feed", "/api/v1/feed?user_id=abc", "/api/v1/feed?user_id=-3"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if id := userIDParam(req); id != 1 {
			t.Errorf("userIDParam(%q) = %d, want 1", target, id)
		}
	}
}

// TestUserIDParamSet verifies that an explicit user_id is honored.
func TestUserIDParamSet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?user_id=42", nil)
	if id := userIDParam(req); id != 42 {
		t.Errorf("userIDParam = %d, want 42", id)
	}
}
