// Package mcp exposes the stored health data to MCP clients, so an LLM
// assistant can query series, macros, and the unified feed directly.
package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/healthsync/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("HealthSync", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("HealthSync personal health data server. Query weight, blood pressure, glucose, and meal series, the unified chronological feed, and summary statistics. All data is scoped to the authenticated user."),
	)

	h := &handlers{db: db, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetMetricSeries, Handler: h.getMetricSeries},
		server.ServerTool{Tool: toolGetDailyMacros, Handler: h.getDailyMacros},
		server.ServerTool{Tool: toolGetUnifiedFeed, Handler: h.getUnifiedFeed},
		server.ServerTool{Tool: toolGetHealthSummary, Handler: h.getHealthSummary},
	)

	s.AddResources(
		server.ServerResource{Resource: resDailySummary, Handler: h.dailySummary},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db  *storage.DB
	log *slog.Logger
}

var resDailySummary = mcp.NewResource(
	"healthsync://daily_summary",
	"Daily Summary",
	mcp.WithResourceDescription("Today's key health metrics: latest weight, blood pressure, and glucose readings plus today's macro totals"),
	mcp.WithMIMEType("application/json"),
)
