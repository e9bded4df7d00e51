package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/healthsync/internal/ingest"
	"github.com/claude/healthsync/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db         *storage.DB
	ingest     *ingest.Provider
	log        *slog.Logger
	apiKey     string
	reportsDir string
	router     chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, provider *ingest.Provider, apiKey, reportsDir string, log *slog.Logger) *Server {
	s := &Server{
		db:         db,
		ingest:     provider,
		log:        log,
		apiKey:     apiKey,
		reportsDir: reportsDir,
		router:     chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Sync endpoint (API key required)
	s.router.Route("/api/v1/sync", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleSync)
	})

	// Dashboard API endpoints (no auth — tsnet handles access)
	s.router.Post("/api/v1/records", s.handleCreateRecord)
	s.router.Get("/api/v1/charts", s.handleCharts)
	s.router.Get("/api/v1/feed", s.handleFeed)
	s.router.Get("/api/v1/analysis", s.handleAnalysis)
	s.router.Get("/api/v1/stats", s.handleStats)
}
