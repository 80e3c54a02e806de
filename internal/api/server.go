// Package api implements the HTTP layer for the Matchboard back office.
// Handlers are methods on *Server. Each handler file is responsible for one
// resource group and only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/matchboard/matchboard-backend/internal/completion"
	"github.com/matchboard/matchboard-backend/internal/db"
	"github.com/matchboard/matchboard-backend/internal/store"
	"github.com/matchboard/matchboard-backend/internal/worker"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// StaffAPIKey authenticates every /api route. The back-office frontend
	// sends it in the X-Staff-Key header.
	StaffAPIKey string

	// Env is "production", "staging", or "development".
	Env string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// q handles all single-query reads. Injected directly — no repo wrapper.
	q db.Querier

	// store handles multi-step atomic writes.
	store *store.Store

	// worker triggers sync runs outside the schedule.
	worker worker.Enqueuer

	// normalizer runs one normalization pass on demand.
	normalizer worker.Normalizer

	// schema is the scored field set used for completion responses.
	schema completion.Schema

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	q db.Querier,
	st *store.Store,
	enqueuer worker.Enqueuer,
	normalizer worker.Normalizer,
	schema completion.Schema,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		q:          q,
		store:      st,
		worker:     enqueuer,
		normalizer: normalizer,
		schema:     schema,
		cfg:        cfg,
		logger:     logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API v1 — staff key required on everything ─────────────────────────────
	r.Route("/api", func(r chi.Router) {
		r.Use(s.requireStaffKey)

		// Sync pipeline.
		r.Post("/sync", s.handleTriggerSync)
		r.Get("/sync/runs", s.handleListSyncRuns)
		r.Post("/normalize", s.handleNormalize)

		// Normalized answers.
		r.Get("/submissions/{submissionID}/answers", s.handleGetSubmissionAnswers)
		r.Post("/submissions/{submissionID}/refresh", s.handleRefreshCandidate)
		r.Get("/answers/search", s.handleSearchAnswers)

		// Candidates.
		r.Get("/candidates", s.handleListCandidates)
		r.Get("/candidates/{candidateID}/completion", s.handleGetCompletion)
	})

	return r
}
