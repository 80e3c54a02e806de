package api

import (
	"fmt"
	"net/http"
)

// ─── POST /api/sync ──────────────────────────────────────────────────────────

// handleTriggerSync enqueues an out-of-schedule sync run. The run itself
// happens on the worker; the handler returns as soon as the request is
// queued. 409 means a sync is already waiting, which serves the same purpose.
func (s *Server) handleTriggerSync(w http.ResponseWriter, r *http.Request) {
	if err := s.worker.Enqueue(r.Context()); err != nil {
		respondErr(w, http.StatusConflict, err.Error())
		return
	}

	s.logger.Info("sync triggered manually", logField(r))
	respond(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

// ─── GET /api/sync/runs ──────────────────────────────────────────────────────

type syncRunResponse struct {
	ID                  string `json:"id"`
	Status              string `json:"status"`
	StartedAt           string `json:"started_at"`
	FinishedAt          string `json:"finished_at,omitempty"`
	SubmissionsImported *int32 `json:"submissions_imported,omitempty"`
	AnswersCreated      *int32 `json:"answers_created,omitempty"`
	ErrorMessage        string `json:"error_message,omitempty"`
}

// handleListSyncRuns returns the most recent sync runs, newest first.
func (s *Server) handleListSyncRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.q.ListRecentSyncRuns(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list sync runs: %w", err))
		return
	}

	out := make([]syncRunResponse, len(runs))
	for i, run := range runs {
		resp := syncRunResponse{
			ID:        run.ID.String(),
			Status:    string(run.Status),
			StartedAt: run.StartedAt.UTC().Format(timeFormat),
		}
		if run.FinishedAt.Valid {
			resp.FinishedAt = run.FinishedAt.Time.UTC().Format(timeFormat)
		}
		if run.SubmissionsImported.Valid {
			v := run.SubmissionsImported.Int32
			resp.SubmissionsImported = &v
		}
		if run.AnswersCreated.Valid {
			v := run.AnswersCreated.Int32
			resp.AnswersCreated = &v
		}
		if run.ErrorMessage.Valid {
			resp.ErrorMessage = run.ErrorMessage.String
		}
		out[i] = resp
	}

	respond(w, http.StatusOK, map[string]any{"runs": out})
}

// ─── POST /api/normalize ─────────────────────────────────────────────────────

// handleNormalize runs one synchronous normalization pass over every stored
// submission and returns its counters. The pass is idempotent, so staff can
// hit this freely after a manual data fix.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	result, err := s.normalizer.NormalizeAll(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("normalize: %w", err))
		return
	}

	s.logger.Info("manual normalization pass",
		"total", result.Total,
		"normalized", result.Normalized,
		"answers_created", result.AnswersCreated,
		logField(r),
	)
	respond(w, http.StatusOK, result)
}
