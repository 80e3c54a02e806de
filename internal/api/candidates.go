package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/matchboard/matchboard-backend/internal/completion"
)

// ─── GET /api/candidates ─────────────────────────────────────────────────────

type candidateResponse struct {
	ID           string          `json:"id"`
	SubmissionID string          `json:"submission_id"`
	Status       string          `json:"status"`
	Profile      json.RawMessage `json:"profile"`
	FunFacts     json.RawMessage `json:"fun_facts,omitempty"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

// handleListCandidates returns all candidate records, newest first. Profile
// and fun-facts documents are passed through as stored.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.q.ListCandidates(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list candidates: %w", err))
		return
	}

	out := make([]candidateResponse, len(candidates))
	for i, c := range candidates {
		resp := candidateResponse{
			ID:           c.ID.String(),
			SubmissionID: c.SubmissionID,
			Status:       string(c.Status),
			Profile:      c.Profile,
			CreatedAt:    c.CreatedAt.UTC().Format(timeFormat),
			UpdatedAt:    c.UpdatedAt.UTC().Format(timeFormat),
		}
		if c.FunFacts.Valid {
			resp.FunFacts = c.FunFacts.RawMessage
		}
		out[i] = resp
	}

	respond(w, http.StatusOK, map[string]any{"candidates": out})
}

// ─── POST /api/submissions/:submissionID/refresh ──────────────────────────────

// handleRefreshCandidate rebuilds one candidate record from its current
// normalized rows. Staff use it after correcting answer data by hand instead
// of waiting for the next sync.
func (s *Server) handleRefreshCandidate(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "submissionID")
	if submissionID == "" {
		respondErr(w, http.StatusBadRequest, "missing submission id")
		return
	}

	if _, err := s.q.GetSubmission(r.Context(), submissionID); errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "submission not found")
		return
	} else if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get submission: %w", err))
		return
	}

	candidate, err := s.store.RefreshCandidate(r.Context(), submissionID, s.schema)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("refresh candidate: %w", err))
		return
	}

	s.logger.Info("candidate refreshed manually", "submission_id", submissionID, logField(r))
	respond(w, http.StatusOK, map[string]string{
		"candidate_id":  candidate.ID.String(),
		"submission_id": candidate.SubmissionID,
	})
}

// ─── GET /api/candidates/:candidateID/completion ─────────────────────────────

// handleGetCompletion scores a candidate's profile completeness against the
// configured field set and returns the percentage plus missing field names.
func (s *Server) handleGetCompletion(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(chi.URLParam(r, "candidateID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	candidate, err := s.q.GetCandidateByID(r.Context(), candidateID)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "candidate not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get candidate: %w", err))
		return
	}

	var profile map[string]any
	if err := json.Unmarshal(candidate.Profile, &profile); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("candidate %s: decode profile: %w", candidateID, err))
		return
	}

	var funFacts map[string]any
	if candidate.FunFacts.Valid {
		if err := json.Unmarshal(candidate.FunFacts.RawMessage, &funFacts); err != nil {
			s.respondInternalErr(w, r, fmt.Errorf("candidate %s: decode fun facts: %w", candidateID, err))
			return
		}
	}

	result := completion.Score(s.schema, profile, funFacts)

	respond(w, http.StatusOK, map[string]any{
		"candidate_id": candidateID.String(),
		"pct":          result.Pct,
		"missing":      result.Missing,
	})
}
