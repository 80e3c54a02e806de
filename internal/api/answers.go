package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ─── GET /api/submissions/:submissionID/answers ──────────────────────────────

// answerResponse is one normalized answer row with its question metadata.
type answerResponse struct {
	QuestionID  string  `json:"question_id"`
	Label       string  `json:"label,omitempty"`
	AnswerIndex int32   `json:"answer_index"`
	Value       *string `json:"value"` // null for file entries with no name or id
}

// handleGetSubmissionAnswers returns every normalized row for one submission,
// ordered by question position then answer index. An unknown submission id
// simply has no rows; distinguishing that from "known but not yet normalized"
// would cost a second query and the frontend treats both the same.
func (s *Server) handleGetSubmissionAnswers(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "submissionID")
	if submissionID == "" {
		respondErr(w, http.StatusBadRequest, "missing submission id")
		return
	}

	rows, err := s.q.GetAnswersBySubmission(r.Context(), submissionID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get answers: %w", err))
		return
	}

	out := make([]answerResponse, len(rows))
	for i, row := range rows {
		resp := answerResponse{
			QuestionID:  row.QuestionID,
			AnswerIndex: row.AnswerIndex,
		}
		if row.Label.Valid {
			resp.Label = row.Label.String
		}
		if row.ValueText.Valid {
			v := row.ValueText.String
			resp.Value = &v
		}
		out[i] = resp
	}

	respond(w, http.StatusOK, map[string]any{
		"submission_id": submissionID,
		"answers":       out,
	})
}

// ─── GET /api/answers/search?q= ──────────────────────────────────────────────

type searchHit struct {
	SubmissionID string `json:"submission_id"`
	QuestionID   string `json:"question_id"`
	Label        string `json:"label,omitempty"`
	AnswerIndex  int32  `json:"answer_index"`
	Value        string `json:"value"`
}

// handleSearchAnswers runs a case-insensitive substring search over answer
// values. Capped at 100 hits in the query; staff narrow the term rather than
// paginate.
func (s *Server) handleSearchAnswers(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		respondErr(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	rows, err := s.q.SearchAnswers(r.Context(), term)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("search answers: %w", err))
		return
	}

	out := make([]searchHit, len(rows))
	for i, row := range rows {
		hit := searchHit{
			SubmissionID: row.SubmissionID,
			QuestionID:   row.QuestionID,
			AnswerIndex:  row.AnswerIndex,
			Value:        row.ValueText.String,
		}
		if row.Label.Valid {
			hit.Label = row.Label.String
		}
		out[i] = hit
	}

	respond(w, http.StatusOK, map[string]any{
		"query": term,
		"hits":  out,
	})
}
