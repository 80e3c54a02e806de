package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matchboard/matchboard-backend/internal/db"
)

// ─── INPUT TYPES ─────────────────────────────────────────────────────────────

// QuestionSeed is one form question as fetched from the provider. The worker
// converts forms.QuestionLabel values into these before calling ImportBatch.
type QuestionSeed struct {
	QuestionID string
	Label      string
	Position   int
}

// SubmissionSeed is one raw form response as fetched from the provider. The
// RawPayload is the provider's answers object, stored verbatim so the
// normalizer can re-read it on every run.
type SubmissionSeed struct {
	ID              string // provider response ID, used as the submissions PK
	RespondentEmail string // may be empty
	RawPayload      json.RawMessage
	SubmittedAt     time.Time
}

// ImportBatchParams is everything one provider fetch hands to the store.
type ImportBatchParams struct {
	FormID      string
	Questions   []QuestionSeed
	Submissions []SubmissionSeed
}

// ImportResult reports how many rows the batch touched. Upserts count
// re-imported rows the same as new ones; the sync run record only cares
// about total volume, not novelty.
type ImportResult struct {
	Questions   int
	Submissions int
}

// ─── METHODS ─────────────────────────────────────────────────────────────────

// ImportBatch atomically upserts the question catalogue and the raw
// submissions from one provider fetch. Either the whole fetch lands or none
// of it does, so a half-imported batch can never leave submissions pointing
// at questions the catalogue does not know about.
//
// Re-running ImportBatch with the same fetch is a no-op apart from updated_at
// bumps: both upserts key on the provider's stable IDs.
func (s *Store) ImportBatch(ctx context.Context, p ImportBatchParams) (ImportResult, error) {
	var res ImportResult

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		for _, question := range p.Questions {
			if _, err := q.UpsertQuestion(ctx, db.UpsertQuestionParams{
				QuestionID: question.QuestionID,
				FormID:     p.FormID,
				Label:      question.Label,
				Position:   int32(question.Position),
			}); err != nil {
				return fmt.Errorf("ImportBatch: upsert question %q: %w", question.QuestionID, err)
			}
			res.Questions++
		}

		for _, sub := range p.Submissions {
			if _, err := q.UpsertSubmission(ctx, db.UpsertSubmissionParams{
				ID:     sub.ID,
				FormID: p.FormID,
				RespondentEmail: sql.NullString{
					String: sub.RespondentEmail,
					Valid:  sub.RespondentEmail != "",
				},
				RawPayload:  sub.RawPayload,
				SubmittedAt: sub.SubmittedAt,
			}); err != nil {
				return fmt.Errorf("ImportBatch: upsert submission %q: %w", sub.ID, err)
			}
			res.Submissions++
		}

		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	return res, nil
}
