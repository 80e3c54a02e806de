package store

import (
	"context"
	"fmt"

	"github.com/matchboard/matchboard-backend/internal/db"
	"github.com/matchboard/matchboard-backend/internal/normalize"
)

// UpsertSubmissionRows writes the normalized answer rows for one submission.
//
// Each row is upserted individually, outside any transaction. This is
// deliberate: a failure partway through leaves the rows already written in
// place, and because every upsert keys on (submission_id, question_id,
// answer_index) the next normalization run simply overwrites them and
// continues. Wrapping the loop in a transaction would buy nothing but
// longer lock hold times on the unique index.
//
// Returns the number of rows written. A submission whose payload produced no
// rows writes nothing and returns 0, nil.
func (s *Store) UpsertSubmissionRows(ctx context.Context, rows []normalize.Row) (int, error) {
	written := 0
	for _, row := range rows {
		if _, err := s.q.UpsertNormalizedAnswer(ctx, db.UpsertNormalizedAnswerParams{
			SubmissionID: row.SubmissionID,
			QuestionID:   row.QuestionID,
			AnswerIndex:  int32(row.AnswerIndex),
			ValueText:    row.ValueText,
		}); err != nil {
			return written, fmt.Errorf("UpsertSubmissionRows: submission %q question %q index %d: %w",
				row.SubmissionID, row.QuestionID, row.AnswerIndex, err)
		}
		written++
	}
	return written, nil
}
