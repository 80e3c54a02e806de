package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matchboard/matchboard-backend/internal/completion"
	"github.com/matchboard/matchboard-backend/internal/db"
	"github.com/matchboard/matchboard-backend/internal/normalize"
	"github.com/sqlc-dev/pqtype"
)

// RefreshCandidate rebuilds a submission's candidate record from its current
// normalized answer rows. It atomically:
//
//  1. Reads the labelled answer rows for the submission.
//  2. Folds them into a field map keyed by question label.
//  3. Splits the fields into profile and fun-facts halves.
//  4. Upserts the candidate row with both JSON documents.
//
// Step 1 and step 4 run in the same serializable transaction, so a concurrent
// re-normalization of the same submission can never produce a candidate built
// from a half-updated answer set.
//
// Fields whose label appears in schema.FunFactsKeys land in fun_facts; every
// other field, labelled or not, lands in profile. A submission with no rows
// yields a candidate with an empty profile, which the completion scorer then
// reports as fully incomplete.
func (s *Store) RefreshCandidate(ctx context.Context, submissionID string, schema completion.Schema) (db.Candidate, error) {
	var candidate db.Candidate

	funFactKeys := make(map[string]bool, len(schema.FunFactsKeys))
	for _, k := range schema.FunFactsKeys {
		funFactKeys[k] = true
	}

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		answerRows, err := q.GetAnswersBySubmission(ctx, submissionID)
		if err != nil {
			return fmt.Errorf("RefreshCandidate: load answers: %w", err)
		}

		rows := make([]normalize.Row, 0, len(answerRows))
		labels := make(map[string]string, len(answerRows))
		for _, r := range answerRows {
			rows = append(rows, normalize.Row{
				SubmissionID: r.SubmissionID,
				QuestionID:   r.QuestionID,
				AnswerIndex:  int(r.AnswerIndex),
				ValueText:    r.ValueText,
			})
			if r.Label.Valid {
				labels[r.QuestionID] = r.Label.String
			}
		}

		fields := completion.FieldMap(rows, labels)

		profile := make(map[string]any, len(fields))
		funFacts := make(map[string]any)
		for key, value := range fields {
			if funFactKeys[key] {
				funFacts[key] = value
			} else {
				profile[key] = value
			}
		}

		profileJSON, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("RefreshCandidate: marshal profile: %w", err)
		}

		var funFactsJSON pqtype.NullRawMessage
		if len(funFacts) > 0 {
			raw, err := json.Marshal(funFacts)
			if err != nil {
				return fmt.Errorf("RefreshCandidate: marshal fun facts: %w", err)
			}
			funFactsJSON = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
		}

		upserted, err := q.UpsertCandidate(ctx, db.UpsertCandidateParams{
			SubmissionID: submissionID,
			Profile:      profileJSON,
			FunFacts:     funFactsJSON,
		})
		if err != nil {
			return fmt.Errorf("RefreshCandidate: upsert candidate: %w", err)
		}

		candidate = upserted
		return nil
	})
	if err != nil {
		return db.Candidate{}, err
	}

	return candidate, nil
}
