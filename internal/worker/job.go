package worker

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/matchboard/matchboard-backend/internal/completion"
	"github.com/matchboard/matchboard-backend/internal/db"
	"github.com/matchboard/matchboard-backend/internal/forms"
	"github.com/matchboard/matchboard-backend/internal/normalize"
	"github.com/matchboard/matchboard-backend/internal/store"
	"golang.org/x/sync/errgroup"
)

// Storage is the slice of *store.Store the job needs. Tests inject a stub so
// the pipeline can run without Postgres.
type Storage interface {
	ImportBatch(ctx context.Context, p store.ImportBatchParams) (store.ImportResult, error)
	UpsertSubmissionRows(ctx context.Context, rows []normalize.Row) (int, error)
	RefreshCandidate(ctx context.Context, submissionID string, schema completion.Schema) (db.Candidate, error)
}

// BatchResult summarises one normalization pass.
type BatchResult struct {
	// Total is every submission currently stored, normalized or not.
	Total int `json:"total"`

	// Normalized is how many submissions this pass attempted — those with no
	// answer rows yet. A submission whose payload yields zero rows stays
	// rowless and is counted here again on the next pass.
	Normalized int `json:"normalized"`

	// AnswersCreated is the sum of answer rows written across the pass.
	AnswersCreated int `json:"answersCreated"`
}

// Job holds the dependencies for the sync pipeline. Each step is a separate
// method so they can be tested independently and so the Run method reads like
// an outline.
type Job struct {
	q           db.Querier
	store       Storage
	provider    forms.Client
	formID      string
	schema      completion.Schema
	concurrency int
	logger      *slog.Logger
}

// NewJob constructs a Job with all required dependencies. concurrency bounds
// how many submissions are normalized in parallel; values below 1 mean
// sequential.
func NewJob(
	q db.Querier,
	st Storage,
	provider forms.Client,
	formID string,
	schema completion.Schema,
	concurrency int,
	logger *slog.Logger,
) *Job {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Job{
		q:           q,
		store:       st,
		provider:    provider,
		formID:      formID,
		schema:      schema,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run executes one full sync against the run record created by the Runner:
//
//  1. Fetch the question catalogue and all responses from the provider.
//  2. Import both atomically via store.ImportBatch.
//  3. Normalize every submission that has no answer rows yet.
//  4. Refresh the candidate record of every submission touched in step 3.
//  5. Mark the run finished with its counters.
//
// Any error is returned to the Runner, which retries up to MaxRetries times
// before marking the run failed. Every step is idempotent, so a retry after a
// partial failure converges on the same end state.
func (j *Job) Run(ctx context.Context, runID uuid.UUID) error {
	log := j.logger.With("run_id", runID, "form_id", j.formID)
	log.Info("job: starting sync")

	questions, err := j.provider.ListQuestions(ctx, j.formID)
	if err != nil {
		return fmt.Errorf("job: list questions: %w", err)
	}

	responses, err := j.provider.ListResponses(ctx, j.formID)
	if err != nil {
		return fmt.Errorf("job: list responses: %w", err)
	}

	log.Debug("job: fetched form data", "questions", len(questions), "responses", len(responses))

	seeds := make([]store.SubmissionSeed, len(responses))
	for i, r := range responses {
		seeds[i] = store.SubmissionSeed{
			ID:              r.ResponseID,
			RespondentEmail: r.RespondentEmail,
			RawPayload:      r.Answers,
			SubmittedAt:     r.SubmittedAt,
		}
	}
	questionSeeds := make([]store.QuestionSeed, len(questions))
	for i, q := range questions {
		questionSeeds[i] = store.QuestionSeed{
			QuestionID: q.QuestionID,
			Label:      q.Label,
			Position:   q.Position,
		}
	}

	imported, err := j.store.ImportBatch(ctx, store.ImportBatchParams{
		FormID:      j.formID,
		Questions:   questionSeeds,
		Submissions: seeds,
	})
	if err != nil {
		return fmt.Errorf("job: import batch: %w", err)
	}

	result, err := j.NormalizeAll(ctx)
	if err != nil {
		return fmt.Errorf("job: normalize: %w", err)
	}

	log.Info("job: normalized",
		"total", result.Total,
		"normalized", result.Normalized,
		"answers_created", result.AnswersCreated,
	)

	if err := j.refreshCandidates(ctx, seeds); err != nil {
		return fmt.Errorf("job: refresh candidates: %w", err)
	}

	if _, err := j.q.FinishSyncRun(ctx, db.FinishSyncRunParams{
		ID:                  runID,
		SubmissionsImported: sql.NullInt32{Int32: int32(imported.Submissions), Valid: true},
		AnswersCreated:      sql.NullInt32{Int32: int32(result.AnswersCreated), Valid: true},
	}); err != nil {
		return fmt.Errorf("job: finish run: %w", err)
	}

	return nil
}

// NormalizeAll is one idempotent normalization pass over every stored
// submission. Submissions that already have answer rows are skipped; the rest
// are normalized concurrently, each one's rows written independently. It
// satisfies the Normalizer interface, backing POST /api/normalize.
//
// Concurrency is safe because each submission owns a disjoint key space in
// normalized_answers, and the AnswersCreated sum uses an atomic accumulator.
// The first error cancels the remaining work and is returned as-is; rows
// already written stay written and the next pass picks up where this one
// stopped.
func (j *Job) NormalizeAll(ctx context.Context) (BatchResult, error) {
	doneIDs, err := j.q.ListNormalizedSubmissionIDs(ctx)
	if err != nil {
		return BatchResult{}, fmt.Errorf("list normalized ids: %w", err)
	}
	done := make(map[string]bool, len(doneIDs))
	for _, id := range doneIDs {
		done[id] = true
	}

	subs, err := j.q.ListSubmissions(ctx)
	if err != nil {
		return BatchResult{}, fmt.Errorf("list submissions: %w", err)
	}

	var pending []db.Submission
	for _, sub := range subs {
		if !done[sub.ID] {
			pending = append(pending, sub)
		}
	}

	var answersCreated atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.concurrency)
	for _, sub := range pending {
		g.Go(func() error {
			rows := normalize.Rows(sub.ID, normalize.ParsePayload(sub.RawPayload))
			n, err := j.store.UpsertSubmissionRows(gctx, rows)
			if err != nil {
				return fmt.Errorf("submission %q: %w", sub.ID, err)
			}
			answersCreated.Add(int64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, err
	}

	return BatchResult{
		Total:          len(subs),
		Normalized:     len(pending),
		AnswersCreated: int(answersCreated.Load()),
	}, nil
}

// refreshCandidates rebuilds the candidate record for every submission seen
// in this sync. Upserting an unchanged candidate is cheap, so no attempt is
// made to detect which submissions actually changed.
func (j *Job) refreshCandidates(ctx context.Context, seeds []store.SubmissionSeed) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.concurrency)
	for _, seed := range seeds {
		g.Go(func() error {
			if _, err := j.store.RefreshCandidate(gctx, seed.ID, j.schema); err != nil {
				return fmt.Errorf("submission %q: %w", seed.ID, err)
			}
			return nil
		})
	}
	return g.Wait()
}
