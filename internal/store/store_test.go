package store_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/matchboard/matchboard-backend/internal/completion"
	"github.com/matchboard/matchboard-backend/internal/db"
	"github.com/matchboard/matchboard-backend/internal/normalize"
	"github.com/matchboard/matchboard-backend/internal/store"
)

// ─── TEST INFRASTRUCTURE ──────────────────────────────────────────────────────

// openTestDB returns a *sql.DB from DATABASE_URL. Skips if the env var is
// not set so the test suite still passes in CI without a Postgres instance.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set — skipping store integration tests")
	}
	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if err := pool.PingContext(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("ping: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return pool
}

// cleanupSubmission removes a test submission and everything hanging off it.
func cleanupSubmission(t *testing.T, pool *sql.DB, submissionID string) {
	t.Helper()
	ctx := context.Background()
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM candidates WHERE submission_id=$1", submissionID)
		_, _ = pool.ExecContext(ctx, "DELETE FROM normalized_answers WHERE submission_id=$1", submissionID)
		_, _ = pool.ExecContext(ctx, "DELETE FROM submissions WHERE id=$1", submissionID)
	})
}

func cleanupQuestion(t *testing.T, pool *sql.DB, questionID string) {
	t.Helper()
	ctx := context.Background()
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM questions WHERE question_id=$1", questionID)
	})
}

// ─── ImportBatch ──────────────────────────────────────────────────────────────

func TestImportBatch_UpsertsQuestionsAndSubmissions(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	subID := "resp_import_" + t.Name()
	questionID := "q_import_" + t.Name()
	cleanupSubmission(t, pool, subID)
	cleanupQuestion(t, pool, questionID)

	res, err := st.ImportBatch(ctx, store.ImportBatchParams{
		FormID: "form_test",
		Questions: []store.QuestionSeed{
			{QuestionID: questionID, Label: "first_name", Position: 1},
		},
		Submissions: []store.SubmissionSeed{
			{
				ID:              subID,
				RespondentEmail: "ada@example.com",
				RawPayload:      json.RawMessage(`{"` + questionID + `":{"textAnswers":{"answers":[{"value":"Ada"}]}}}`),
				SubmittedAt:     time.Now().UTC(),
			},
		},
	})
	if err != nil {
		t.Fatalf("ImportBatch: %v", err)
	}
	if res.Questions != 1 || res.Submissions != 1 {
		t.Errorf("result: %+v, want 1 question and 1 submission", res)
	}

	sub, err := q.GetSubmission(ctx, subID)
	if err != nil {
		t.Fatalf("GetSubmission: %v", err)
	}
	if !sub.RespondentEmail.Valid || sub.RespondentEmail.String != "ada@example.com" {
		t.Errorf("respondent email: %+v", sub.RespondentEmail)
	}
}

func TestImportBatch_RerunIsIdempotent(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	subID := "resp_rerun_" + t.Name()
	questionID := "q_rerun_" + t.Name()
	cleanupSubmission(t, pool, subID)
	cleanupQuestion(t, pool, questionID)

	params := store.ImportBatchParams{
		FormID: "form_test",
		Questions: []store.QuestionSeed{
			{QuestionID: questionID, Label: "city", Position: 3},
		},
		Submissions: []store.SubmissionSeed{
			{
				ID:          subID,
				RawPayload:  json.RawMessage(`{}`),
				SubmittedAt: time.Now().UTC(),
			},
		},
	}

	if _, err := st.ImportBatch(ctx, params); err != nil {
		t.Fatalf("first import: %v", err)
	}

	// Second run with a relabelled question must update in place, not error.
	params.Questions[0].Label = "home_city"
	if _, err := st.ImportBatch(ctx, params); err != nil {
		t.Fatalf("second import: %v", err)
	}

	questions, err := q.ListQuestions(ctx, "form_test")
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	found := 0
	for _, question := range questions {
		if question.QuestionID == questionID {
			found++
			if question.Label != "home_city" {
				t.Errorf("label: got %q, want %q", question.Label, "home_city")
			}
		}
	}
	if found != 1 {
		t.Errorf("question rows: got %d, want 1", found)
	}
}

// ─── UpsertSubmissionRows ─────────────────────────────────────────────────────

func TestUpsertSubmissionRows_WritesAndOverwrites(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	subID := "resp_rows_" + t.Name()
	questionID := "q_rows_" + t.Name()
	cleanupSubmission(t, pool, subID)
	cleanupQuestion(t, pool, questionID)

	if _, err := st.ImportBatch(ctx, store.ImportBatchParams{
		FormID:    "form_test",
		Questions: []store.QuestionSeed{{QuestionID: questionID, Label: "city", Position: 1}},
		Submissions: []store.SubmissionSeed{
			{ID: subID, RawPayload: json.RawMessage(`{}`), SubmittedAt: time.Now().UTC()},
		},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rows := []normalize.Row{
		{SubmissionID: subID, QuestionID: questionID, AnswerIndex: 0, ValueText: sql.NullString{String: "Paris", Valid: true}},
		{SubmissionID: subID, QuestionID: questionID, AnswerIndex: 1, ValueText: sql.NullString{String: "Lyon", Valid: true}},
	}

	written, err := st.UpsertSubmissionRows(ctx, rows)
	if err != nil {
		t.Fatalf("UpsertSubmissionRows: %v", err)
	}
	if written != 2 {
		t.Errorf("written: got %d, want 2", written)
	}

	// Re-run with a changed value: same keys, updated value, no duplicates.
	rows[0].ValueText = sql.NullString{String: "Marseille", Valid: true}
	if _, err := st.UpsertSubmissionRows(ctx, rows); err != nil {
		t.Fatalf("second UpsertSubmissionRows: %v", err)
	}

	got, err := q.GetAnswersBySubmission(ctx, subID)
	if err != nil {
		t.Fatalf("GetAnswersBySubmission: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rows: got %d, want 2", len(got))
	}
	if got[0].ValueText.String != "Marseille" {
		t.Errorf("row 0 value: got %q, want %q", got[0].ValueText.String, "Marseille")
	}
}

func TestUpsertSubmissionRows_EmptyWritesNothing(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	written, err := st.UpsertSubmissionRows(ctx, nil)
	if err != nil {
		t.Fatalf("UpsertSubmissionRows: %v", err)
	}
	if written != 0 {
		t.Errorf("written: got %d, want 0", written)
	}
}

// ─── RefreshCandidate ─────────────────────────────────────────────────────────

func TestRefreshCandidate_SplitsProfileAndFunFacts(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	subID := "resp_cand_" + t.Name()
	nameQ := "q_cand_name_" + t.Name()
	factQ := "q_cand_fact_" + t.Name()
	cleanupSubmission(t, pool, subID)
	cleanupQuestion(t, pool, nameQ)
	cleanupQuestion(t, pool, factQ)

	if _, err := st.ImportBatch(ctx, store.ImportBatchParams{
		FormID: "form_test",
		Questions: []store.QuestionSeed{
			{QuestionID: nameQ, Label: "first_name", Position: 1},
			{QuestionID: factQ, Label: "ideal_weekend", Position: 2},
		},
		Submissions: []store.SubmissionSeed{
			{ID: subID, RawPayload: json.RawMessage(`{}`), SubmittedAt: time.Now().UTC()},
		},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rows := []normalize.Row{
		{SubmissionID: subID, QuestionID: factQ, AnswerIndex: 0, ValueText: sql.NullString{String: "hiking and jazz bars", Valid: true}},
		{SubmissionID: subID, QuestionID: nameQ, AnswerIndex: 0, ValueText: sql.NullString{String: "Ada", Valid: true}},
	}
	if _, err := st.UpsertSubmissionRows(ctx, rows); err != nil {
		t.Fatalf("seed rows: %v", err)
	}

	candidate, err := st.RefreshCandidate(ctx, subID, completion.DefaultSchema())
	if err != nil {
		t.Fatalf("RefreshCandidate: %v", err)
	}

	var profile map[string]any
	if err := json.Unmarshal(candidate.Profile, &profile); err != nil {
		t.Fatalf("unmarshal profile: %v", err)
	}
	if profile["first_name"] != "Ada" {
		t.Errorf("profile first_name: got %v", profile["first_name"])
	}
	if _, leaked := profile["ideal_weekend"]; leaked {
		t.Error("fun-facts field leaked into profile")
	}

	if !candidate.FunFacts.Valid {
		t.Fatal("expected fun_facts to be set")
	}
	var funFacts map[string]any
	if err := json.Unmarshal(candidate.FunFacts.RawMessage, &funFacts); err != nil {
		t.Fatalf("unmarshal fun facts: %v", err)
	}
	if funFacts["ideal_weekend"] != "hiking and jazz bars" {
		t.Errorf("fun fact: got %v", funFacts["ideal_weekend"])
	}
}

func TestRefreshCandidate_NoRowsYieldsEmptyProfile(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	subID := "resp_empty_" + t.Name()
	cleanupSubmission(t, pool, subID)

	if _, err := st.ImportBatch(ctx, store.ImportBatchParams{
		FormID: "form_test",
		Submissions: []store.SubmissionSeed{
			{ID: subID, RawPayload: json.RawMessage(`{}`), SubmittedAt: time.Now().UTC()},
		},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	candidate, err := st.RefreshCandidate(ctx, subID, completion.DefaultSchema())
	if err != nil {
		t.Fatalf("RefreshCandidate: %v", err)
	}
	if string(candidate.Profile) != "{}" {
		t.Errorf("profile: got %s, want {}", candidate.Profile)
	}
	if candidate.FunFacts.Valid {
		t.Errorf("fun_facts: got %s, want NULL", candidate.FunFacts.RawMessage)
	}
}
