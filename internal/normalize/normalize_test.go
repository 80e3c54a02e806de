package normalize_test

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/matchboard/matchboard-backend/internal/normalize"
)

// ─── ExtractValues — text path ────────────────────────────────────────────────

func TestExtractValues_TextAnswersInOrder(t *testing.T) {
	p := normalize.AnswerPayload{
		TextAnswers: &normalize.TextAnswers{
			Answers: []normalize.TextAnswer{{Value: "Paris"}, {Value: "Lyon"}},
		},
	}
	got := normalize.ExtractValues(p)
	if len(got) != 2 {
		t.Fatalf("expected 2 values, got %d", len(got))
	}
	if got[0].String != "Paris" || got[1].String != "Lyon" {
		t.Errorf("got %q, %q", got[0].String, got[1].String)
	}
}

func TestExtractValues_TextAnswersSkipEmptyValues(t *testing.T) {
	// Empty values are filtered; positions are assigned within the filtered
	// list, so "Lyon" ends up at index 1, not 2.
	p := normalize.AnswerPayload{
		TextAnswers: &normalize.TextAnswers{
			Answers: []normalize.TextAnswer{{Value: "Paris"}, {Value: ""}, {Value: "Lyon"}},
		},
	}
	got := normalize.ExtractValues(p)
	if len(got) != 2 {
		t.Fatalf("expected 2 values, got %d", len(got))
	}
	if got[1].String != "Lyon" {
		t.Errorf("filtered position 1: got %q, want %q", got[1].String, "Lyon")
	}
}

func TestExtractValues_TextWinsOverCoPresentFiles(t *testing.T) {
	p := normalize.AnswerPayload{
		TextAnswers: &normalize.TextAnswers{
			Answers: []normalize.TextAnswer{{Value: "text"}},
		},
		FileUploadAnswers: &normalize.FileAnswers{
			Answers: []normalize.FileAnswer{{FileID: "f1"}},
		},
	}
	got := normalize.ExtractValues(p)
	if len(got) != 1 || got[0].String != "text" {
		t.Errorf("expected text variant to win, got %+v", got)
	}
}

// ─── ExtractValues — file path ────────────────────────────────────────────────

func TestExtractValues_FileFallbackNameThenIDThenNull(t *testing.T) {
	p := normalize.AnswerPayload{
		FileUploadAnswers: &normalize.FileAnswers{
			Answers: []normalize.FileAnswer{
				{FileID: "f1"},
				{FileName: "photo.png"},
				{FileID: "f3", FileName: "cv.pdf"},
				{},
			},
		},
	}
	got := normalize.ExtractValues(p)
	if len(got) != 4 {
		t.Fatalf("expected 4 values (no skipping on file path), got %d", len(got))
	}
	want := []sql.NullString{
		{String: "f1", Valid: true},
		{String: "photo.png", Valid: true},
		{String: "cv.pdf", Valid: true},
		{},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExtractValues_EmptyTextListFallsBackToFiles(t *testing.T) {
	p := normalize.AnswerPayload{
		TextAnswers: &normalize.TextAnswers{},
		FileUploadAnswers: &normalize.FileAnswers{
			Answers: []normalize.FileAnswer{{FileID: "f1"}},
		},
	}
	got := normalize.ExtractValues(p)
	if len(got) != 1 || got[0].String != "f1" {
		t.Errorf("expected file fallback, got %+v", got)
	}
}

func TestExtractValues_NoVariantYieldsNothing(t *testing.T) {
	for name, p := range map[string]normalize.AnswerPayload{
		"zero payload":     {},
		"empty text list":  {TextAnswers: &normalize.TextAnswers{}},
		"empty file list":  {FileUploadAnswers: &normalize.FileAnswers{}},
		"both lists empty": {TextAnswers: &normalize.TextAnswers{}, FileUploadAnswers: &normalize.FileAnswers{}},
	} {
		if got := normalize.ExtractValues(p); len(got) != 0 {
			t.Errorf("%s: expected no values, got %d", name, len(got))
		}
	}
}

// ─── Rows ────────────────────────────────────────────────────────────────────

func textPayload(values ...string) normalize.AnswerPayload {
	answers := make([]normalize.TextAnswer, len(values))
	for i, v := range values {
		answers[i] = normalize.TextAnswer{Value: v}
	}
	return normalize.AnswerPayload{TextAnswers: &normalize.TextAnswers{Answers: answers}}
}

func TestRows_TextScenario(t *testing.T) {
	rows := normalize.Rows("s1", map[string]normalize.AnswerPayload{
		"q1": textPayload("Paris", "Lyon"),
	})

	want := []normalize.Row{
		{SubmissionID: "s1", QuestionID: "q1", AnswerIndex: 0, ValueText: sql.NullString{String: "Paris", Valid: true}},
		{SubmissionID: "s1", QuestionID: "q1", AnswerIndex: 1, ValueText: sql.NullString{String: "Lyon", Valid: true}},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestRows_FileScenario(t *testing.T) {
	rows := normalize.Rows("s1", map[string]normalize.AnswerPayload{
		"q2": {FileUploadAnswers: &normalize.FileAnswers{
			Answers: []normalize.FileAnswer{{FileID: "f1"}, {FileName: "photo.png"}},
		}},
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ValueText.String != "f1" || rows[0].AnswerIndex != 0 {
		t.Errorf("row 0: %+v", rows[0])
	}
	if rows[1].ValueText.String != "photo.png" || rows[1].AnswerIndex != 1 {
		t.Errorf("row 1: %+v", rows[1])
	}
}

func TestRows_IndexContiguityPerQuestion(t *testing.T) {
	rows := normalize.Rows("s1", map[string]normalize.AnswerPayload{
		"q_a": textPayload("1", "2", "3"),
		"q_b": textPayload("x"),
	})

	perQuestion := make(map[string][]int)
	for _, r := range rows {
		perQuestion[r.QuestionID] = append(perQuestion[r.QuestionID], r.AnswerIndex)
	}
	for q, indexes := range perQuestion {
		for i, idx := range indexes {
			if idx != i {
				t.Errorf("question %s: index %d at position %d — not contiguous", q, idx, i)
			}
		}
	}
	if len(perQuestion["q_a"]) != 3 || len(perQuestion["q_b"]) != 1 {
		t.Errorf("row counts: %v", perQuestion)
	}
}

func TestRows_SortedQuestionOrder(t *testing.T) {
	rows := normalize.Rows("s1", map[string]normalize.AnswerPayload{
		"q_z": textPayload("z"),
		"q_a": textPayload("a"),
		"q_m": textPayload("m"),
	})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].QuestionID != "q_a" || rows[1].QuestionID != "q_m" || rows[2].QuestionID != "q_z" {
		t.Errorf("order: %s %s %s", rows[0].QuestionID, rows[1].QuestionID, rows[2].QuestionID)
	}
}

func TestRows_QuestionWithNothingExtractableContributesNoRows(t *testing.T) {
	rows := normalize.Rows("s1", map[string]normalize.AnswerPayload{
		"q_empty": {},
		"q_full":  textPayload("hello"),
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].QuestionID != "q_full" {
		t.Errorf("got %s", rows[0].QuestionID)
	}
}

func TestRows_EmptyPayload(t *testing.T) {
	if rows := normalize.Rows("s1", nil); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

// ─── ParsePayload ─────────────────────────────────────────────────────────────

func TestParsePayload_ProviderShape(t *testing.T) {
	raw := json.RawMessage(`{
		"q1": { "textAnswers": { "answers": [ { "value": "Paris" } ] } },
		"q2": { "fileUploadAnswers": { "answers": [ { "fileId": "f1", "fileName": "a.png" } ] } }
	}`)
	payload := normalize.ParsePayload(raw)
	if len(payload) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(payload))
	}
	if payload["q1"].TextAnswers == nil || payload["q1"].TextAnswers.Answers[0].Value != "Paris" {
		t.Errorf("q1: %+v", payload["q1"])
	}
	if payload["q2"].FileUploadAnswers == nil || payload["q2"].FileUploadAnswers.Answers[0].FileName != "a.png" {
		t.Errorf("q2: %+v", payload["q2"])
	}
}

func TestParsePayload_MalformedBlobsAreTolerated(t *testing.T) {
	tests := []struct {
		name string
		raw  json.RawMessage
		rows int
	}{
		{"empty", json.RawMessage(``), 0},
		{"not an object", json.RawMessage(`[1,2,3]`), 0},
		{"question value not an object", json.RawMessage(`{"q1": 42}`), 0},
		{"unknown variant only", json.RawMessage(`{"q1": {"gridAnswers": {}}}`), 0},
		{"one good one bad", json.RawMessage(`{"q1": "nope", "q2": {"textAnswers":{"answers":[{"value":"ok"}]}}}`), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := normalize.Rows("s1", normalize.ParsePayload(tt.raw))
			if len(rows) != tt.rows {
				t.Errorf("expected %d rows, got %d", tt.rows, len(rows))
			}
		})
	}
}
