package normalize

import (
	"database/sql"
	"sort"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// Row is one scalar answer value extracted from a submission, addressed by
// (submission, question, position). Field types are plain Go / database/sql
// types so the store can persist a Row without conversion and tests can
// construct them without importing the db package.
type Row struct {
	SubmissionID string
	QuestionID   string
	AnswerIndex  int
	// ValueText is NULL only on the file-upload path, for entries carrying
	// neither a file name nor a file id.
	ValueText sql.NullString
}

// ─── EXTRACTION ───────────────────────────────────────────────────────────────

// ExtractValues flattens one provider answer payload into zero or more ordered
// scalar values. It never fails: malformed or empty payloads extract to nil.
//
// Text answers win over file answers when both are present. On the text path,
// empty values are filtered out and positions are assigned within the filtered
// list. On the file path every entry emits exactly one value — file name if
// set, else file id, else NULL — with no skipping.
func ExtractValues(p AnswerPayload) []sql.NullString {
	if p.TextAnswers != nil && len(p.TextAnswers.Answers) > 0 {
		values := make([]sql.NullString, 0, len(p.TextAnswers.Answers))
		for _, a := range p.TextAnswers.Answers {
			if a.Value == "" {
				continue
			}
			values = append(values, sql.NullString{String: a.Value, Valid: true})
		}
		return values
	}

	if p.FileUploadAnswers != nil && len(p.FileUploadAnswers.Answers) > 0 {
		values := make([]sql.NullString, 0, len(p.FileUploadAnswers.Answers))
		for _, f := range p.FileUploadAnswers.Answers {
			switch {
			case f.FileName != "":
				values = append(values, sql.NullString{String: f.FileName, Valid: true})
			case f.FileID != "":
				values = append(values, sql.NullString{String: f.FileID, Valid: true})
			default:
				values = append(values, sql.NullString{})
			}
		}
		return values
	}

	return nil
}

// ─── NORMALIZATION ────────────────────────────────────────────────────────────

// Rows produces the full ordered row set for one submission. For every
// question in the payload the extractor runs once and AnswerIndex is the
// zero-based position within that question's emitted sequence, so for a fixed
// (submission, question) the indexes are always a contiguous 0..N-1 run.
//
// Questions are visited in sorted question-id order. The per-question index
// assignment does not depend on it, but a reproducible overall sequence keeps
// upsert order and test output stable.
//
// A question extracting zero values contributes zero rows — no placeholders.
func Rows(submissionID string, payload map[string]AnswerPayload) []Row {
	questionIDs := make([]string, 0, len(payload))
	for id := range payload {
		questionIDs = append(questionIDs, id)
	}
	sort.Strings(questionIDs)

	var rows []Row
	for _, questionID := range questionIDs {
		for idx, value := range ExtractValues(payload[questionID]) {
			rows = append(rows, Row{
				SubmissionID: submissionID,
				QuestionID:   questionID,
				AnswerIndex:  idx,
				ValueText:    value,
			})
		}
	}
	return rows
}
