// Package normalize flattens raw Google Forms answer payloads into ordered,
// queryable rows. It is intentionally dependency-free: it imports nothing
// from internal/ and can be tested without a database.
package normalize

import (
	"encoding/json"
)

// ─── PAYLOAD TYPES ────────────────────────────────────────────────────────────

// TextAnswer is a single free-text value inside a textAnswers list.
type TextAnswer struct {
	Value string `json:"value"`
}

// TextAnswers is the text variant of a provider answer payload.
type TextAnswers struct {
	Answers []TextAnswer `json:"answers"`
}

// FileAnswer is one uploaded file reference.
type FileAnswer struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
}

// FileAnswers is the file-upload variant of a provider answer payload.
type FileAnswers struct {
	Answers []FileAnswer `json:"answers"`
}

// AnswerPayload is the per-question answer blob as delivered by the forms
// provider. It is a loose union: a well-formed payload populates exactly one
// of the two variants, but the type tolerates anything — a payload matching
// neither shape simply extracts to zero values.
//
// Provider JSON shapes:
//
//	{ "textAnswers":       { "answers": [ { "value": "Paris" } ] } }
//	{ "fileUploadAnswers": { "answers": [ { "fileId": "f1", "fileName": "a.png" } ] } }
type AnswerPayload struct {
	TextAnswers       *TextAnswers `json:"textAnswers"`
	FileUploadAnswers *FileAnswers `json:"fileUploadAnswers"`
}

// ParsePayload decodes a stored raw_payload blob (question_id → answer blob).
// Decoding is tolerant question by question: a value that is not an object,
// or that matches neither known variant, decays to a zero AnswerPayload and
// will contribute no rows. Only a blob whose top level is not a JSON object
// yields an empty map.
func ParsePayload(raw json.RawMessage) map[string]AnswerPayload {
	if len(raw) == 0 {
		return nil
	}

	var perQuestion map[string]json.RawMessage
	if err := json.Unmarshal(raw, &perQuestion); err != nil {
		return nil
	}

	out := make(map[string]AnswerPayload, len(perQuestion))
	for questionID, blob := range perQuestion {
		var p AnswerPayload
		// Malformed per-question blobs are kept as zero payloads so the
		// question still appears in the map (and extracts to nothing).
		_ = json.Unmarshal(blob, &p)
		out[questionID] = p
	}
	return out
}
