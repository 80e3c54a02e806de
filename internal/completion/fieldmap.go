package completion

import (
	"github.com/matchboard/matchboard-backend/internal/normalize"
)

// FieldMap merges a submission's normalized rows with the question-label map
// into a profile field map keyed by human label. A question with a single
// answer maps to a string, a multi-answer question to a []string. NULL values
// (file entries with neither name nor id) are dropped. A question id missing
// from the label map keeps the raw id as its key so no answer silently
// disappears from the profile.
//
// Rows are expected in normalize.Rows order (sorted by question, then index),
// which keeps multi-value ordering stable.
func FieldMap(rows []normalize.Row, labels map[string]string) map[string]any {
	values := make(map[string][]string)
	order := make([]string, 0, len(rows))

	for _, r := range rows {
		if !r.ValueText.Valid {
			continue
		}
		if _, seen := values[r.QuestionID]; !seen {
			order = append(order, r.QuestionID)
		}
		values[r.QuestionID] = append(values[r.QuestionID], r.ValueText.String)
	}

	fields := make(map[string]any, len(values))
	for _, questionID := range order {
		key := questionID
		if label, ok := labels[questionID]; ok && label != "" {
			key = label
		}
		if vs := values[questionID]; len(vs) == 1 {
			fields[key] = vs[0]
		} else {
			fields[key] = vs
		}
	}
	return fields
}
