// Package completion computes profile-completion metrics for the moderation
// screens. Like normalize, it is dependency-free: plain Go types in, a plain
// result out, no imports from internal/.
package completion

import (
	"reflect"
)

// ─── SCHEMA ───────────────────────────────────────────────────────────────────

// Schema is the fixed field set a candidate is scored against. It is an
// explicit value passed into Score — not a package global — so tests and
// alternate form versions can supply their own.
//
// The two lists are disjoint; the scoring denominator is the sum of their
// lengths and is constant for a given schema.
type Schema struct {
	ProfileKeys  []string
	FunFactsKeys []string
}

// Total returns the scoring denominator.
func (s Schema) Total() int {
	return len(s.ProfileKeys) + len(s.FunFactsKeys)
}

// DefaultSchema is the production field set for the current matchmaking form.
func DefaultSchema() Schema {
	return Schema{
		ProfileKeys: []string{
			"first_name",
			"last_name",
			"email",
			"phone",
			"birth_date",
			"city",
			"occupation",
			"bio",
			"photos",
			"interests",
			"looking_for",
		},
		FunFactsKeys: []string{
			"ideal_weekend",
			"hidden_talent",
			"proudest_moment",
		},
	}
}

// ─── RESULT ───────────────────────────────────────────────────────────────────

// Result is the derived completion state for one candidate. It is recomputed
// on demand and never persisted.
type Result struct {
	// Pct is the rounded percentage of schema fields with a usable value,
	// 0–100. Zero when the schema is empty.
	Pct int `json:"pct"`

	// Missing lists the unfilled field names, profile keys first in schema
	// order, then fun-facts keys in schema order.
	Missing []string `json:"missing"`
}

// ─── SCORING ──────────────────────────────────────────────────────────────────

// Score computes the completion percentage and missing-field list for a
// candidate. It is total: any input, including nil maps and an empty schema,
// produces a result.
//
// The two field groups deliberately use different missing rules. A profile
// field counts as missing only when it is absent, nil, an empty string, or an
// empty array — false and 0 are real answers. A fun-facts field counts as
// missing whenever funFacts is nil or the value is falsy, including false and
// 0. The asymmetry matches what the moderation UI renders today; do not
// unify the two checks without confirming with the moderation team.
func Score(schema Schema, profile map[string]any, funFacts map[string]any) Result {
	total := schema.Total()
	if total == 0 {
		return Result{Pct: 0, Missing: []string{}}
	}

	missing := make([]string, 0, total)

	for _, key := range schema.ProfileKeys {
		v, ok := profile[key]
		if !ok || isEmpty(v) {
			missing = append(missing, key)
		}
	}

	for _, key := range schema.FunFactsKeys {
		if funFacts == nil || isFalsy(funFacts[key]) {
			missing = append(missing, key)
		}
	}

	present := total - len(missing)
	pct := int(float64(present*100)/float64(total) + 0.5)

	return Result{Pct: pct, Missing: missing}
}

// isEmpty implements the profile-field missing rule: nil, empty string, or
// empty array/slice. Everything else — false, 0, non-empty collections — is a
// present value.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv.Len() == 0
	}
	return false
}

// isFalsy implements the fun-facts missing rule: everything JavaScript would
// call falsy, plus empty collections. Fun-facts blobs come straight from
// JSON, so numbers arrive as float64.
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case int:
		return val == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}
