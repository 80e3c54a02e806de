// Package forms defines the interface for fetching form structure and
// responses from the forms provider and provides a Google Forms-backed
// implementation.
package forms

import (
	"context"
	"encoding/json"
	"time"
)

// Response is one form submission as reported by the provider. Answers is the
// provider's raw answers object, kept verbatim so the normalizer can re-read
// it on every run without a provider round-trip.
type Response struct {
	ResponseID      string
	RespondentEmail string // may be empty when the form does not collect email
	SubmittedAt     time.Time
	Answers         json.RawMessage
}

// QuestionLabel maps an opaque provider question id to its human-readable
// title and its position in the form.
type QuestionLabel struct {
	QuestionID string
	Label      string
	Position   int
}

// Client is the interface the sync worker uses to talk to the forms provider.
// Tests inject a stub that returns canned responses.
type Client interface {
	// ListQuestions fetches the form structure and returns one entry per
	// question item, in form order. Items without a question (section
	// headers, images) are skipped.
	ListQuestions(ctx context.Context, formID string) ([]QuestionLabel, error)

	// ListResponses fetches all responses for the form, following pagination
	// until the provider reports no further pages.
	//
	// Implementations must be safe to call concurrently.
	ListResponses(ctx context.Context, formID string) ([]Response, error)
}
