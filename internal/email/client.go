// Package email defines the interface for operational alert delivery and
// provides a Resend-backed implementation.
package email

import "context"

// SyncFailedParams holds the data for the sync-failure alert sent to staff
// when a sync run exhausts its retries.
type SyncFailedParams struct {
	To       string // staff alert address
	FormID   string
	RunID    string // sync run UUID, for correlation with /api/sync/runs
	Attempts int
	Reason   string // final error message
}

// Sender is the interface the worker uses to send staff alerts.
// Tests inject a stub that records calls without hitting the network.
type Sender interface {
	// SendSyncFailed notifies staff that a sync run failed permanently.
	// Called by the worker after the last retry. A delivery error is logged
	// and otherwise ignored; the sync_runs row is the source of truth.
	SendSyncFailed(ctx context.Context, p SyncFailedParams) error
}
