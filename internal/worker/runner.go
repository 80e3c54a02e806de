// Package worker contains the background sync pipeline that fetches form
// responses from the provider, imports them, normalizes their answers, and
// refreshes candidate profiles. It is intentionally decoupled from the HTTP
// layer: the api package holds the worker.Enqueuer and worker.Normalizer
// interfaces — it never imports the concrete Runner or Job types.
package worker

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/matchboard/matchboard-backend/internal/db"
	"github.com/matchboard/matchboard-backend/internal/email"
)

// ─── NARROW INTERFACES ────────────────────────────────────────────────────────

// Enqueuer is the narrow interface the api package uses to trigger a sync
// outside the schedule (POST /api/sync). Keeping it here (not in api/) means
// api/ does not need to import worker/.
//
// The concrete implementation is *Runner. In tests, any struct with an
// Enqueue method satisfies the interface.
type Enqueuer interface {
	Enqueue(ctx context.Context) error
}

// Normalizer is the slice of *Job the api package needs for the manual
// normalization endpoint (POST /api/normalize).
type Normalizer interface {
	NormalizeAll(ctx context.Context) (BatchResult, error)
}

// ─── RUNNER ───────────────────────────────────────────────────────────────────

// RunnerConfig holds tuning parameters for the Runner. All fields have
// sensible defaults if zero-valued; call DefaultRunnerConfig() to get them.
type RunnerConfig struct {
	// SyncInterval is how often a scheduled sync is enqueued. Default: 10m.
	SyncInterval time.Duration

	// JobTimeout is the per-attempt context deadline. Default: 5 minutes.
	// Set this longer than a full-form fetch at your largest response count.
	JobTimeout time.Duration

	// MaxRetries is the number of times a sync is attempted before its run is
	// marked as permanently failed. Default: 3.
	MaxRetries int

	// AlertEmail receives the permanent-failure alert. Empty disables alerts.
	AlertEmail string
}

// DefaultRunnerConfig returns safe production defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		SyncInterval: 10 * time.Minute,
		JobTimeout:   5 * time.Minute,
		MaxRetries:   3,
	}
}

// Runner owns the single sync loop. Syncs arrive via an in-process channel
// (fast path, used by the manual trigger endpoint) and from an interval
// ticker (schedule path). The queue holds at most one pending sync: the whole
// form is refetched every run, so stacking further requests buys nothing.
type Runner struct {
	job    *Job
	q      db.Querier
	mailer email.Sender
	cfg    RunnerConfig
	logger *slog.Logger

	queue chan struct{}
	wg    sync.WaitGroup
}

// NewRunner constructs a Runner. Call Start() to begin processing.
// mailer may be nil when no alert delivery is configured.
func NewRunner(
	job *Job,
	q db.Querier,
	mailer email.Sender,
	cfg RunnerConfig,
	logger *slog.Logger,
) *Runner {
	if cfg.SyncInterval <= 0 {
		cfg.SyncInterval = DefaultRunnerConfig().SyncInterval
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = DefaultRunnerConfig().JobTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultRunnerConfig().MaxRetries
	}

	return &Runner{
		job:    job,
		q:      q,
		mailer: mailer,
		cfg:    cfg,
		logger: logger,
		queue:  make(chan struct{}, 1),
	}
}

// Enqueue requests a sync run. It satisfies the Enqueuer interface. If a sync
// is already queued it returns an error rather than blocking the HTTP
// response; the queued run will pick up the same data anyway.
func (r *Runner) Enqueue(_ context.Context) error {
	select {
	case r.queue <- struct{}{}:
		r.logger.Info("worker: sync enqueued")
		return nil
	default:
		return errors.New("worker: a sync is already queued")
	}
}

// Start launches the sync loop and the schedule ticker. It blocks until ctx
// is cancelled. Call it in a goroutine from main:
//
//	go runner.Start(ctx)
func (r *Runner) Start(ctx context.Context) {
	r.logger.Info("worker: starting", "sync_interval", r.cfg.SyncInterval, "max_retries", r.cfg.MaxRetries)

	r.wg.Add(1)
	go r.work(ctx)

	r.wg.Add(1)
	go r.schedule(ctx)

	r.wg.Wait()
	r.logger.Info("worker: stopped")
}

// work is the inner loop that drains the queue one sync at a time.
func (r *Runner) work(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("worker: sync loop stopping")
			return
		case <-r.queue:
			r.runWithRetry(ctx)
		}
	}
}

// schedule enqueues a sync on every SyncInterval tick. The first sync runs
// immediately on startup so a restart never delays a full interval.
func (r *Runner) schedule(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.cfg.SyncInterval)
	defer ticker.Stop()

	_ = r.Enqueue(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Enqueue(ctx); err != nil {
				// Queue already holds a pending sync; the tick is redundant.
				r.logger.Debug("worker: scheduled sync skipped", "reason", err)
			}
		}
	}
}

// runWithRetry creates one sync_runs row and executes the job against it up
// to MaxRetries times. After exhausting retries it marks the run failed and
// sends the staff alert.
func (r *Runner) runWithRetry(ctx context.Context) {
	run, err := r.q.CreateSyncRun(ctx)
	if err != nil {
		r.logger.Error("worker: could not create sync run", "error", err)
		return
	}
	log := r.logger.With("run_id", run.ID)

	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxRetries; attempt++ {
		jobCtx, cancel := context.WithTimeout(ctx, r.cfg.JobTimeout)
		lastErr = r.job.Run(jobCtx, run.ID)
		cancel()

		if lastErr == nil {
			log.Info("worker: sync completed", "attempt", attempt)
			return
		}

		log.Warn("worker: sync attempt failed",
			"attempt", attempt,
			"max", r.cfg.MaxRetries,
			"error", lastErr,
		)

		if attempt < r.cfg.MaxRetries {
			// Exponential back-off: 2s, 4s, 8s …
			backoff := time.Duration(1<<attempt) * time.Second
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
		}
	}

	// All retries exhausted — mark the run permanently failed.
	log.Error("worker: sync permanently failed", "error", lastErr)
	failCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if _, err := r.q.FailSyncRun(failCtx, db.FailSyncRunParams{
		ID:           run.ID,
		ErrorMessage: sql.NullString{String: lastErr.Error(), Valid: true},
	}); err != nil {
		log.Error("worker: failed to mark run as failed", "error", err)
	}

	if r.mailer != nil && r.cfg.AlertEmail != "" {
		if err := r.mailer.SendSyncFailed(failCtx, email.SyncFailedParams{
			To:       r.cfg.AlertEmail,
			FormID:   r.job.formID,
			RunID:    run.ID.String(),
			Attempts: r.cfg.MaxRetries,
			Reason:   lastErr.Error(),
		}); err != nil {
			log.Error("worker: failed to send alert email", "error", err)
		}
	}
}
