package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
)

// AuditPurger deletes old audit records.
type AuditPurger interface {
	PurgeOldRecords(ctx context.Context, olderThanDays int) (int64, error)
}

// PendingRedispatcher re-queues slips stuck in automated verification.
type PendingRedispatcher interface {
	RedispatchStalePending(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

// SchedulerConfig holds cron specs and sweep parameters. An empty spec
// disables that job.
type SchedulerConfig struct {
	PurgeSpec         string
	RetentionDays     int
	RedispatchSpec    string
	StalePendingAfter time.Duration
	RedispatchBatch   int
	JobTimeout        time.Duration
}

// Scheduler runs periodic maintenance: audit retention and re-dispatch of
// stale pending slips.
type Scheduler struct {
	cron       *cron.Cron
	cfg        SchedulerConfig
	purger     AuditPurger
	redispatch PendingRedispatcher
	log        *logger.Logger
}

// NewScheduler registers the configured jobs. Nothing runs until Start.
func NewScheduler(cfg SchedulerConfig, purger AuditPurger, redispatch PendingRedispatcher, log *logger.Logger) (*Scheduler, error) {
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 5 * time.Minute
	}
	if cfg.RedispatchBatch <= 0 {
		cfg.RedispatchBatch = 100
	}

	s := &Scheduler{
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		cfg:        cfg,
		purger:     purger,
		redispatch: redispatch,
		log:        log,
	}

	if cfg.PurgeSpec != "" && cfg.RetentionDays > 0 {
		if _, err := s.cron.AddFunc(cfg.PurgeSpec, s.PurgeAudit); err != nil {
			return nil, err
		}
	}
	if cfg.RedispatchSpec != "" && cfg.StalePendingAfter > 0 {
		if _, err := s.cron.AddFunc(cfg.RedispatchSpec, s.RedispatchPending); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().
		Int("jobs", len(s.cron.Entries())).
		Msg("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("Scheduler stop timed out")
	}
}

// PurgeAudit applies the audit retention policy once.
func (s *Scheduler) PurgeAudit() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.JobTimeout)
	defer cancel()

	if _, err := s.purger.PurgeOldRecords(ctx, s.cfg.RetentionDays); err != nil {
		s.log.Error().Err(err).Msg("Audit purge failed")
	}
}

// RedispatchPending re-queues stale pending slips once.
func (s *Scheduler) RedispatchPending() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.JobTimeout)
	defer cancel()

	if _, err := s.redispatch.RedispatchStalePending(ctx, s.cfg.StalePendingAfter, s.cfg.RedispatchBatch); err != nil {
		s.log.Error().Err(err).Msg("Stale pending re-dispatch failed")
	}
}
