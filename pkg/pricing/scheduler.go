package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// SchedulerConfig controls periodic pricing refreshes.
type SchedulerConfig struct {
	// Schedule is a cron expression describing when to refresh. Empty
	// disables the scheduler.
	Schedule string

	// FeedURL overrides the feed location for scheduled refreshes. Empty
	// uses DefaultFeedURL.
	FeedURL string

	// Timeout bounds each scheduled fetch. Zero uses DefaultFeedTimeout.
	Timeout time.Duration
}

// Scheduler refreshes a resolver's feed tier on a cron schedule, keeping
// long-running processes current without manual Refresh calls.
type Scheduler struct {
	resolver *Resolver
	config   SchedulerConfig
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
}

// NewScheduler creates a scheduler that refreshes resolver per cfg.
func NewScheduler(resolver *Resolver, cfg SchedulerConfig) *Scheduler {
	return &Scheduler{
		resolver: resolver,
		config:   cfg,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "pricing.scheduler"),
	}
}

// Start begins scheduled refreshes based on the configured cron expression.
//
// Common cron expressions:
//   - "0 3 * * *"    - Daily at 3 AM
//   - "0 */6 * * *"  - Every 6 hours
//   - "@hourly"      - Every hour
//
// If Schedule is empty, Start does nothing and returns nil.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.Schedule == "" {
		s.logger.Info("refresh schedule not configured, skipping scheduler")
		return nil
	}

	// Validate cron expression
	_, err := cron.ParseStandard(s.config.Schedule)
	if err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.config.Schedule, err)
	}

	_, err = s.cron.AddFunc(s.config.Schedule, func() {
		s.runRefresh(ctx)
	})

	if err != nil {
		return fmt.Errorf("failed to schedule pricing refresh: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("pricing refresh scheduler started",
		"schedule", s.config.Schedule,
	)

	// Wait for context cancellation in background
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runRefresh executes one refresh cycle. Failures are already logged by
// Refresh, so only the outcome is recorded here.
func (s *Scheduler) runRefresh(ctx context.Context) {
	s.logger.Debug("starting scheduled pricing refresh")

	if ok := s.resolver.Refresh(ctx, s.config.FeedURL, s.config.Timeout); !ok {
		s.logger.Warn("scheduled pricing refresh failed, keeping previous tables")
		return
	}

	s.logger.Info("scheduled pricing refresh completed")
}

// Stop stops the scheduler and waits for any running refresh to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done() // Wait for running jobs to finish
		s.running = false
		s.logger.Info("pricing refresh scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the next scheduled refresh time.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
