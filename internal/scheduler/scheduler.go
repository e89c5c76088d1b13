// Package scheduler runs the optional cron-driven monthly reset sweep.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/campuskudos/backend/internal/app/services"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

// Scheduler triggers the batch monthly reset on a cron schedule. It is an
// operational convenience only; the lazy per-request reset keeps balances
// correct whether or not the scheduler runs.
type Scheduler struct {
	cron  *cron.Cron
	reset *services.ResetService
}

// New creates a scheduler with the given cron spec (standard 5-field
// syntax, e.g. "0 0 1 * *" for midnight on the 1st of each month).
func New(spec string, resetService *services.ResetService) (*Scheduler, error) {
	s := &Scheduler{
		cron:  cron.New(),
		reset: resetService,
	}

	if _, err := s.cron.AddFunc(spec, s.runSweep); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled jobs in their own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info().Msg("Monthly reset scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Monthly reset scheduler stopped")
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := s.reset.SweepAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Scheduled monthly reset sweep failed")
		return
	}

	logger.Info().
		Str("month", result.CurrentMonth).
		Int("resetCount", result.ResetCount).
		Msg("Scheduled monthly reset sweep finished")
}
