package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"github.com/i474232898/clothing-suggestor/internal/store"
	"github.com/i474232898/clothing-suggestor/internal/suggestor"
)

// runTimeout bounds a single scheduled run, fetch and dispatch included.
const runTimeout = 2 * time.Minute

// Runner is the piece of the suggestor service the scheduler triggers.
type Runner interface {
	Run(ctx context.Context, opts suggestor.RunOptions) (store.Entry, error)
}

// Scheduler triggers one recommendation run per day at a fixed local time.
type Scheduler struct {
	scheduler *gocron.Scheduler
	runner    Runner
	at        string
	job       *gocron.Job
	logger    zerolog.Logger
}

// New creates a Scheduler firing daily at `at` (HH:MM) in loc.
func New(runner Runner, at string, loc *time.Location, logger zerolog.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		runner:    runner,
		at:        at,
		logger:    logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start schedules the daily job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	job, err := s.scheduler.Every(1).Day().At(s.at).Do(s.runOnce)
	if err != nil {
		return fmt.Errorf("schedule daily run at %s: %w", s.at, err)
	}
	s.job = job

	s.scheduler.StartAsync()
	s.logger.Info().Str("at", s.at).Time("next_run", job.NextRun()).Msg("daily run scheduled")
	return nil
}

// NextRun is the time of the next scheduled trigger; zero before Start.
func (s *Scheduler) NextRun() time.Time {
	if s.job == nil {
		return time.Time{}
	}
	return s.job.NextRun()
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) runOnce() {
	s.logger.Info().Msg("running daily recommendation job")

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	entry, err := s.runner.Run(ctx, suggestor.RunOptions{})
	if err != nil {
		s.logger.Error().Err(err).Msg("daily recommendation job failed")
		return
	}
	s.logger.Info().Str("run_id", entry.ID.String()).Msg("completed daily recommendation job")
}
