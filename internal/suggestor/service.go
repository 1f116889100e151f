package suggestor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/i474232898/clothing-suggestor/internal/metrics"
	"github.com/i474232898/clothing-suggestor/internal/notify"
	"github.com/i474232898/clothing-suggestor/internal/store"
	"github.com/i474232898/clothing-suggestor/internal/wardrobe"
	"github.com/i474232898/clothing-suggestor/internal/weather"
)

var (
	ErrFetch = errors.New("weather fetch failed")
	ErrSend  = errors.New("sms dispatch failed")
)

// Store is the contract the in-memory store satisfies.
type Store interface {
	Save(entry store.Entry)
	GetLatest(loc weather.Location) (store.Entry, error)
}

// RunOptions tweak a single run.
type RunOptions struct {
	// DryRun computes and stores the recommendation without sending it.
	DryRun bool
}

// Evaluation is the engine output for a caller-supplied snapshot.
type Evaluation struct {
	Averages       wardrobe.Averages       `json:"averages"`
	Recommendation wardrobe.Recommendation `json:"recommendation"`
	Message        string                  `json:"message"`
}

// Service orchestrates fetch, recommendation, dispatch and storage for one location.
type Service struct {
	provider weather.Provider
	engine   *wardrobe.Engine
	sender   notify.Sender
	store    Store
	location weather.Location
	logger   zerolog.Logger
	now      func() time.Time
}

// NewService creates a new Service.
func NewService(
	provider weather.Provider,
	engine *wardrobe.Engine,
	sender notify.Sender,
	store Store,
	location weather.Location,
	logger zerolog.Logger,
) *Service {
	return &Service{
		provider: provider,
		engine:   engine,
		sender:   sender,
		store:    store,
		location: location,
		logger:   logger.With().Str("component", "suggestor").Logger(),
		now:      time.Now,
	}
}

// Location is the configured location.
func (s *Service) Location() weather.Location {
	return s.location
}

// Run fetches today's forecast, computes the recommendation, sends it unless
// opts.DryRun is set, and stores the result. Nothing is stored when any step fails.
func (s *Service) Run(ctx context.Context, opts RunOptions) (store.Entry, error) {
	start := s.now()
	runID := uuid.New()
	logger := s.logger.With().Str("run_id", runID.String()).Str("location", s.location.Key()).Logger()

	logger.Debug().Str("provider", s.provider.Name()).Bool("dry_run", opts.DryRun).Msg("run started")

	snap, err := s.provider.Fetch(ctx, s.location)
	if err != nil {
		logger.Error().Err(err).Str("provider", s.provider.Name()).Msg("forecast fetch failed")
		s.record("fetch_error", start)
		return store.Entry{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	eval, err := s.Evaluate(snap)
	if err != nil {
		logger.Error().Err(err).Msg("recommendation failed")
		s.record("engine_error", start)
		return store.Entry{}, err
	}

	entry := store.Entry{
		ID:             runID,
		Location:       s.location,
		GeneratedAt:    s.now().UTC(),
		Window:         s.engine.Window().String(),
		Averages:       eval.Averages,
		Recommendation: eval.Recommendation,
		Message:        eval.Message,
		DryRun:         opts.DryRun,
	}

	if !opts.DryRun {
		id, err := s.sender.Send(ctx, eval.Message)
		metrics.RecordSMS(err == nil)
		if err != nil {
			logger.Error().Err(err).Str("sender", s.sender.Name()).Msg("message dispatch failed")
			s.record("send_error", start)
			return store.Entry{}, fmt.Errorf("%w: %w", ErrSend, err)
		}
		entry.Sender = s.sender.Name()
		entry.MessageID = id
	}

	s.store.Save(entry)
	s.record("ok", start)
	metrics.RecordRecommendation(eval.Recommendation.Clothing.String(), eval.Recommendation.Footwear.String())

	logger.Info().
		Str("clothing", eval.Recommendation.Clothing.String()).
		Str("footwear", eval.Recommendation.Footwear.String()).
		Str("weather", string(eval.Recommendation.Label)).
		Str("message_id", entry.MessageID).
		Msg("run completed")

	return entry, nil
}

// Evaluate runs the engine and renderer on snap without side effects.
func (s *Service) Evaluate(snap weather.Snapshot) (Evaluation, error) {
	result, err := s.engine.Evaluate(snap)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{
		Averages:       result.Averages,
		Recommendation: result.Recommendation,
		Message:        notify.Render(result.Recommendation),
	}, nil
}

// Latest returns the last successful run for the configured location.
func (s *Service) Latest() (store.Entry, error) {
	return s.store.GetLatest(s.location)
}

func (s *Service) record(outcome string, start time.Time) {
	metrics.RecordRun(outcome, s.now().Sub(start).Seconds())
}
