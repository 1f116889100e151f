package wardrobe

import (
	"fmt"
	"math"

	"github.com/i474232898/clothing-suggestor/internal/weather"
)

// Averages are the per-day scalars the scorers work from.
type Averages struct {
	TemperatureC     float64 `json:"temperatureC"`
	PrecipitationPct float64 `json:"precipitationPct"`
	RainMM           float64 `json:"rainMm"` // rain plus showers
	SnowfallMM       float64 `json:"snowfallMm"`
	SnowDepthCM      float64 `json:"snowDepthCm"`
	CloudCoverPct    float64 `json:"cloudCoverPct"`
	UVIndexMax       float64 `json:"uvIndexMax"`
}

func (a Averages) precipitation() PrecipitationInput {
	return PrecipitationInput{
		ProbabilityPct: a.PrecipitationPct,
		RainMM:         a.RainMM,
		SnowfallMM:     a.SnowfallMM,
		SnowDepthCM:    a.SnowDepthCM,
		CloudCoverPct:  a.CloudCoverPct,
	}
}

// Engine turns a weather snapshot into a Recommendation.
// It holds only immutable configuration and is safe for concurrent use.
type Engine struct {
	window    Window
	gapPolicy GapPolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithGapPolicy sets how gap bands are treated. The default is GapPolicyNoop.
func WithGapPolicy(p GapPolicy) Option {
	return func(e *Engine) { e.gapPolicy = p }
}

// NewEngine creates an Engine averaging over window.
func NewEngine(window Window, opts ...Option) *Engine {
	e := &Engine{window: window, gapPolicy: GapPolicyNoop}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Window() Window { return e.window }

// Averages reduces every series of the snapshot. It fails before any scoring
// happens if one of them is too short or has a missing hour inside the window.
func (e *Engine) Averages(snap weather.Snapshot) (Averages, error) {
	var firstErr error
	avg := func(name string, series []float64) float64 {
		if firstErr != nil {
			return 0
		}
		v, err := Average(series, e.window)
		if err != nil {
			firstErr = fmt.Errorf("%s: %w", name, err)
			return 0
		}
		if hour := e.missingHour(series); hour >= 0 {
			firstErr = fmt.Errorf("%s: %w at hour %d", name, ErrMissingValue, hour)
		}
		return v
	}

	h := snap.Hourly
	a := Averages{
		TemperatureC:     avg("temperature", h.Temperature),
		PrecipitationPct: avg("precipitation_probability", h.PrecipitationProbability),
		RainMM:           avg("rain", h.Rain) + avg("showers", h.Showers),
		SnowfallMM:       avg("snowfall", h.Snowfall),
		SnowDepthCM:      avg("snow_depth", h.SnowDepth),
		CloudCoverPct:    avg("cloud_cover", h.CloudCover),
	}
	if firstErr != nil {
		return Averages{}, firstErr
	}

	uv, err := maxOf(snap.UVIndexMax)
	if err != nil {
		return Averages{}, fmt.Errorf("uv_index_max: %w", err)
	}
	a.UVIndexMax = uv
	return a, nil
}

// ScoreAverages runs temperature, precipitation and sun scoring in that order
// on a fresh ScoreState.
func (e *Engine) ScoreAverages(a Averages) (ScoreState, error) {
	state, err := ScoreTemperature(ScoreState{}, a.TemperatureC, e.gapPolicy)
	if err != nil {
		return state, err
	}
	state = ClassifyPrecipitation(state, a.precipitation())
	state = ScoreSun(state, a.UVIndexMax)
	return state, nil
}

// Result is one engine run: the averages that were scored and the outcome.
type Result struct {
	Averages       Averages
	Recommendation Recommendation
}

// Evaluate runs the full pipeline for one snapshot and keeps the averages.
func (e *Engine) Evaluate(snap weather.Snapshot) (Result, error) {
	a, err := e.Averages(snap)
	if err != nil {
		return Result{}, err
	}
	state, err := e.ScoreAverages(a)
	if err != nil {
		return Result{}, err
	}
	return Result{Averages: a, Recommendation: Resolve(state)}, nil
}

// Score averages the snapshot and scores it.
func (e *Engine) Score(snap weather.Snapshot) (ScoreState, error) {
	a, err := e.Averages(snap)
	if err != nil {
		return ScoreState{}, err
	}
	return e.ScoreAverages(a)
}

// Recommend runs the full pipeline for one snapshot.
func (e *Engine) Recommend(snap weather.Snapshot) (Recommendation, error) {
	r, err := e.Evaluate(snap)
	if err != nil {
		return Recommendation{}, err
	}
	return r.Recommendation, nil
}

// missingHour is the first hour inside the window holding NaN, or -1.
func (e *Engine) missingHour(series []float64) int {
	for i := e.window.start; i < e.window.end; i++ {
		if math.IsNaN(series[i]) {
			return i
		}
	}
	return -1
}

// maxOf ignores NaN entries; an all-NaN series has no maximum.
func maxOf(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: empty series", ErrIndexOutOfRange)
	}
	m, found := 0.0, false
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !found || v > m {
			m, found = v, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: no value in %d entries", ErrMissingValue, len(values))
	}
	return m, nil
}
