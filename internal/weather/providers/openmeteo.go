package providers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"

	"github.com/i474232898/clothing-suggestor/internal/common"
	"github.com/i474232898/clothing-suggestor/internal/weather"
)

const (
	openMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

	hourlyVariables = "temperature_2m,precipitation_probability,rain,showers,snowfall,snow_depth,cloud_cover"
	dailyVariables  = "uv_index_max"
)

var (
	errNoCoordinates  = errors.New("openmeteo requires latitude and longitude")
	errMisalignedData = errors.New("hourly series does not start at midnight")
)

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
type OpenMeteoProvider struct {
	name     string
	baseURL  string
	timezone string
	httpCfg  common.HTTPClientConfig
	circuit  *gobreaker.CircuitBreaker
}

// OpenMeteoOption configures an OpenMeteoProvider.
type OpenMeteoOption func(*OpenMeteoProvider)

// WithBaseURL points the provider at another endpoint (tests, self-hosted instances).
func WithBaseURL(u string) OpenMeteoOption {
	return func(p *OpenMeteoProvider) { p.baseURL = u }
}

// WithBackoff overrides the retry schedule.
func WithBackoff(b common.BackoffConfig) OpenMeteoOption {
	return func(p *OpenMeteoProvider) { p.httpCfg.Backoff = b }
}

func NewOpenMeteoProvider(client *http.Client, timezone string, opts ...OpenMeteoOption) *OpenMeteoProvider {
	p := &OpenMeteoProvider{
		name:     "openmeteo",
		baseURL:  openMeteoBaseURL,
		timezone: timezone,
		httpCfg: common.HTTPClientConfig{
			Client:  client,
			Backoff: common.DefaultBackoff,
		},
		circuit: common.NewBreaker("openmeteo"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

type openMeteoPayload struct {
	Timezone string `json:"timezone"`
	Hourly   struct {
		Time                     []string   `json:"time"`
		Temperature              []*float64 `json:"temperature_2m"`
		PrecipitationProbability []*float64 `json:"precipitation_probability"`
		Rain                     []*float64 `json:"rain"`
		Showers                  []*float64 `json:"showers"`
		Snowfall                 []*float64 `json:"snowfall"`
		SnowDepth                []*float64 `json:"snow_depth"`
		CloudCover               []*float64 `json:"cloud_cover"`
	} `json:"hourly"`
	Daily struct {
		Time       []string   `json:"time"`
		UVIndexMax []*float64 `json:"uv_index_max"`
	} `json:"daily"`
}

// nullAsNaN maps JSON nulls to NaN so a missing hour cannot pass for zero.
func nullAsNaN(raw []*float64) []float64 {
	if raw == nil {
		return nil
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	return out
}

// Fetch requests today's hourly forecast and daily UV maximum.
// Values are passed through exactly as the API returns them; nulls become NaN.
func (p *OpenMeteoProvider) Fetch(ctx context.Context, loc weather.Location) (weather.Snapshot, error) {
	if !loc.HasCoordinates() {
		return weather.Snapshot{}, errNoCoordinates
	}

	tz := p.timezone
	if loc.Timezone != "" {
		tz = loc.Timezone
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(*loc.Lat, 'f', 4, 64))
		values.Set("longitude", strconv.FormatFloat(*loc.Lon, 'f', 4, 64))
		values.Set("hourly", hourlyVariables)
		values.Set("daily", dailyVariables)
		values.Set("forecast_days", "1")
		if tz != "" {
			values.Set("timezone", tz)
		}

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := common.DoRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Snapshot{}, err
	}
	defer resp.Body.Close()

	var payload openMeteoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode openmeteo response: %w", err)
	}

	if len(payload.Hourly.Time) > 0 && !strings.HasSuffix(payload.Hourly.Time[0], "T00:00") {
		return weather.Snapshot{}, fmt.Errorf("%w: first hour %s", errMisalignedData, payload.Hourly.Time[0])
	}

	h := payload.Hourly
	return weather.Snapshot{
		Location:  loc,
		FetchedAt: time.Now().UTC(),
		Hourly: weather.HourlySeries{
			Temperature:              nullAsNaN(h.Temperature),
			PrecipitationProbability: nullAsNaN(h.PrecipitationProbability),
			Rain:                     nullAsNaN(h.Rain),
			Showers:                  nullAsNaN(h.Showers),
			Snowfall:                 nullAsNaN(h.Snowfall),
			SnowDepth:                nullAsNaN(h.SnowDepth),
			CloudCover:               nullAsNaN(h.CloudCover),
		},
		UVIndexMax: nullAsNaN(payload.Daily.UVIndexMax),
	}, nil
}
