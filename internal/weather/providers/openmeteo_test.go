package providers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/clothing-suggestor/internal/common"
	"github.com/i474232898/clothing-suggestor/internal/weather"
)

var fastBackoff = common.BackoffConfig{
	MaxRetries:      2,
	InitialInterval: time.Millisecond,
	MaxInterval:     5 * time.Millisecond,
}

func vancouver() weather.Location {
	lat, lon := 49.2497, -123.1193
	return weather.Location{City: "Vancouver", Country: "CA", Lat: &lat, Lon: &lon}
}

func series(v string) string {
	return "[" + strings.TrimSuffix(strings.Repeat(v+",", 24), ",") + "]"
}

func hourlyTimes(first string) string {
	times := make([]string, 24)
	for i := range times {
		times[i] = fmt.Sprintf(`"2026-03-01T%02d:00"`, i)
	}
	times[0] = `"` + first + `"`
	return "[" + strings.Join(times, ",") + "]"
}

func forecastBody(first string) string {
	return forecastBodyWith(first, series("60"))
}

func forecastBodyWith(first, precipitation string) string {
	return fmt.Sprintf(`{
		"timezone": "America/Los_Angeles",
		"hourly": {
			"time": %s,
			"temperature_2m": %s,
			"precipitation_probability": %s,
			"rain": %s,
			"showers": %s,
			"snowfall": %s,
			"snow_depth": %s,
			"cloud_cover": %s
		},
		"daily": {"time": ["2026-03-01"], "uv_index_max": [4.35]}
	}`, hourlyTimes(first), series("11.5"), precipitation, series("0.4"), series("0.1"),
		series("0"), series("0"), series("95"))
}

func TestOpenMeteoFetch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, forecastBody("2026-03-01T00:00"))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), "America/Los_Angeles", WithBaseURL(srv.URL), WithBackoff(fastBackoff))
	snap, err := p.Fetch(context.Background(), vancouver())
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "latitude=49.2497")
	assert.Contains(t, gotQuery, "longitude=-123.1193")
	assert.Contains(t, gotQuery, "forecast_days=1")
	assert.Contains(t, gotQuery, "timezone=America%2FLos_Angeles")
	assert.Contains(t, gotQuery, "cloud_cover")

	require.Len(t, snap.Hourly.Temperature, 24)
	assert.Equal(t, 11.5, snap.Hourly.Temperature[10])
	assert.Equal(t, 0.1, snap.Hourly.Showers[0])
	assert.Equal(t, 95.0, snap.Hourly.CloudCover[23])
	assert.Equal(t, []float64{4.35}, snap.UVIndexMax)
	assert.Equal(t, "Vancouver:CA", snap.Location.Key())
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestOpenMeteoNullBecomesNaN(t *testing.T) {
	precipitation := strings.Replace(series("60"), "60", "null", 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, forecastBodyWith("2026-03-01T00:00", precipitation))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), "UTC", WithBaseURL(srv.URL), WithBackoff(fastBackoff))
	snap, err := p.Fetch(context.Background(), vancouver())
	require.NoError(t, err)

	require.Len(t, snap.Hourly.PrecipitationProbability, 24)
	assert.True(t, math.IsNaN(snap.Hourly.PrecipitationProbability[0]))
	assert.Equal(t, 60.0, snap.Hourly.PrecipitationProbability[1])
}

func TestOpenMeteoRequiresCoordinates(t *testing.T) {
	p := NewOpenMeteoProvider(http.DefaultClient, "UTC")
	_, err := p.Fetch(context.Background(), weather.Location{City: "Vancouver", Country: "CA"})
	require.ErrorIs(t, err, errNoCoordinates)
}

func TestOpenMeteoRejectsMisalignedSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, forecastBody("2026-03-01T01:00"))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), "UTC", WithBaseURL(srv.URL), WithBackoff(fastBackoff))
	_, err := p.Fetch(context.Background(), vancouver())
	require.ErrorIs(t, err, errMisalignedData)
}

func TestOpenMeteoRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, forecastBody("2026-03-01T00:00"))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), "UTC", WithBaseURL(srv.URL), WithBackoff(fastBackoff))
	_, err := p.Fetch(context.Background(), vancouver())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestOpenMeteoDoesNotRetryBadRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":true,"reason":"Cannot initialize WeatherVariable from invalid String value"}`)
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), "UTC", WithBaseURL(srv.URL), WithBackoff(fastBackoff))
	_, err := p.Fetch(context.Background(), vancouver())
	require.ErrorIs(t, err, common.ErrUnexpected)
	assert.Contains(t, err.Error(), "invalid String value")
	assert.Equal(t, int32(1), calls.Load())
}
