package common

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(client *http.Client) HTTPClientConfig {
	return HTTPClientConfig{
		Client: client,
		Backoff: BackoffConfig{
			MaxRetries:      2,
			InitialInterval: time.Millisecond,
			MaxInterval:     2 * time.Millisecond,
		},
	}
}

func get(url string) func() (*http.Request, error) {
	return func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, url, nil)
	}
}

func TestRetriesThenGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := DoRequestWithResilience(context.Background(), testConfig(srv.Client()), NewBreaker("t1"), get(srv.URL))
	require.ErrorIs(t, err, ErrRateLimited)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.Code)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRateLimitRetryOnly(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
		calls  int32
	}{
		{"server error is not repeated", http.StatusBadGateway, ErrServerError, 1},
		{"rate limit is retried", http.StatusTooManyRequests, ErrRateLimited, 3},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			cfg := testConfig(srv.Client())
			cfg.RateLimitRetryOnly = true
			cb := NewBreaker("rate-only-" + string(rune('a'+i)))

			_, err := DoRequestWithResilience(context.Background(), cfg, cb, get(srv.URL))
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.calls, calls.Load())
		})
	}
}

func TestRateLimitRetryOnlyTransportError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := srv.Client()
	client.Timeout = 20 * time.Millisecond
	cfg := testConfig(client)
	cfg.RateLimitRetryOnly = true

	_, err := DoRequestWithResilience(context.Background(), cfg, NewBreaker("rate-only-timeout"), get(srv.URL))
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := DoRequestWithResilience(context.Background(), testConfig(srv.Client()), NewBreaker("t2"), get(srv.URL))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DoRequestWithResilience(ctx, testConfig(http.DefaultClient), NewBreaker("t3"), get("http://127.0.0.1:0"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestInvalidConfig(t *testing.T) {
	_, err := DoRequestWithResilience(context.Background(), HTTPClientConfig{}, NewBreaker("t4"), get("http://example.invalid"))
	require.ErrorIs(t, err, errNoHTTPClient)

	cfg := testConfig(http.DefaultClient)
	cfg.Backoff.InitialInterval = 0
	_, err = DoRequestWithResilience(context.Background(), cfg, NewBreaker("t5"), get("http://example.invalid"))
	require.ErrorIs(t, err, errInvalidConfig)
}

func TestBackoffDelayIsCapped(t *testing.T) {
	b := BackoffConfig{InitialInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond}
	assert.Equal(t, 100*time.Millisecond, backoffDelay(b, 0))
	assert.Equal(t, 200*time.Millisecond, backoffDelay(b, 1))
	assert.Equal(t, 300*time.Millisecond, backoffDelay(b, 2))
}
