package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"

	"github.com/i474232898/clothing-suggestor/internal/common"
)

const twilioBaseURL = "https://api.twilio.com/2010-04-01"

var errTwilioNotConfigured = errors.New("twilio credentials are not configured")

// TwilioConfig holds the account credentials and phone numbers.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

// Complete reports whether every field is set.
func (c TwilioConfig) Complete() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.From != "" && c.To != ""
}

// TwilioSender sends SMS through the Twilio Messages REST API.
type TwilioSender struct {
	cfg     TwilioConfig
	baseURL string
	httpCfg common.HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewTwilioSender creates a sender. A message is posted at most once unless
// Twilio answers 429, in which case it was not accepted and is retried.
func NewTwilioSender(client *http.Client, cfg TwilioConfig) *TwilioSender {
	return &TwilioSender{
		cfg:     cfg,
		baseURL: twilioBaseURL,
		httpCfg: common.HTTPClientConfig{
			Client:             client,
			Backoff:            common.DefaultBackoff,
			RateLimitRetryOnly: true,
		},
		circuit: common.NewBreaker("twilio"),
	}
}

// WithBaseURL returns a copy of the sender targeting another API root.
func (s *TwilioSender) WithBaseURL(u string) *TwilioSender {
	c := *s
	c.baseURL = strings.TrimRight(u, "/")
	return &c
}

// WithBackoff returns a copy of the sender using another retry schedule.
func (s *TwilioSender) WithBackoff(b common.BackoffConfig) *TwilioSender {
	c := *s
	c.httpCfg.Backoff = b
	return &c
}

func (s *TwilioSender) Name() string { return "twilio" }

// Send posts the message and returns the Twilio message SID.
func (s *TwilioSender) Send(ctx context.Context, body string) (string, error) {
	if !s.cfg.Complete() {
		return "", errTwilioNotConfigured
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.baseURL, url.PathEscape(s.cfg.AccountSID))
	form := url.Values{}
	form.Set("From", s.cfg.From)
	form.Set("To", s.cfg.To)
	form.Set("Body", body)
	encoded := form.Encode()

	buildRequest := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	resp, err := common.DoRequestWithResilience(ctx, s.httpCfg, s.circuit, buildRequest)
	if err != nil {
		return "", fmt.Errorf("twilio send: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		SID    string `json:"sid"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode twilio response: %w", err)
	}
	return payload.SID, nil
}
