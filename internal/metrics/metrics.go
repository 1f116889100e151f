package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clothing_suggestor_runs_total",
			Help: "Total number of recommendation runs by outcome",
		},
		[]string{"outcome"}, // "ok", "fetch_error", "engine_error", "send_error"
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clothing_suggestor_run_duration_seconds",
			Help:    "Duration of recommendation runs in seconds, including fetch and dispatch",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clothing_suggestor_recommendations_total",
			Help: "Recommendations produced, by clothing and footwear category",
		},
		[]string{"clothing", "footwear"},
	)

	SMSSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clothing_suggestor_sms_sent_total",
			Help: "SMS dispatch attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordRun increments the run counter for outcome.
func RecordRun(outcome string, seconds float64) {
	RunsTotal.WithLabelValues(outcome).Inc()
	RunDuration.Observe(seconds)
}

// RecordRecommendation counts a produced recommendation.
func RecordRecommendation(clothing, footwear string) {
	RecommendationsTotal.WithLabelValues(clothing, footwear).Inc()
}

// RecordSMS counts an SMS dispatch attempt.
func RecordSMS(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	SMSSentTotal.WithLabelValues(outcome).Inc()
}
