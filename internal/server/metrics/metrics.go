// Package metrics holds the Prometheus collectors of the feed service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for feed resolution. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	// Feed requests by kind ("public", "personal") and outcome
	FeedRequests *prometheus.CounterVec

	// Feed resolution latency by kind
	FeedLatency *prometheus.HistogramVec

	// Size of the friend set loaded for a personalised feed
	FriendSetSize prometheus.Histogram

	// Single-entry decisions by result ("visible", "hidden"); missing rows count as hidden
	Decisions *prometheus.CounterVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FeedRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "diaryfeed_feed_requests_total",
			Help: "Total feed requests by kind and outcome",
		}, []string{"kind", "outcome"}),

		FeedLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "diaryfeed_feed_duration_seconds",
			Help:    "Duration of feed resolution including the count query",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"kind"}),

		FriendSetSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "diaryfeed_friend_set_size",
			Help:    "Number of friends loaded per personalised feed request",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		}),

		Decisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "diaryfeed_visibility_decisions_total",
			Help: "Single-entry visibility decisions by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) ObserveFeed(kind string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.FeedRequests.WithLabelValues(kind, outcome).Inc()
	m.FeedLatency.WithLabelValues(kind).Observe(d.Seconds())
}

func (m *Metrics) ObserveFriendSet(n int) {
	if m != nil {
		m.FriendSetSize.Observe(float64(n))
	}
}

func (m *Metrics) IncrementDecision(result string) {
	if m != nil {
		m.Decisions.WithLabelValues(result).Inc()
	}
}
