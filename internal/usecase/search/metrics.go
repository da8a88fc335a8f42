package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the search fan-out.
var (
	searchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of global search requests",
		},
		[]string{"status"}, // status: success|error
	)

	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_request_duration_seconds",
			Help:    "Global search duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	searchLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_lookup_duration_seconds",
			Help:    "Per-entity lookup duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"entity"},
	)

	searchResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results_returned",
			Help:    "Number of results returned per global search request",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)

	suggestionRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_suggestion_requests_total",
			Help: "Total number of suggestion requests",
		},
		[]string{"status"},
	)
)

func recordSearch(status string, duration time.Duration, returned int) {
	searchRequestsTotal.WithLabelValues(status).Inc()
	searchDuration.Observe(duration.Seconds())
	if status == "success" {
		searchResultsReturned.Observe(float64(returned))
	}
}

func recordLookup(entityType Type, duration time.Duration) {
	searchLookupDuration.WithLabelValues(string(entityType)).Observe(duration.Seconds())
}

func recordSuggestions(status string) {
	suggestionRequestsTotal.WithLabelValues(status).Inc()
}
