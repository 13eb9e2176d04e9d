package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal counts completed analyses by outcome. Status is "success"
	// or the error kind; sentiment is "positive", "negative", or "none" for
	// failed analyses.
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_analyses_total",
			Help: "Total sentiment analyses by status and sentiment",
		},
		[]string{"status", "sentiment"},
	)

	// AnalysisDuration tracks single-review pipeline latency in seconds.
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_analysis_duration_seconds",
			Help:    "Single review analysis duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	// BatchSize tracks the number of reviews per batch request.
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_batch_size_reviews",
			Help:    "Number of reviews per batch request",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)

	// TruncationsTotal counts reviews shortened to fit the model input limit.
	TruncationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_truncations_total",
			Help: "Total reviews truncated to the model token limit",
		},
	)

	// PublishedResultsTotal counts results exported to Kafka by status.
	PublishedResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_published_results_total",
			Help: "Total analysis results published to Kafka by status",
		},
		[]string{"status"},
	)
)
