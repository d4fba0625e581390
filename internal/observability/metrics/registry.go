// Package metrics provides centralized Prometheus metrics for the application.
// All metrics are registered with the default registry and exposed via /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and performance of the review application.
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Pipeline metrics track fetching, classification and translation.
var (
	// FeedCrawlDuration measures how long one feed takes to fetch and parse
	FeedCrawlDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_crawl_duration_seconds",
			Help:    "Duration of individual feed crawl operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"feed_url"},
	)

	// FeedCrawlErrors counts feed fetch failures by type
	FeedCrawlErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_crawl_errors_total",
			Help: "Total feed crawl errors by error type",
		},
		[]string{"feed_url", "error_type"},
	)

	// ArticlesFetchedTotal counts articles pulled from feeds
	ArticlesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_fetched_total",
			Help: "Total number of articles fetched from feeds",
		},
		[]string{"feed_url"},
	)

	// LanguageDetectedTotal counts classification outcomes by language code
	LanguageDetectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "language_detected_total",
			Help: "Total language classification outcomes by detected code",
		},
		[]string{"language"},
	)

	// TranslationsTotal counts translation attempts by provider and outcome
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translations_total",
			Help: "Total translation attempts by provider and status",
		},
		[]string{"provider", "status"},
	)
)

// Review and podcast metrics track operator actions and synthesis outcomes.
var (
	// ReviewActionsTotal counts approve/reject/edit actions
	ReviewActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_actions_total",
			Help: "Total review actions by action type",
		},
		[]string{"action"},
	)

	// PodcastsGeneratedTotal counts podcast generations by audio kind
	PodcastsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podcasts_generated_total",
			Help: "Total podcast generations by audio kind (synthesized or placeholder)",
		},
		[]string{"audio"},
	)

	// SpeechSynthesisDuration measures the duration of speech synthesis calls
	SpeechSynthesisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "speech_synthesis_duration_seconds",
			Help:    "Duration of speech synthesis provider calls",
			Buckets: prometheus.DefBuckets,
		},
	)
)
