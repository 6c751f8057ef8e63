// ABOUTME: Prometheus metrics for the API server
// ABOUTME: Tracks HTTP traffic and article/cache activity

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Business metrics
	ArticlesServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_served_total",
			Help: "Total number of articles served to clients",
		},
		[]string{"category"},
	)

	CacheClears = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_cache_clears_total",
			Help: "Total number of manual article cache clears",
		},
	)
)
