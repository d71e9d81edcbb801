package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests received",
	},
	[]string{"endpoint", "status", "method"},
)

var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint", "method"},
)

var HTTPRateLimitRejectionsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "http_rate_limit_rejections_total",
		Help: "Total number of HTTP requests rejected due to rate limiting",
	},
)

var SweepRunsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sweep_runs_total",
		Help: "Monthly sweep invocations by outcome",
	},
	[]string{"outcome"},
)

var SweepSubscriptionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sweep_subscriptions_total",
		Help: "Subscriptions handled by the monthly sweep by result",
	},
	[]string{"result"},
)

var SweepDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "sweep_duration_seconds",
		Help:    "Wall time of a monthly sweep run",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	},
)

var EmailsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "emails_total",
		Help: "Emails attempted by type and status",
	},
	[]string{"type", "status"},
)

var EventsPublishedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "Domain events published by topic and status",
	},
	[]string{"topic", "status"},
)

var registerOnce sync.Once

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(HTTPRateLimitRejectionsTotal)
		prometheus.MustRegister(SweepRunsTotal)
		prometheus.MustRegister(SweepSubscriptionsTotal)
		prometheus.MustRegister(SweepDuration)
		prometheus.MustRegister(EmailsTotal)
		prometheus.MustRegister(EventsPublishedTotal)
	})
}
