// Package metrics owns the Prometheus collectors exported by the web service.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/louisbranch/crowdfund/internal/services/web/platform/httpx"
	"github.com/louisbranch/crowdfund/internal/services/web/platform/observability"
)

// Metrics groups the collectors registered on one registry.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestDuration *prometheus.HistogramVec
	apiCallDuration     *prometheus.HistogramVec
	submissions         *prometheus.CounterVec
	cacheLookups        *prometheus.CounterVec
}

// New registers the web collectors on a fresh registry, plus the Go and
// process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "crowdfund",
				Subsystem: "web",
				Name:      "http_request_duration_seconds",
				Help:      "Inbound HTTP request duration in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"method", "route", "status"},
		),
		apiCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "crowdfund",
				Subsystem: "web",
				Name:      "api_call_duration_seconds",
				Help:      "Campaign API call duration in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"operation", "outcome"},
		),
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "crowdfund",
				Subsystem: "web",
				Name:      "form_submissions_total",
				Help:      "Form submissions by form and outcome.",
			},
			[]string{"form", "outcome"},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "crowdfund",
				Subsystem: "web",
				Name:      "cache_lookups_total",
				Help:      "Read-through cache lookups by scope and result.",
			},
			[]string{"scope", "result"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveAPICall records one outbound API call.
func (m *Metrics) ObserveAPICall(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.apiCallDuration.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}

// CountSubmission records one form submission outcome.
func (m *Metrics) CountSubmission(form, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(form, outcome).Inc()
}

// CountCacheLookup records one cache lookup result (hit, miss, error).
func (m *Metrics) CountCacheLookup(scope, result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(scope, result).Inc()
}

// Middleware times inbound requests, labelled by the matched route pattern.
func (m *Metrics) Middleware() httpx.Middleware {
	if m == nil {
		return nil
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := observability.NewStatusRecorder(w)
			next.ServeHTTP(rec, r)
			m.httpRequestDuration.WithLabelValues(
				r.Method,
				routeLabel(r),
				strconv.Itoa(rec.Status),
			).Observe(time.Since(start).Seconds())
		})
	}
}

// routeLabel keeps label cardinality bounded by using the mux pattern.
func routeLabel(r *http.Request) string {
	pattern := strings.TrimSpace(r.Pattern)
	if pattern == "" {
		return "unmatched"
	}
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}
