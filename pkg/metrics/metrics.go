// Package metrics holds the Prometheus instrumentation of the catalog service.
//
// Exposed series:
//
//	cineprime_http_requests_total              counter: requests by method, route and status
//	cineprime_http_request_duration_seconds    histogram: latency by method and route
//	cineprime_downloads_resolved_total         counter: download resolutions by kind and outcome
//	cineprime_download_count_failures_total    counter: download counter increments that failed
//	cineprime_metadata_requests_total          counter: metadata lookups by operation and outcome
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cineprime"

// Metrics is a set of collectors registered against one registry. A nil *Metrics records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	downloads        *prometheus.CounterVec
	downloadFailures prometheus.Counter
	metadata         *prometheus.CounterVec
}

// New registers the collectors with reg. Pass prometheus.NewRegistry() for an isolated set.
// Registering twice against the same registry panics.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		downloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "downloads_resolved_total",
			Help:      "Download link resolutions by kind and whether a link was found.",
		}, []string{"kind", "found"}),
		downloadFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "download_count_failures_total",
			Help:      "Download counter increments that failed and were skipped.",
		}),
		metadata: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metadata_requests_total",
			Help:      "Metadata provider lookups by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}
}

// NewDefault registers against a fresh registry that also carries the Go runtime and process
// collectors
func NewDefault() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg)
}

// Handler serves the exposition format for GET /metrics
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) DownloadResolved(kind string, found bool) {
	if m == nil {
		return
	}
	m.downloads.WithLabelValues(kind, strconv.FormatBool(found)).Inc()
}

func (m *Metrics) DownloadCountFailed() {
	if m == nil {
		return
	}
	m.downloadFailures.Inc()
}

// MetadataRequest records one lookup. outcome is ok, not_configured, invalid or upstream_error.
func (m *Metrics) MetadataRequest(operation, outcome string) {
	if m == nil {
		return
	}
	m.metadata.WithLabelValues(operation, outcome).Inc()
}

// Middleware records request counts and latency, labelled by the matched mux route template so
// content ids do not become label values. Unmatched requests are labelled "unmatched".
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := routeTemplate(r)
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rw.status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return tmpl
}

// responseWriter captures the status code written by the wrapped handler
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
