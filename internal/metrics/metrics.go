// Package metrics collects and exposes Prometheus metrics for the server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records HTTP and domain metrics against a Prometheus registry.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	votesCast    *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wreddit_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wreddit_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		votesCast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wreddit_votes_cast_total",
			Help: "Votes cast by direction",
		}, []string{"direction"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.votesCast,
	)

	return c
}

// RecordVote records a cast vote by direction.
func (c *Collector) RecordVote(value int) {
	direction := "up"
	if value < 0 {
		direction = "down"
	}
	c.votesCast.WithLabelValues(direction).Inc()
}

// Middleware records request counts and latency per chi route pattern.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		// The route pattern is only known after the router has matched,
		// so read it on the way out. Unmatched requests fall back to the
		// raw path rather than exploding label cardinality on 404 spam.
		pattern := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			pattern = rctx.RoutePattern()
		}

		c.httpRequests.WithLabelValues(pattern, r.Method, strconv.Itoa(ww.Status())).Inc()
		c.httpDuration.WithLabelValues(pattern, r.Method).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
