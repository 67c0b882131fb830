// Package metrics exposes prometheus counters/histograms for the kernel's
// two operations, and the gin wiring to serve and populate them.
// cmd/linrefd/main.go hosts metrics on a dedicated port via
// metrics.NewMetrics / metrics.NewGinMiddleware / metrics.NewGinHandler.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the prometheus collectors registered for this process.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	verticesWalked  *prometheus.HistogramVec
}

// NewMetrics constructs and registers the collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "linref",
			Name:      "requests_total",
			Help:      "Total number of kernel operations served, by operation and status.",
		}, []string{"operation", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "linref",
			Name:      "request_duration_seconds",
			Help:      "Latency of kernel operations, by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		verticesWalked: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "linref",
			Name:      "vertices_walked",
			Help:      "Number of input vertices walked by a locate/clip call.",
			Buckets:   []float64{1, 10, 100, 1000, 10000, 100000},
		}, []string{"operation"}),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.verticesWalked)
	return m
}

// Observe records one operation's outcome, latency and input size.
func (m *Metrics) Observe(operation string, status int, duration time.Duration, vertices int) {
	m.requestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	m.verticesWalked.WithLabelValues(operation).Observe(float64(vertices))
}

const verticesKey = "metrics-vertices"

// SetVertices records how many vertices the current request's kernel
// call walked, for NewGinMiddleware to pick up once the handler returns.
// A request whose handler never calls this (e.g. one that failed before
// resolving a geometry, or was served from the cache) is observed with
// vertices=0.
func SetVertices(ctx *gin.Context, n int) {
	ctx.Set(verticesKey, n)
}

// NewGinMiddleware returns gin middleware recording request duration,
// status and vertex count for every request, under the operation name
// taken from the route. Vertex count comes from SetVertices, which the
// locate/clip handlers call once they know the size of their input.
func NewGinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		operation := ctx.FullPath()
		if operation == "" {
			operation = "unknown"
		}

		vertices := 0
		if v, ok := ctx.Get(verticesKey); ok {
			vertices, _ = v.(int)
		}
		m.Observe(operation, ctx.Writer.Status(), time.Since(start), vertices)
	}
}

// NewGinHandler exposes m's registry on a gin route via promhttp.
func NewGinHandler(m *Metrics) gin.HandlerFunc {
	handler := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(handler)
}
