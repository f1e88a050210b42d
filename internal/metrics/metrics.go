// Package metrics holds the Prometheus collectors for the HTTP layer and the
// investment flow, and exposes them on /metrics.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "stake_invest"

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	investmentResults  *prometheus.CounterVec
	investmentDuration prometheus.Histogram
	investedVolume     prometheus.Counter
	sharesSold         prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "path"}),
		investmentResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "investments",
			Name:      "created_total",
			Help:      "Investment creation attempts by outcome.",
		}, []string{"outcome"}),
		investmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "investments",
			Name:      "create_duration_seconds",
			Help:      "Duration of investment creation.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		investedVolume: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "investments",
			Name:      "invested_amount_total",
			Help:      "Sum of amountInvested over successful purchases.",
		}),
		sharesSold: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "investments",
			Name:      "shares_sold_total",
			Help:      "Shares sold over successful purchases.",
		}),
	}

	m.Registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.investmentResults,
		m.investmentDuration,
		m.investedVolume,
		m.sharesSold,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// RegisterDB exports connection pool statistics for db.
func (m *Metrics) RegisterDB(db *sql.DB) error {
	return m.Registry.Register(collectors.NewDBStatsCollector(db, namespace))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}

// Middleware records request counts and latencies by route pattern.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		path := c.Route().Path
		method := c.Method()

		m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

// RecordInvestment records one creation attempt.
func (m *Metrics) RecordInvestment(outcome string, duration time.Duration) {
	m.investmentResults.WithLabelValues(outcome).Inc()
	m.investmentDuration.Observe(duration.Seconds())
}

// RecordInvestedVolume adds a successful purchase to the running totals.
func (m *Metrics) RecordInvestedVolume(amount decimal.Decimal, shares int64) {
	m.investedVolume.Add(amount.InexactFloat64())
	m.sharesSold.Add(float64(shares))
}
