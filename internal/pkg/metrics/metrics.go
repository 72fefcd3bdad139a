package metrics

import (
	"net/http"
	"strconv"
	"time"

	"slot-booking/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "slot_booking"

// Metrics holds Prometheus metrics for the booking service. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// HTTPRequestsTotal counts handled requests by method, route and status.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration is request latency by method and route.
	HTTPRequestDuration *prometheus.HistogramVec

	// OperationsTotal counts use-case calls by operation and outcome kind.
	OperationsTotal *prometheus.CounterVec

	// SlotsGenerated counts slots inserted by bulk generation.
	SlotsGenerated prometheus.Counter

	// SlotsSkipped counts bulk candidates dropped for overlapping.
	SlotsSkipped prometheus.Counter

	// TxRetries counts transaction retries after serialization failures or deadlocks.
	TxRetries prometheus.Counter

	// ConcurrencyConflicts counts operations that gave up on lock contention.
	ConcurrencyConflicts *prometheus.CounterVec
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),

		OperationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "operations_total",
				Help:      "Total number of booking core operations by result",
			},
			[]string{"operation", "result"},
		),

		SlotsGenerated: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "bulk_slots_generated_total",
				Help:      "Total number of slots created by bulk generation",
			},
		),

		SlotsSkipped: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "bulk_slots_skipped_total",
				Help:      "Total number of bulk candidates skipped for overlapping",
			},
		),

		TxRetries: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "tx_retries_total",
				Help:      "Total number of transaction retry attempts",
			},
		),

		ConcurrencyConflicts: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "concurrency_conflicts_total",
				Help:      "Total number of operations failed by lock or serialization contention",
			},
			[]string{"operation"},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveOperation records an operation outcome labelled by its error kind.
func (m *Metrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		kind := errs.KindOf(err)
		result = string(kind)
		if kind == errs.KindConcurrencyConflict {
			m.ConcurrencyConflicts.WithLabelValues(operation).Inc()
		}
	}
	m.OperationsTotal.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveBulk(created, skipped int) {
	if m == nil {
		return
	}
	m.SlotsGenerated.Add(float64(created))
	m.SlotsSkipped.Add(float64(skipped))
}

func (m *Metrics) IncTxRetry() {
	if m == nil {
		return
	}
	m.TxRetries.Inc()
}
