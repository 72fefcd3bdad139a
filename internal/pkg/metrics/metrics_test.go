//go:build unit

package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveOperation("reserve", nil)
	m.ObserveOperation("reserve", errs.Mark(errors.New("taken"), errs.ErrSlotUnavailable))
	m.ObserveOperation("reserve", errs.Mark(errors.New("lock"), errs.ErrConcurrencyConflict))
	m.ObserveOperation("reserve", errors.New("connection refused"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("reserve", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("reserve", "slot_unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("reserve", "concurrency_conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("reserve", "internal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConcurrencyConflicts.WithLabelValues("reserve")))
}

func TestObserveBulkAndRetries(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveBulk(16, 2)
	m.ObserveBulk(4, 0)
	m.IncTxRetry()

	assert.Equal(t, 20.0, testutil.ToFloat64(m.SlotsGenerated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SlotsSkipped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TxRetries))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveOperation("reserve", nil)
		m.ObserveHTTP(http.MethodGet, "/api/slots", http.StatusOK, time.Millisecond)
		m.ObserveBulk(1, 1)
		m.IncTxRetry()
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := metrics.New(metrics.NewRegistry())
	m.ObserveHTTP(http.MethodPost, "/api/bookings", http.StatusCreated, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `slot_booking_http_requests_total{method="POST",route="/api/bookings",status="201"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
