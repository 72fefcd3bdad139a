//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slot-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(), RateLimit(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doPing(r http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_RejectsAfterBurst(t *testing.T) {
	r := newRateLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2})

	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1").Code)

	rec := doPing(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")

	// buckets are per client IP
	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.2").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newRateLimitedRouter(config.RateLimitConfig{Enabled: false, RPS: 0.001, Burst: 1})

	for range 5 {
		assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1").Code)
	}
}

func TestIPLimiters_EvictsIdleEntries(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := newIPLimiters(1, 1)
	s.now = func() time.Time { return now }
	s.lastSweep = now

	s.get("10.0.0.1")
	s.get("10.0.0.2")
	assert.Equal(t, 2, s.size())

	now = now.Add(limiterIdleTTL + time.Second)
	s.get("10.0.0.3")
	assert.Equal(t, 1, s.size())
}
