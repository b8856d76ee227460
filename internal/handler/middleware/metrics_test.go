//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"padel-booking/internal/handler/middleware"
	"padel-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New("padel_test")

	r := gin.New()
	r.Use(middleware.MetricsMiddleware(m))
	r.GET("/api/bookings/:ref/success", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, ref := range []string{"PB-AAAAAAAAAA", "PB-BBBBBBBBBB"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/"+ref+"/success", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/api/bookings/:ref/success", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "padel_test_http_requests_total")
}
