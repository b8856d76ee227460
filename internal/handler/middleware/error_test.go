//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"padel-booking/internal/handler/httperr"
	"padel-booking/internal/handler/middleware"
	testhttp "padel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/bookings/:ref", func(c *gin.Context) {
		httperr.Abort(c, http.StatusNotFound, "Booking not found")
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("pool exhausted"))
	})
	r.GET("/status-only", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic/:ref", func(c *gin.Context) {
		panic("nil court")
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	t.Run("public error keeps its status and message", func(t *testing.T) {
		w := testhttp.PerformRequest(t, r, http.MethodGet, "/bookings/PB-7K3M9Q2X4W", nil, "")
		testhttp.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})

	t.Run("private error becomes a generic 500", func(t *testing.T) {
		w := testhttp.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		testhttp.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, w.Body.String(), "pool exhausted")
	})

	t.Run("explicit status without body is kept", func(t *testing.T) {
		w := testhttp.PerformRequest(t, r, http.MethodGet, "/status-only", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("panic is recovered", func(t *testing.T) {
		w := testhttp.PerformRequest(t, r, http.MethodGet, "/panic/PB-7K3M9Q2X4W", nil, "")
		testhttp.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}
