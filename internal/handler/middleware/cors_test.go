//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"padel-booking/internal/handler/middleware"
	"padel-booking/internal/pkg/config"
	testhttp "padel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins:     []string{"https://padel.example"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
	preflight := func(cfg config.CORSConfig, origin string) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg))
		r.POST("/api/bookings", func(c *gin.Context) { c.Status(http.StatusCreated) })

		req := httptest.NewRequest(http.MethodOptions, "/api/bookings", http.NoBody)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("listed origin gets credentials", func(t *testing.T) {
		w := preflight(cfg, "https://padel.example")
		assert.Equal(t, http.StatusNoContent, w.Code)
		testhttp.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "https://padel.example",
			"Access-Control-Allow-Credentials": "true",
		})
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		w := preflight(cfg, "https://evil.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
		testhttp.AssertHeaders(t, w, map[string]string{"Access-Control-Allow-Origin": ""})
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		wildcard := cfg
		wildcard.AllowOrigins = []string{"*"}
		w := preflight(wildcard, "https://anywhere.example")
		assert.Equal(t, http.StatusNoContent, w.Code)
		testhttp.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "*",
			"Access-Control-Allow-Credentials": "",
		})
	})
}
