//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"padel-booking/internal/pkg/config"
	"padel-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CookieConfig{Domain: "padel.example", Secure: true, SameSite: "Strict"}

	t.Run("set", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

		cookie.SetAccessToken(c, cfg, "token-value", time.Hour)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cookie.AccessTokenCookieName, cookies[0].Name)
		assert.Equal(t, "token-value", cookies[0].Value)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	})

	t.Run("clear", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

		cookie.ClearAccessToken(c, cfg)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Less(t, cookies[0].MaxAge, 0)
	})

	t.Run("get", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "abc"})

		assert.Equal(t, "abc", cookie.GetAccessToken(c))
	})
}
