//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"padel-booking/internal/domain/user"
	"padel-booking/internal/handler/dto/request"
	"padel-booking/internal/handler/dto/response"
	"padel-booking/internal/pkg/cookie"
	"padel-booking/tests/common/authtest"
	"padel-booking/tests/common/dbtest"
	"padel-booking/tests/common/httptest"
	"padel-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "admin@padel.example", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "viewer@padel.example", string(user.RoleViewer))
	dbtest.CreateTestUser(s.T(), s.DB, "operator@padel.example", string(user.RoleOperator))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@padel.example", string(user.RoleAdmin))

	// 非アクティブユーザー
	dbtest.DeactivateUser(s.T(), s.DB, "inactive@padel.example")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "正常なログイン",
			email:          "admin@padel.example",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "存在しないユーザー",
			email:          "nobody@padel.example",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid email or password",
		},
		{
			name:           "間違ったパスワード",
			email:          "admin@padel.example",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid email or password",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@padel.example",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusForbidden,
			expectedError:  "Account is inactive",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "空のパスワード",
			email:          "admin@padel.example",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedError)
				return
			}

			var res response.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.NotEmpty(t, res.AccessToken)
			require.NotNil(t, res.User)
			require.Equal(t, tt.email, res.User.Email)

			sessionCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
			require.NotNil(t, sessionCookie)
			require.True(t, sessionCookie.HttpOnly)
			require.Equal(t, res.AccessToken, sessionCookie.Value)

			// last_loginが更新されること
			var updated bool
			err := s.DB.QueryRow(t.Context(),
				"SELECT last_login IS NOT NULL FROM admin_users WHERE email = $1", tt.email).Scan(&updated)
			require.NoError(t, err)
			require.True(t, updated, "last_loginが更新されていない")
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでセッションCookieが削除される", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@padel.example", dbtest.DefaultPassword)
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}, "")
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
	})

	s.Run("トークンなしでは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
		expectedEmail  string
		expectedRole   string
	}{
		{
			name: "管理者ユーザーの情報取得",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "admin@padel.example", dbtest.DefaultPassword)
			},
			expectedStatus: http.StatusOK,
			expectedEmail:  "admin@padel.example",
			expectedRole:   string(user.RoleAdmin),
		},
		{
			name: "Viewerユーザーの情報取得",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "viewer@padel.example", dbtest.DefaultPassword)
			},
			expectedStatus: http.StatusOK,
			expectedEmail:  "viewer@padel.example",
			expectedRole:   string(user.RoleViewer),
		},
		{
			name:           "無効なトークン",
			setupToken:     func() string { return "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "トークンなし",
			setupToken:     func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, tt.setupToken())
			if tt.expectedStatus != http.StatusOK {
				require.Equal(t, tt.expectedStatus, w.Code)
				return
			}

			var res response.UserResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.Equal(t, tt.expectedEmail, res.Email)
			require.Equal(t, tt.expectedRole, res.Role)
			require.NotContains(t, w.Body.String(), "password")
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@padel.example", string(user.RoleAdmin))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログイン", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "operator@padel.example", dbtest.DefaultPassword)
		token2 := s.jwtHelper.GenerateToken(t,
			dbtest.CreateTestUser(t, s.DB, "second@padel.example", string(user.RoleOperator)), user.RoleOperator)

		require.NotEqual(t, token1, token2)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code, "最初のトークンが無効")
		require.Equal(t, http.StatusOK, w2.Code, "二番目のトークンが無効")
	})
}
