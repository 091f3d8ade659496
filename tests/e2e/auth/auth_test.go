//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"bakery-orders/internal/domain/user"
	"bakery-orders/internal/handler/dto/request"
	resdto "bakery-orders/internal/handler/dto/response"
	"bakery-orders/internal/pkg/config"
	"bakery-orders/internal/pkg/cookie"
	"bakery-orders/tests/common/authtest"
	"bakery-orders/tests/common/httptest"
	"bakery-orders/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
	ordersURL = "/api/orders"
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

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			username:       "owner",
			password:       config.TestOwnerPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			username:       "someone",
			password:       config.TestOwnerPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			username:       "owner",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のユーザー名",
			username:       "",
			password:       config.TestOwnerPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のユーザー名は拒否されること",
		},
		{
			name:           "空のパスワード",
			username:       "owner",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Username: tt.username, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Equal(t, "owner", loginRes.Username)
				require.Greater(t, loginRes.ExpiresIn, int64(0), "有効期限が無効")

				sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
				require.NotNil(t, sessionCookie, "セッション Cookie が無い")
				require.True(t, sessionCookie.HttpOnly)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("Cookie でログイン状態を取得できる", func() {
		t := s.T()
		sessionCookie := authtest.LoginUser(t, s.Router, "owner", config.TestOwnerPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, []*http.Cookie{sessionCookie}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "owner", me["username"])
		require.Equal(t, true, me["isAuthenticated"])
	})

	s.Run("Bearer トークンでも取得できる", func() {
		token := authtest.LoginOwner(s.T(), s.Router)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(s.T(), http.StatusOK, w.Code)
	})

	s.Run("トークン無しは 401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("期限切れトークンは 401", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T(), "owner", user.RoleOwner)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("設定に無いユーザーのトークンは 401", func() {
		token := s.jwtHelper.GenerateToken(s.T(), "intruder", user.RoleOwner)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトで Cookie が失効する", func() {
		t := s.T()
		sessionCookie := authtest.LoginUser(t, s.Router, "owner", config.TestOwnerPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, []*http.Cookie{sessionCookie}, "")
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})
}

func (s *authSuite) TestRoles() {
	s.Run("viewer は一覧を見られるが作成できない", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, "owner", user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		body := map[string]any{"type": "wedding", "customerName": "Ana", "date": "2025-06-20", "value": 120, "quantity": 100, "flavor": "Brigadeiro"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}
