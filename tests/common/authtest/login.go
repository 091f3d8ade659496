//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"bakery-orders/internal/handler/dto/request"
	"bakery-orders/internal/pkg/config"
	"bakery-orders/internal/pkg/cookie"
	"bakery-orders/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser returns the session cookie issued for the given credentials.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session cookie not found")
	require.NotEmpty(t, sessionCookie.Value, "Session cookie is empty")

	return sessionCookie
}

// LoginOwner logs in with the owner account from config.NewTestConfig and returns the token.
func LoginOwner(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return LoginUser(t, router, "owner", config.TestOwnerPassword).Value
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
