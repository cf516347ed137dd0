//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/pkg/cookie"
	"furnicraft/tests/common/dbtest"
	"furnicraft/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	LoginURL  = "/api/auth/login"
	LogoutURL = "/api/auth/logout"
)

// SessionCookie is the cookie a browser sends back after signing in.
func SessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: cookie.AccessTokenCookieName, Value: token}
}

// LoginUser signs in through the API and returns the token from the session
// cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.Serve(t, router, http.MethodPost, LoginURL,
		map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, session, "login did not set %s", cookie.AccessTokenCookieName)
	require.NotEmpty(t, session.Value)
	return session.Value
}

// CreateAndLogin seeds an account with dbtest.TestPassword and signs it in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string, role user.Role) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role.String())
	return LoginUser(t, router, email, dbtest.TestPassword)
}

// LogoutUser signs the session out and returns the expiring cookie the server
// sent back.
func LogoutUser(t *testing.T, router *gin.Engine, token string) *http.Cookie {
	t.Helper()

	w := httptest.Serve(t, router, http.MethodPost, LogoutURL, nil, httptest.WithCookies(SessionCookie(token)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, cleared, "logout did not reset %s", cookie.AccessTokenCookieName)
	return cleared
}
