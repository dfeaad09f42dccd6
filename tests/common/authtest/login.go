//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"libris/internal/handler/dto/request"
	"libris/internal/handler/dto/response"
	"libris/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// RegisterUser creates an account through the API and returns its ID and
// access token. Registration is the only way tests mint credentials, so
// password hashing stays inside the application.
func RegisterUser(t *testing.T, router *gin.Engine, name, email string) (string, string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		request.RegisterRequest{Name: name, Email: email, Password: DefaultPassword}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body response.AuthResponse
	httptest.DecodeResponseBody(t, w.Body, &body)
	require.NotEmpty(t, body.AccessToken)
	require.NotEmpty(t, body.User.ID)

	return body.User.ID, body.AccessToken
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
