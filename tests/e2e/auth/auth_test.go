//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"libris/internal/handler/dto/request"
	"libris/internal/handler/dto/response"
	"libris/tests/common/authtest"
	"libris/tests/common/dbtest"
	"libris/tests/common/httptest"
	"libris/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
	profileURL  = "/api/profile"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

// =============================================================================
// TestRegister - Account registration API tests
// =============================================================================

func (s *AuthSuite) TestRegister() {
	s.Run("Normal case: registration returns a usable token", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Ada Lovelace", "ada@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me response.UserResponse
		httptest.DecodeResponseBody(t, w.Body, &me)
		require.Equal(t, "ada@example.com", me.Email)
		require.Equal(t, "member", me.Role)
	})

	s.Run("Error case: duplicate email", func() {
		t := s.T()

		authtest.RegisterUser(t, s.Router, "Ada Lovelace", "ada@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Name: "Imposter", Email: "ada@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: malformed payloads are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "password123"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "short"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestLogin - Login and logout flows
// =============================================================================

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: cookie and bearer token both authenticate", func() {
		t := s.T()

		authtest.RegisterUser(t, s.Router, "Ada Lovelace", "ada@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ada@example.com", Password: authtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		cookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cookie)

		var body response.AuthResponse
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.NotEmpty(t, body.AccessToken)

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, body.AccessToken)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())

		cw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil,
			[]*http.Cookie{cookie}, "")
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())
	})

	s.Run("Error case: wrong password and unknown email look identical", func() {
		t := s.T()

		authtest.RegisterUser(t, s.Router, "Ada Lovelace", "ada@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ada@example.com", Password: "wrongPass99"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ghost@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Normal case: logout clears the cookie", func() {
		t := s.T()

		authtest.RegisterUser(t, s.Router, "Ada Lovelace", "ada@example.com")
		token := authtest.LoginUser(t, s.Router, "ada@example.com", authtest.DefaultPassword)

		authtest.LogoutUser(t, s.Router, []*http.Cookie{{Name: "access_token", Value: token}})
	})
}

// =============================================================================
// TestProfile - Profile read, update and account deletion
// =============================================================================

func (s *AuthSuite) TestProfile() {
	s.Run("Normal case: profile reflects reservation history", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Reader", "reader@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000201", 1, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{BookID: bookID}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var profile response.ProfileResponse
		httptest.DecodeResponseBody(t, w.Body, &profile)
		require.Equal(t, "reader@example.com", profile.User.Email)
		require.EqualValues(t, 1, profile.Stats.ActiveReservations)
		require.Equal(t, "active", profile.Stats.AccountStatus)
	})

	s.Run("Normal case: email change requires the current password", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Mover", "old@example.com")

		newEmail := "new@example.com"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, profileURL,
			request.UpdateProfileRequest{Email: &newEmail, CurrentPassword: "wrongPass99"}, token)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, profileURL,
			request.UpdateProfileRequest{Email: &newEmail, CurrentPassword: authtest.DefaultPassword}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// The new email logs in, the old one does not.
		authtest.LoginUser(t, s.Router, newEmail, authtest.DefaultPassword)
		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "old@example.com", Password: authtest.DefaultPassword}, "")
		require.Equal(t, http.StatusUnauthorized, lw.Code, lw.Body.String())
	})

	s.Run("Error case: deletion is blocked while a reservation is active", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Leaver", "leaver@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000218", 1, 1)

		created := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{BookID: bookID}, token)
		require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, profileURL,
			request.DeleteAccountRequest{CurrentPassword: authtest.DefaultPassword}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Normal case: account deletion ends the session", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Leaver", "leaver@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, profileURL,
			request.DeleteAccountRequest{CurrentPassword: authtest.DefaultPassword}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "leaver@example.com", Password: authtest.DefaultPassword}, "")
		require.Equal(t, http.StatusUnauthorized, lw.Code, lw.Body.String())
	})
}
