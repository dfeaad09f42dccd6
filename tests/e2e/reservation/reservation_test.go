//go:build e2e

package reservation_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"libris/internal/handler/dto/request"
	"libris/internal/handler/dto/response"
	"libris/tests/common/authtest"
	"libris/tests/common/dbtest"
	"libris/tests/common/httptest"
	"libris/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	booksURL        = "/api/books"
	sweepURL        = "/api/admin/reservations/sweep"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) createReservation(t *testing.T, token string, bookID uuid.UUID) response.ReservationResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
		request.CreateReservationRequest{BookID: bookID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.ReservationResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	return created
}

func (s *ReservationSuite) bookDetail(t *testing.T, bookID uuid.UUID) response.BookDetailResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, booksURL+"/"+bookID.String(), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var detail response.BookDetailResponse
	httptest.DecodeResponseBody(t, w.Body, &detail)
	return detail
}

// =============================================================================
// TestCreateReservation - Reservation creation API tests
// =============================================================================

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: reservation holds a copy for seven days", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Holder One", "holder1@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000017", 2, 2)

		created := s.createReservation(t, token, bookID)
		require.Equal(t, "active", created.Status)
		require.Equal(t, bookID, created.Book.ID)
		require.NotNil(t, created.DaysRemaining)
		require.Equal(t, 7, *created.DaysRemaining)
		require.WithinDuration(t, created.ReservedAt.Add(7*24*time.Hour), created.ExpiresAt, time.Second)

		detail := s.bookDetail(t, bookID)
		require.Equal(t, int32(1), detail.AvailableQuantity)
		require.Equal(t, int64(1), detail.ActiveReservations)
	})

	s.Run("Error case: second active reservation is rejected", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Holder Two", "holder2@example.com")
		firstBook := dbtest.CreateTestBook(t, s.DB, "9781000000024", 2, 2)
		secondBook := dbtest.CreateTestBook(t, s.DB, "9781000000031", 2, 2)

		s.createReservation(t, token, firstBook)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{BookID: secondBook}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		detail := s.bookDetail(t, secondBook)
		require.Equal(t, int32(2), detail.AvailableQuantity, "Rejected reservation must not touch the ledger")
	})

	s.Run("Error case: unknown book", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Holder Three", "holder3@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{BookID: uuid.New()}, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: exhausted book cannot be reserved", func() {
		t := s.T()

		_, firstToken := authtest.RegisterUser(t, s.Router, "Fast Reader", "fast@example.com")
		_, lateToken := authtest.RegisterUser(t, s.Router, "Late Reader", "late@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000048", 1, 1)

		s.createReservation(t, firstToken, bookID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{BookID: bookID}, lateToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		detail := s.bookDetail(t, bookID)
		require.Equal(t, int32(0), detail.AvailableQuantity)
		require.False(t, detail.CanReserve)
	})

	s.Run("Concurrency: one copy, many readers, exactly one wins", func() {
		t := s.T()

		const contenders = 8
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000055", 1, 1)

		tokens := make([]string, contenders)
		for i := range tokens {
			_, tokens[i] = authtest.RegisterUser(t, s.Router,
				fmt.Sprintf("Contender %d", i), fmt.Sprintf("contender%d@example.com", i))
		}

		codes := make([]int, contenders)
		var wg sync.WaitGroup
		for i, token := range tokens {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
					request.CreateReservationRequest{BookID: bookID}, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		var wins, conflicts int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				wins++
			case http.StatusConflict:
				conflicts++
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, wins, "Exactly one contender should hold the copy")
		require.Equal(t, contenders-1, conflicts)

		detail := s.bookDetail(t, bookID)
		require.Equal(t, int32(0), detail.AvailableQuantity)
		require.Equal(t, int64(1), detail.ActiveReservations)
	})
}

// =============================================================================
// TestUpdateReservation - Cancel and collect transitions
// =============================================================================

func (s *ReservationSuite) TestUpdateReservation() {
	s.Run("Normal case: cancelling returns the copy and frees the user", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Canceller", "canceller@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000062", 1, 1)

		created := s.createReservation(t, token, bookID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			reservationsURL+"/"+created.ID.String(),
			request.UpdateReservationRequest{Action: "cancel"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, "cancelled", updated.Status)
		require.Nil(t, updated.DaysRemaining)

		detail := s.bookDetail(t, bookID)
		require.Equal(t, int32(1), detail.AvailableQuantity, "Cancelled copy returns to the pool")

		// The user is free to reserve again.
		s.createReservation(t, token, bookID)
	})

	s.Run("Normal case: collecting stamps the pickup and keeps the copy out", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Collector", "collector@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000079", 1, 1)

		created := s.createReservation(t, token, bookID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			reservationsURL+"/"+created.ID.String(),
			request.UpdateReservationRequest{Action: "collect"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, "collected", updated.Status)
		require.NotNil(t, updated.CollectedAt)

		detail := s.bookDetail(t, bookID)
		require.Equal(t, int32(0), detail.AvailableQuantity, "Collected copy stays with the borrower")
	})

	s.Run("Normal case: transitions on a terminal reservation are silent no-ops", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Repeater", "repeater@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000086", 1, 1)

		created := s.createReservation(t, token, bookID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			reservationsURL+"/"+created.ID.String(),
			request.UpdateReservationRequest{Action: "cancel"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// Repeating either action changes nothing and hands back the
		// persisted state.
		for _, action := range []string{"cancel", "collect"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
				reservationsURL+"/"+created.ID.String(),
				request.UpdateReservationRequest{Action: action}, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var unchanged response.ReservationResponse
			httptest.DecodeResponseBody(t, w.Body, &unchanged)
			require.Equal(t, "cancelled", unchanged.Status)
			require.Nil(t, unchanged.CollectedAt)
		}

		detail := s.bookDetail(t, bookID)
		require.Equal(t, int32(1), detail.AvailableQuantity, "Repeated cancels must not inflate the ledger")
	})

	s.Run("Normal case: collecting after the window lapsed changes nothing", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Sleeper", "sleeper@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000093", 1, 1)

		created := s.createReservation(t, token, bookID)
		dbtest.SetReservationExpiry(t, s.DB, created.ID, time.Now().Add(-time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			reservationsURL+"/"+created.ID.String(),
			request.UpdateReservationRequest{Action: "collect"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// The hold stays active until the sweep transitions it; the copy
		// is not handed over.
		var unchanged response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &unchanged)
		require.Equal(t, "active", unchanged.Status)
		require.Nil(t, unchanged.CollectedAt)

		detail := s.bookDetail(t, bookID)
		require.Equal(t, int32(0), detail.AvailableQuantity)
	})

	s.Run("Error case: another user's reservation is untouchable", func() {
		t := s.T()

		_, ownerToken := authtest.RegisterUser(t, s.Router, "Owner", "owner@example.com")
		_, strangerToken := authtest.RegisterUser(t, s.Router, "Stranger", "stranger@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000109", 1, 1)

		created := s.createReservation(t, ownerToken, bookID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			reservationsURL+"/"+created.ID.String(),
			request.UpdateReservationRequest{Action: "cancel"}, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+created.ID.String(), nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: unauthenticated access", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{BookID: uuid.New()}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestListReservations - Per-user reservation listing
// =============================================================================

func (s *ReservationSuite) TestListReservations() {
	s.Run("Normal case: active and history are partitioned", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Lister", "lister@example.com")
		firstBook := dbtest.CreateTestBook(t, s.DB, "9781000000116", 1, 1)
		secondBook := dbtest.CreateTestBook(t, s.DB, "9781000000123", 1, 1)

		first := s.createReservation(t, token, firstBook)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			reservationsURL+"/"+first.ID.String(),
			request.UpdateReservationRequest{Action: "cancel"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		second := s.createReservation(t, token, secondBook)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list response.UserReservationsResponse
		httptest.DecodeResponseBody(t, w.Body, &list)
		require.Len(t, list.Active, 1)
		require.Equal(t, second.ID, list.Active[0].ID)
		require.Len(t, list.History, 1)
		require.Equal(t, first.ID, list.History[0].ID)
	})

	s.Run("Normal case: empty groups are rendered, not omitted", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Newcomer", "newcomer@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list response.UserReservationsResponse
		httptest.DecodeResponseBody(t, w.Body, &list)
		require.NotNil(t, list.Active)
		require.NotNil(t, list.History)
		require.Empty(t, list.Active)
		require.Empty(t, list.History)
	})
}

// =============================================================================
// TestSweepExpired - Expiry sweep over lapsed reservations
// =============================================================================

func (s *ReservationSuite) TestSweepExpired() {
	s.Run("Normal case: lapsed holds expire and release their copies", func() {
		t := s.T()

		_, lapsedToken := authtest.RegisterUser(t, s.Router, "Lapsed", "lapsed@example.com")
		_, freshToken := authtest.RegisterUser(t, s.Router, "Fresh", "fresh@example.com")
		lapsedBook := dbtest.CreateTestBook(t, s.DB, "9781000000130", 1, 1)
		freshBook := dbtest.CreateTestBook(t, s.DB, "9781000000147", 1, 1)

		lapsed := s.createReservation(t, lapsedToken, lapsedBook)
		fresh := s.createReservation(t, freshToken, freshBook)

		dbtest.SetReservationExpiry(t, s.DB, lapsed.ID, time.Now().Add(-time.Hour))

		count, err := s.Reservations.SweepExpired(context.Background())
		require.NoError(t, err)
		require.EqualValues(t, 1, count)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+lapsed.ID.String(), nil, lapsedToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var expired response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &expired)
		require.Equal(t, "expired", expired.Status)

		detail := s.bookDetail(t, lapsedBook)
		require.Equal(t, int32(1), detail.AvailableQuantity, "Expired copy returns to the pool")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+fresh.ID.String(), nil, freshToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var stillActive response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &stillActive)
		require.Equal(t, "active", stillActive.Status)

		// A second sweep is a no-op.
		count, err = s.Reservations.SweepExpired(context.Background())
		require.NoError(t, err)
		require.Zero(t, count)

		// The lapsed user can reserve again once the hold expired.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{BookID: lapsedBook}, lapsedToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Normal case: librarians trigger the sweep over the API", func() {
		t := s.T()

		staffID, _ := authtest.RegisterUser(t, s.Router, "Librarian", "librarian@example.com")
		dbtest.PromoteUser(t, s.DB, staffID, "librarian")
		// The role rides in the token, so promotion needs a fresh login.
		staffToken := authtest.LoginUser(t, s.Router, "librarian@example.com", authtest.DefaultPassword)

		_, holderToken := authtest.RegisterUser(t, s.Router, "Holder", "sweepholder@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, "9781000000154", 1, 1)
		created := s.createReservation(t, holderToken, bookID)
		dbtest.SetReservationExpiry(t, s.DB, created.ID, time.Now().Add(-time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sweepURL, nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var swept response.SweepResponse
		httptest.DecodeResponseBody(t, w.Body, &swept)
		require.EqualValues(t, 1, swept.ExpiredCount)
	})

	s.Run("Error case: members cannot trigger the sweep", func() {
		t := s.T()

		_, token := authtest.RegisterUser(t, s.Router, "Plain Member", "member@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sweepURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
