//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"libris/internal/infra"
	"libris/internal/pkg/clock"
	"libris/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationReadStore struct {
	mock.Mock
}

func (m *MockReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ReservationView), args.Error(1)
}

func (m *MockReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.ReservationView), args.Error(1)
}

var queryNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func reservationView(userID uuid.UUID, status string, expiresAt time.Time) *queries.ReservationView {
	return &queries.ReservationView{
		ID:     uuid.New(),
		UserID: userID,
		Book: queries.BookSummary{
			ID:    uuid.New(),
			Title: "Dune",
		},
		Status:     status,
		ReservedAt: expiresAt.Add(-7 * 24 * time.Hour),
		ExpiresAt:  expiresAt,
	}
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("owner sees the reservation with days remaining", func(t *testing.T) {
		store := &MockReservationReadStore{}
		q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

		view := reservationView(userID, "active", queryNow.Add(4*24*time.Hour+time.Hour))
		store.On("FindByID", ctx, view.ID).Return(view, nil)

		got, err := q.GetByID(ctx, userID, view.ID)
		require.NoError(t, err)
		require.NotNil(t, got.DaysRemaining)
		assert.Equal(t, 5, *got.DaysRemaining, "a started day counts as a full one")
	})

	t.Run("terminal reservation carries no days remaining", func(t *testing.T) {
		store := &MockReservationReadStore{}
		q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

		view := reservationView(userID, "collected", queryNow.Add(2*24*time.Hour))
		store.On("FindByID", ctx, view.ID).Return(view, nil)

		got, err := q.GetByID(ctx, userID, view.ID)
		require.NoError(t, err)
		assert.Nil(t, got.DaysRemaining)
	})

	t.Run("other users cannot see it", func(t *testing.T) {
		store := &MockReservationReadStore{}
		q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

		view := reservationView(userID, "active", queryNow.Add(24*time.Hour))
		store.On("FindByID", ctx, view.ID).Return(view, nil)

		_, err := q.GetByID(ctx, uuid.New(), view.ID)
		require.ErrorIs(t, err, queries.ErrReservationHidden)
	})

	t.Run("not found", func(t *testing.T) {
		store := &MockReservationReadStore{}
		q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

		id := uuid.New()
		store.On("FindByID", ctx, id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, userID, id)
		require.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}

func TestReservationQueries_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("partitions active from history", func(t *testing.T) {
		store := &MockReservationReadStore{}
		q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

		active := reservationView(userID, "active", queryNow.Add(6*24*time.Hour))
		expired := reservationView(userID, "expired", queryNow.Add(-24*time.Hour))
		cancelled := reservationView(userID, "cancelled", queryNow.Add(-48*time.Hour))
		store.On("FindByUserID", ctx, userID).
			Return([]*queries.ReservationView{active, expired, cancelled}, nil)

		got, err := q.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got.Active, 1)
		assert.Equal(t, active.ID, got.Active[0].ID)
		require.NotNil(t, got.Active[0].DaysRemaining)
		require.Len(t, got.History, 2)
		assert.Nil(t, got.History[0].DaysRemaining)
	})

	t.Run("no reservations renders empty groups", func(t *testing.T) {
		store := &MockReservationReadStore{}
		q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

		store.On("FindByUserID", ctx, userID).Return([]*queries.ReservationView{}, nil)

		got, err := q.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, got.Active)
		assert.NotNil(t, got.History)
		assert.Empty(t, got.Active)
		assert.Empty(t, got.History)
	})
}
