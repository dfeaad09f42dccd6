//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"libris/internal/infra"
	"libris/internal/infra/readstore"
	"libris/internal/infra/sqlq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationWithBook(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.ReservationWithBookRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlq.ReservationWithBookRow), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsByUser(ctx context.Context, db sqlq.DBTX, userID uuid.UUID) ([]sqlq.ReservationWithBookRow, error) {
	args := m.Called(ctx, db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sqlq.ReservationWithBookRow), args.Error(1)
}

func reservationRow(status string) sqlq.ReservationWithBookRow {
	reservedAt := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	return sqlq.ReservationWithBookRow{
		ReservationRow: sqlq.ReservationRow{
			ID:         uuid.New(),
			UserID:     uuid.New(),
			BookID:     uuid.New(),
			Status:     status,
			ReservedAt: reservedAt,
			ExpiresAt:  reservedAt.Add(7 * 24 * time.Hour),
			CreatedAt:  reservedAt,
			UpdatedAt:  reservedAt,
		},
		BookTitle:  "Dune",
		BookAuthor: "Frank Herbert",
		BookGenre:  "Science Fiction",
	}
}

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the joined row into a view", func(t *testing.T) {
		q := &MockReservationViewQueries{}
		store := readstore.NewReservationReadStore(q, nil)

		row := reservationRow("active")
		q.On("GetReservationWithBook", ctx, nil, row.ID).Return(row, nil)

		view, err := store.FindByID(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, row.UserID, view.UserID)
		assert.Equal(t, row.BookID, view.Book.ID)
		assert.Equal(t, "Dune", view.Book.Title)
		assert.Equal(t, "active", view.Status)
		assert.Equal(t, row.ExpiresAt, view.ExpiresAt)
		assert.Nil(t, view.CollectedAt)
	})

	t.Run("no rows becomes a not found kind", func(t *testing.T) {
		q := &MockReservationViewQueries{}
		store := readstore.NewReservationReadStore(q, nil)

		id := uuid.New()
		q.On("GetReservationWithBook", ctx, nil, id).
			Return(sqlq.ReservationWithBookRow{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("other errors are db failures", func(t *testing.T) {
		q := &MockReservationViewQueries{}
		store := readstore.NewReservationReadStore(q, nil)

		id := uuid.New()
		q.On("GetReservationWithBook", ctx, nil, id).
			Return(sqlq.ReservationWithBookRow{}, assert.AnError)

		_, err := store.FindByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationReadStore_FindByUserID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("maps every row", func(t *testing.T) {
		q := &MockReservationViewQueries{}
		store := readstore.NewReservationReadStore(q, nil)

		rows := []sqlq.ReservationWithBookRow{reservationRow("active"), reservationRow("expired")}
		q.On("ListReservationsByUser", ctx, nil, userID).Return(rows, nil)

		views, err := store.FindByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, rows[0].ID, views[0].ID)
		assert.Equal(t, "expired", views[1].Status)
	})

	t.Run("no rows yields an empty slice", func(t *testing.T) {
		q := &MockReservationViewQueries{}
		store := readstore.NewReservationReadStore(q, nil)

		q.On("ListReservationsByUser", ctx, nil, userID).Return(nil, nil)

		views, err := store.FindByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
