//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"libris/internal/infra"
	"libris/internal/infra/repository"
	"libris/internal/infra/sqlq"
	repositorymock "libris/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookRepository_LedgerForUpdate(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookQueries, sqlq.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: ledger returned",
			setupMock: func(mock *repositorymock.MockBookQueries, tx sqlq.DBTX) {
				mock.EXPECT().GetBookLedgerForUpdate(ctx, tx, bookID).Return(sqlq.BookLedgerRow{
					ID:                bookID,
					StockQuantity:     5,
					AvailableQuantity: 2,
				}, nil)
			},
			expectedError: false,
		},
		{
			name: "error: book not found",
			setupMock: func(mock *repositorymock.MockBookQueries, tx sqlq.DBTX) {
				mock.EXPECT().GetBookLedgerForUpdate(ctx, tx, bookID).Return(sqlq.BookLedgerRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookQueries, tx sqlq.DBTX) {
				mock.EXPECT().GetBookLedgerForUpdate(ctx, tx, bookID).Return(sqlq.BookLedgerRow{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: row violates the ledger invariant",
			setupMock: func(mock *repositorymock.MockBookQueries, tx sqlq.DBTX) {
				mock.EXPECT().GetBookLedgerForUpdate(ctx, tx, bookID).Return(sqlq.BookLedgerRow{
					ID:                bookID,
					StockQuantity:     2,
					AvailableQuantity: 3,
				}, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			ledger, actualError := repo.LedgerForUpdate(ctx, bookID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, int32(5), ledger.StockQuantity())
				assert.Equal(t, int32(2), ledger.AvailableQuantity())
			}
		})
	}
}

func TestBookRepository_DecrementAvailability(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	t.Run("success: copy taken from the pool", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DecrementBookAvailability(ctx, mockDB, bookID).Return(int64(1), nil)

		decremented, err := repo.DecrementAvailability(ctx, bookID)
		require.NoError(t, err)
		assert.True(t, decremented)
	})

	t.Run("no-op: availability predicate matched nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DecrementBookAvailability(ctx, mockDB, bookID).Return(int64(0), nil)

		decremented, err := repo.DecrementAvailability(ctx, bookID)
		require.NoError(t, err)
		assert.False(t, decremented)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DecrementBookAvailability(ctx, mockDB, bookID).Return(int64(0), errors.New("database connection error"))

		_, err := repo.DecrementAvailability(ctx, bookID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookRepository_IncrementAvailability(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	t.Run("success: copy returned to the pool", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookRepository(mockQueries, mockDB)

		mockQueries.EXPECT().IncrementBookAvailability(ctx, mockDB, bookID).Return(int64(1), nil)

		incremented, err := repo.IncrementAvailability(ctx, bookID)
		require.NoError(t, err)
		assert.True(t, incremented)
	})

	t.Run("no-op: ledger already at stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookRepository(mockQueries, mockDB)

		mockQueries.EXPECT().IncrementBookAvailability(ctx, mockDB, bookID).Return(int64(0), nil)

		incremented, err := repo.IncrementAvailability(ctx, bookID)
		require.NoError(t, err)
		assert.False(t, incremented)
	})
}
