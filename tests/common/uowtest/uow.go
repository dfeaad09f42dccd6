// Package uowtest provides an in-memory UnitOfWork whose repositories are
// gomock doubles, for exercising command flows without a database.
package uowtest

import (
	"context"

	"libris/internal/infra/sqlq"
	"libris/internal/usecase/shared"
	sharedmock "libris/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type FakeTx struct {
	ReservationRepo *sharedmock.MockReservationRepository
	BookRepo        *sharedmock.MockBookRepository
	UserRepo        *sharedmock.MockUserRepository
}

func (t *FakeTx) Reservations() shared.ReservationRepository { return t.ReservationRepo }
func (t *FakeTx) Books() shared.BookRepository               { return t.BookRepo }
func (t *FakeTx) Users() shared.UserRepository               { return t.UserRepo }
func (t *FakeTx) DB() sqlq.DBTX                              { return nil }

// FakeUoW runs the transactional closure directly against the mock
// repositories; there is no commit or rollback semantics.
type FakeUoW struct {
	Tx *FakeTx
}

func NewFakeUoW(ctrl *gomock.Controller) *FakeUoW {
	return &FakeUoW{
		Tx: &FakeTx{
			ReservationRepo: sharedmock.NewMockReservationRepository(ctrl),
			BookRepo:        sharedmock.NewMockBookRepository(ctrl),
			UserRepo:        sharedmock.NewMockUserRepository(ctrl),
		},
	}
}

func (u *FakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.Tx)
}

func (u *FakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlq.DBTX) error) error {
	return fn(ctx, nil)
}
