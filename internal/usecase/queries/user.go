package queries

import (
	"context"

	"libris/internal/infra"
	"libris/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	ReservationStats(ctx context.Context, userID uuid.UUID) (*ProfileStats, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, id uuid.UUID) (*UserView, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*ProfileView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, id uuid.UUID) (*ProfileView, error) {
	view, err := q.GetCurrentUser(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := q.store.ReservationStats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		User:  *view,
		Stats: *stats,
	}, nil
}
