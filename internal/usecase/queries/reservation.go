package queries

import (
	"context"
	"math"

	"libris/internal/domain/reservation"
	"libris/internal/infra"
	"libris/internal/pkg/clock"
	"libris/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationHidden   = errs.New("reservation belongs to another user")
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	// GetByID enforces that only the owner can read the reservation.
	GetByID(ctx context.Context, actor, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem bypasses the ownership check for engine-internal
	// read-your-writes lookups.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) (*UserReservations, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clock}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor {
		return nil, ErrReservationHidden
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	q.decorate(view)
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) (*UserReservations, error) {
	views, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Empty slices rather than nil so the API always renders both groups.
	result := &UserReservations{
		Active:  []*ReservationView{},
		History: []*ReservationView{},
	}
	for _, v := range views {
		q.decorate(v)
		if v.Status == reservation.StatusActive.String() {
			result.Active = append(result.Active, v)
		} else {
			result.History = append(result.History, v)
		}
	}
	return result, nil
}

func (q *reservationQueriesImpl) decorate(view *ReservationView) {
	if view.Status != reservation.StatusActive.String() {
		return
	}
	// A started day counts as a full one, matching the domain entity.
	days := int(math.Ceil(view.ExpiresAt.Sub(q.clock.Now()).Hours() / 24))
	view.DaysRemaining = &days
}
