package commands

import (
	"context"

	"libris/internal/domain/reservation"
	"libris/internal/infra"
	"libris/internal/pkg/clock"
	"libris/internal/pkg/errs"
	"libris/internal/usecase/queries"
	"libris/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateActiveReservation = errs.New("user already has an active reservation")
	ErrBookNotFound               = errs.New("book not found")
	ErrBookUnavailable            = errs.New("no copies available for reservation")
	ErrReservationNotFound        = errs.New("reservation not found")
	ErrForbidden                  = errs.New("reservation belongs to another user")
	ErrUnknownAction              = errs.New("unknown reservation action")
)

type ReservationAction string

const (
	ActionCancel  ReservationAction = "cancel"
	ActionCollect ReservationAction = "collect"
)

type ReservationCommands interface {
	Create(ctx context.Context, userID, bookID uuid.UUID) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, actor, id uuid.UUID, action ReservationAction) (*queries.ReservationView, error)
	SweepExpired(ctx context.Context) (int64, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	queries queries.ReservationQueries
	clock   clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	queries queries.ReservationQueries,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		queries: queries,
		clock:   clock,
	}
}

// Create places a hold on one copy of a book. The whole sequence runs in
// one transaction: the user row lock serializes concurrent requests by the
// same user, the book ledger lock serializes the availability check against
// the decrement. A partial unique index on active reservations backstops
// the per-user check.
func (c *reservationCommandsImpl) Create(ctx context.Context, userID, bookID uuid.UUID) (*queries.ReservationView, error) {
	var reservationID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Lock(ctx, userID); err != nil {
			return err
		}

		active, err := tx.Reservations().CountActiveByUser(ctx, userID)
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrDuplicateActiveReservation
		}

		ledger, err := tx.Books().LedgerForUpdate(ctx, bookID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		if err := ledger.Reserve(); err != nil {
			return ErrBookUnavailable
		}

		res := reservation.NewReservation(userID, bookID, c.clock.Now())
		id, err := tx.Reservations().Create(ctx, res)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrDuplicateActiveReservation
			}
			return err
		}

		decremented, err := tx.Books().DecrementAvailability(ctx, bookID)
		if err != nil {
			return err
		}
		if !decremented {
			// Lost the copy between check and decrement. Should not
			// happen under the ledger lock, but fail the tx if it does.
			return ErrBookUnavailable
		}

		reservationID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.queries.GetByIDSystem(ctx, reservationID)
}

// UpdateStatus applies a user-initiated transition. Cancelling returns the
// held copy to the available pool; collecting keeps it out since the copy
// leaves the building with the borrower. A transition that does not apply
// (the reservation is terminal, or the collection window lapsed) mutates
// nothing and hands the persisted state back unchanged.
func (c *reservationCommandsImpl) UpdateStatus(ctx context.Context, actor, id uuid.UUID, action ReservationAction) (*queries.ReservationView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if !res.IsOwnedBy(actor) {
			return ErrForbidden
		}

		switch action {
		case ActionCancel:
			if !res.IsActive() {
				return nil
			}
			changed, err := tx.Reservations().MarkCancelled(ctx, id)
			if err != nil {
				return err
			}
			if !changed {
				return nil
			}
			ledger, err := tx.Books().LedgerForUpdate(ctx, res.BookID())
			if err != nil {
				return err
			}
			if err := ledger.Release(); err != nil {
				return errs.Wrap(err, "book ledger out of balance")
			}
			if _, err := tx.Books().IncrementAvailability(ctx, res.BookID()); err != nil {
				return err
			}
			return nil

		case ActionCollect:
			now := c.clock.Now()
			if !res.IsActive() || res.IsExpired(now) {
				return nil
			}
			if _, err := tx.Reservations().MarkCollected(ctx, id, now); err != nil {
				return err
			}
			return nil

		default:
			return ErrUnknownAction
		}
	})
	if err != nil {
		return nil, err
	}

	return c.queries.GetByIDSystem(ctx, id)
}

// SweepExpired transitions every lapsed active reservation to expired and
// returns the held copies to their books, all in one statement.
func (c *reservationCommandsImpl) SweepExpired(ctx context.Context) (int64, error) {
	var expired int64

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Reservations().ExpireOverdue(ctx, c.clock.Now())
		if err != nil {
			return err
		}
		expired = count
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}
