package repository

import (
	"context"
	"errors"
	"time"

	"libris/internal/domain/reservation"
	"libris/internal/infra"
	"libris/internal/infra/sqlq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

// ReservationQueries is the slice of sqlq the repository needs; narrowed
// for mockability in unit tests.
type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateReservationParams) (uuid.UUID, error)
	GetReservationForUpdate(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.ReservationRow, error)
	CountActiveReservationsByUser(ctx context.Context, db sqlq.DBTX, userID uuid.UUID) (int64, error)
	MarkReservationCancelled(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (int64, error)
	MarkReservationCollected(ctx context.Context, db sqlq.DBTX, id uuid.UUID, collectedAt time.Time) (int64, error)
	ExpireOverdueReservations(ctx context.Context, db sqlq.DBTX, now time.Time) (int64, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlq.DBTX
}

func NewReservationRepository(queries ReservationQueries, db sqlq.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	params := sqlq.CreateReservationParams{
		ID:         res.ID(),
		UserID:     res.UserID(),
		BookID:     res.BookID(),
		Status:     res.Status().String(),
		ReservedAt: res.ReservedAt(),
		ExpiresAt:  res.ExpiresAt(),
	}

	resultID, err := r.queries.CreateReservation(ctx, r.db, params)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("reservation conflicts with an existing one", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	return rowToReservation(row), nil
}

func (r *ReservationRepository) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := r.queries.CountActiveReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := r.queries.MarkReservationCancelled(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel reservation", err)
	}
	return affected > 0, nil
}

func (r *ReservationRepository) MarkCollected(ctx context.Context, id uuid.UUID, collectedAt time.Time) (bool, error) {
	affected, err := r.queries.MarkReservationCollected(ctx, r.db, id, collectedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to collect reservation", err)
	}
	return affected > 0, nil
}

func (r *ReservationRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.queries.ExpireOverdueReservations(ctx, r.db, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire overdue reservations", err)
	}
	return count, nil
}

func rowToReservation(row sqlq.ReservationRow) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.BookID,
		reservation.Status(row.Status),
		row.ReservedAt,
		row.ExpiresAt,
		row.CollectedAt,
		row.CreatedAt,
		row.UpdatedAt,
	)
}
