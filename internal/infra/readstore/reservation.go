package readstore

import (
	"context"
	"errors"

	"libris/internal/infra"
	"libris/internal/infra/sqlq"
	"libris/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationViewQueries interface {
	GetReservationWithBook(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.ReservationWithBookRow, error)
	ListReservationsByUser(ctx context.Context, db sqlq.DBTX, userID uuid.UUID) ([]sqlq.ReservationWithBookRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlq.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlq.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationWithBook(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(row)
	}
	return result, nil
}

func rowToReservationView(row sqlq.ReservationWithBookRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:     row.ID,
		UserID: row.UserID,
		Book: queries.BookSummary{
			ID:     row.BookID,
			Title:  row.BookTitle,
			Author: row.BookAuthor,
			Genre:  row.BookGenre,
		},
		Status:      row.Status,
		ReservedAt:  row.ReservedAt,
		ExpiresAt:   row.ExpiresAt,
		CollectedAt: row.CollectedAt,
	}
}
