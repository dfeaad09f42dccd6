package repository

import (
	"context"
	"errors"

	"libris/internal/domain/book"
	"libris/internal/infra"
	"libris/internal/infra/sqlq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookQueries interface {
	GetBookLedgerForUpdate(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.BookLedgerRow, error)
	DecrementBookAvailability(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (int64, error)
	IncrementBookAvailability(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (int64, error)
}

type BookRepository struct {
	queries BookQueries
	db      sqlq.DBTX
}

func NewBookRepository(queries BookQueries, db sqlq.DBTX) *BookRepository {
	return &BookRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookRepository) LedgerForUpdate(ctx context.Context, id uuid.UUID) (*book.Ledger, error) {
	row, err := r.queries.GetBookLedgerForUpdate(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock book ledger", err)
	}

	ledger, err := book.ReconstructLedger(row.StockQuantity, row.AvailableQuantity)
	if err != nil {
		// The schema CHECK should make this unreachable.
		return nil, infra.WrapRepoErr("corrupt book ledger", err)
	}
	return ledger, nil
}

func (r *BookRepository) DecrementAvailability(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := r.queries.DecrementBookAvailability(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement availability", err)
	}
	return affected > 0, nil
}

func (r *BookRepository) IncrementAvailability(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := r.queries.IncrementBookAvailability(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment availability", err)
	}
	return affected > 0, nil
}
