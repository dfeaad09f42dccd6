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

type BookViewQueries interface {
	GetBookByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.BookRow, error)
	ListBooks(ctx context.Context, db sqlq.DBTX, p sqlq.ListBooksParams) ([]sqlq.BookRow, error)
	CountBooks(ctx context.Context, db sqlq.DBTX, p sqlq.ListBooksParams) (int64, error)
	SearchBooks(ctx context.Context, db sqlq.DBTX, query string, limit int32) ([]sqlq.BookRow, error)
	ListGenres(ctx context.Context, db sqlq.DBTX) ([]string, error)
	ListPublicationYears(ctx context.Context, db sqlq.DBTX) ([]int32, error)
	CountActiveReservationsForBook(ctx context.Context, db sqlq.DBTX, bookID uuid.UUID) (int64, error)
}

type BookReadStore struct {
	queries BookViewQueries
	db      sqlq.DBTX
}

func NewBookReadStore(queries BookViewQueries, db sqlq.DBTX) *BookReadStore {
	return &BookReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookReadStore) List(ctx context.Context, filter queries.BookFilter) ([]*queries.BookView, int64, error) {
	params := sqlq.ListBooksParams{
		Search:    filter.Search,
		Genre:     filter.Genre,
		Year:      filter.Year,
		ISBN:      filter.ISBN,
		SortBy:    filter.SortBy,
		Direction: filter.Direction,
		Limit:     int32(filter.PerPage),
		Offset:    int32((filter.Page - 1) * filter.PerPage),
	}

	rows, err := r.queries.ListBooks(ctx, r.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list books", err)
	}

	total, err := r.queries.CountBooks(ctx, r.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count books", err)
	}

	result := make([]*queries.BookView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookView(row)
	}
	return result, total, nil
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	row, err := r.queries.GetBookByID(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by ID", err)
	}
	return rowToBookView(row), nil
}

func (r *BookReadStore) CountActiveReservations(ctx context.Context, bookID uuid.UUID) (int64, error) {
	count, err := r.queries.CountActiveReservationsForBook(ctx, r.db, bookID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return count, nil
}

func (r *BookReadStore) Search(ctx context.Context, query string, limit int32) ([]*queries.BookView, error) {
	rows, err := r.queries.SearchBooks(ctx, r.db, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search books", err)
	}

	result := make([]*queries.BookView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookView(row)
	}
	return result, nil
}

func (r *BookReadStore) Genres(ctx context.Context) ([]string, error) {
	genres, err := r.queries.ListGenres(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list genres", err)
	}
	return genres, nil
}

func (r *BookReadStore) PublicationYears(ctx context.Context) ([]int32, error) {
	years, err := r.queries.ListPublicationYears(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list publication years", err)
	}
	return years, nil
}

func rowToBookView(row sqlq.BookRow) *queries.BookView {
	return &queries.BookView{
		ID:                row.ID,
		Title:             row.Title,
		Author:            row.Author,
		ISBN:              row.ISBN,
		Genre:             row.Genre,
		PublicationYear:   row.PublicationYear,
		Synopsis:          row.Synopsis,
		StockQuantity:     row.StockQuantity,
		AvailableQuantity: row.AvailableQuantity,
		IsAvailable:       row.AvailableQuantity > 0,
	}
}
