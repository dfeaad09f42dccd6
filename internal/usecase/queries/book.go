package queries

import (
	"context"

	"libris/internal/domain/book"
	"libris/internal/infra"
	"libris/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookNotFound = errs.New("book not found")

const (
	defaultPerPage = 15
	maxPerPage     = 50
)

type BookFilter struct {
	Search    *string
	Genre     *string
	Year      *int32
	ISBN      *string
	SortBy    string
	Direction string
	Page      int
	PerPage   int
}

type BookReadStore interface {
	List(ctx context.Context, filter BookFilter) ([]*BookView, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	CountActiveReservations(ctx context.Context, bookID uuid.UUID) (int64, error)
	Search(ctx context.Context, query string, limit int32) ([]*BookView, error)
	Genres(ctx context.Context) ([]string, error)
	PublicationYears(ctx context.Context) ([]int32, error)
}

type BookQueries interface {
	Catalog(ctx context.Context, filter BookFilter) (*BookCatalogPage, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*BookDetailView, error)
	Search(ctx context.Context, query string, limit int) ([]*BookView, error)
}

type bookQueriesImpl struct {
	store BookReadStore
}

func NewBookQueries(store BookReadStore) BookQueries {
	return &bookQueriesImpl{store: store}
}

func (q *bookQueriesImpl) Catalog(ctx context.Context, filter BookFilter) (*BookCatalogPage, error) {
	if filter.PerPage <= 0 {
		filter.PerPage = defaultPerPage
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.ISBN != nil {
		// Stored ISBNs are bare digits, so a hyphenated filter value is
		// normalized before matching. Malformed values pass through and
		// simply match nothing.
		if isbn, err := book.NewISBN(*filter.ISBN); err == nil {
			v := isbn.Value()
			filter.ISBN = &v
		}
	}

	items, total, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	genres, err := q.store.Genres(ctx)
	if err != nil {
		return nil, err
	}
	years, err := q.store.PublicationYears(ctx)
	if err != nil {
		return nil, err
	}

	lastPage := int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage))
	if lastPage == 0 {
		lastPage = 1
	}

	return &BookCatalogPage{
		Items: items,
		Meta: PageMeta{
			CurrentPage: filter.Page,
			PerPage:     filter.PerPage,
			LastPage:    lastPage,
			Total:       total,
		},
		Filters: BookCatalogFilters{
			Genres: genres,
			Years:  years,
		},
	}, nil
}

func (q *bookQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*BookDetailView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	activeCount, err := q.store.CountActiveReservations(ctx, id)
	if err != nil {
		return nil, err
	}

	return &BookDetailView{
		BookView:           *view,
		ActiveReservations: activeCount,
		CanReserve:         view.AvailableQuantity > 0,
	}, nil
}

func (q *bookQueriesImpl) Search(ctx context.Context, query string, limit int) ([]*BookView, error) {
	if limit <= 0 || limit > maxPerPage {
		limit = 10
	}
	return q.store.Search(ctx, query, int32(limit))
}
