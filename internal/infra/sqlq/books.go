package sqlq

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookRow struct {
	ID                uuid.UUID
	Title             string
	Author            string
	ISBN              string
	Genre             string
	PublicationYear   int32
	Synopsis          *string
	StockQuantity     int32
	AvailableQuantity int32
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// BookLedgerRow is the minimal projection taken under FOR UPDATE during
// reservation creation.
type BookLedgerRow struct {
	ID                uuid.UUID
	StockQuantity     int32
	AvailableQuantity int32
}

const bookColumns = `id, title, author, isbn, genre, publication_year, synopsis,
       stock_quantity, available_quantity, created_at, updated_at`

func scanBookRow(row interface{ Scan(dest ...any) error }) (BookRow, error) {
	var b BookRow
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Genre, &b.PublicationYear,
		&b.Synopsis, &b.StockQuantity, &b.AvailableQuantity, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (q *Queries) GetBookByID(ctx context.Context, db DBTX, id uuid.UUID) (BookRow, error) {
	row := db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
	return scanBookRow(row)
}

// GetBookLedgerForUpdate takes the row-level exclusive lock that serializes
// the check-then-decrement sequence against concurrent reservations.
func (q *Queries) GetBookLedgerForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (BookLedgerRow, error) {
	var b BookLedgerRow
	err := db.QueryRow(ctx,
		`SELECT id, stock_quantity, available_quantity FROM books WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&b.ID, &b.StockQuantity, &b.AvailableQuantity)
	return b, err
}

// DecrementBookAvailability takes one copy out of the available pool. The
// WHERE clause re-checks availability so the statement can never drive the
// ledger negative even outside the locked path.
func (q *Queries) DecrementBookAvailability(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE books
		    SET available_quantity = available_quantity - 1, updated_at = now()
		  WHERE id = $1 AND available_quantity > 0`,
		id,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// IncrementBookAvailability returns one copy to the available pool, capped
// at stock_quantity.
func (q *Queries) IncrementBookAvailability(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE books
		    SET available_quantity = available_quantity + 1, updated_at = now()
		  WHERE id = $1 AND available_quantity < stock_quantity`,
		id,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ListBooksParams struct {
	Search    *string
	Genre     *string
	Year      *int32
	ISBN      *string
	SortBy    string
	Direction string
	Limit     int32
	Offset    int32
}

var allowedBookSorts = map[string]string{
	"title":            "title",
	"author":           "author",
	"publication_year": "publication_year",
}

func buildBookFilter(p ListBooksParams) (string, []any) {
	var conds []string
	var args []any

	if p.Search != nil {
		args = append(args, "%"+*p.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d)", n, n))
	}
	if p.Genre != nil {
		args = append(args, *p.Genre)
		conds = append(conds, fmt.Sprintf("genre = $%d", len(args)))
	}
	if p.Year != nil {
		args = append(args, *p.Year)
		conds = append(conds, fmt.Sprintf("publication_year = $%d", len(args)))
	}
	if p.ISBN != nil {
		args = append(args, *p.ISBN)
		conds = append(conds, fmt.Sprintf("isbn = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (q *Queries) ListBooks(ctx context.Context, db DBTX, p ListBooksParams) ([]BookRow, error) {
	where, args := buildBookFilter(p)

	sortCol, ok := allowedBookSorts[p.SortBy]
	if !ok {
		sortCol = "title"
	}
	dir := "ASC"
	if p.Direction == "desc" {
		dir = "DESC"
	}

	args = append(args, p.Limit, p.Offset)
	sql := fmt.Sprintf(`SELECT %s FROM books%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		bookColumns, where, sortCol, dir, len(args)-1, len(args))

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []BookRow
	for rows.Next() {
		b, err := scanBookRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (q *Queries) CountBooks(ctx context.Context, db DBTX, p ListBooksParams) (int64, error) {
	where, args := buildBookFilter(p)

	var count int64
	err := db.QueryRow(ctx, `SELECT count(*) FROM books`+where, args...).Scan(&count)
	return count, err
}

func (q *Queries) SearchBooks(ctx context.Context, db DBTX, query string, limit int32) ([]BookRow, error) {
	rows, err := db.Query(ctx,
		`SELECT `+bookColumns+` FROM books
		  WHERE title ILIKE $1 OR author ILIKE $1
		  ORDER BY title LIMIT $2`,
		"%"+query+"%", limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []BookRow
	for rows.Next() {
		b, err := scanBookRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (q *Queries) ListGenres(ctx context.Context, db DBTX) ([]string, error) {
	rows, err := db.Query(ctx, `SELECT DISTINCT genre FROM books ORDER BY genre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (q *Queries) ListPublicationYears(ctx context.Context, db DBTX) ([]int32, error) {
	rows, err := db.Query(ctx, `SELECT DISTINCT publication_year FROM books ORDER BY publication_year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []int32
	for rows.Next() {
		var y int32
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (q *Queries) CountActiveReservationsForBook(ctx context.Context, db DBTX, bookID uuid.UUID) (int64, error) {
	var count int64
	err := db.QueryRow(ctx,
		`SELECT count(*) FROM reservations WHERE book_id = $1 AND status = 'active'`,
		bookID,
	).Scan(&count)
	return count, err
}
