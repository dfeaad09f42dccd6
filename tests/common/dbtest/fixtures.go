//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestBook inserts a book with the given ledger and returns its ID.
// ISBNs must be unique, so each caller passes its own.
func CreateTestBook(t *testing.T, db DBLike, isbn string, stock, available int32) uuid.UUID {
	t.Helper()

	bookID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO books (id, title, author, isbn, genre, publication_year, stock_quantity, available_quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (isbn) DO NOTHING`,
		bookID, "Book "+isbn, "Test Author", isbn, "Fiction", 2020, stock, available)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM books WHERE isbn = $1", isbn).Scan(&bookID)
	}

	return bookID
}

// SetReservationExpiry rewinds a reservation's window so expiry paths can be
// exercised without waiting out the hold period.
func SetReservationExpiry(t *testing.T, db DBLike, reservationID uuid.UUID, expiresAt time.Time) {
	t.Helper()

	ctx := context.Background()
	tag, err := db.Exec(ctx, "UPDATE reservations SET expires_at = $2 WHERE id = $1", reservationID, expiresAt)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

// PromoteUser raises an account's role. Tokens embed the role at issue time,
// so callers must log in again after promoting.
func PromoteUser(t *testing.T, db DBLike, userID string, role string) {
	t.Helper()

	ctx := context.Background()
	tag, err := db.Exec(ctx, "UPDATE users SET role = $2 WHERE id = $1", uuid.MustParse(userID), role)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO books (id, title, author, isbn, genre, publication_year, stock_quantity, available_quantity) VALUES
		    (gen_random_uuid(), 'Dune', 'Frank Herbert', '9780441013593', 'Science Fiction', 1965, 3, 3),
		    (gen_random_uuid(), 'The Hobbit', 'J. R. R. Tolkien', '9780547928227', 'Fantasy', 1937, 2, 2),
		    (gen_random_uuid(), 'The Go Programming Language', 'Alan Donovan', '9780134190440', 'Programming', 2015, 1, 1)
		ON CONFLICT (isbn) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
