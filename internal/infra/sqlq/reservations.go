package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReservationRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	BookID      uuid.UUID
	Status      string
	ReservedAt  time.Time
	ExpiresAt   time.Time
	CollectedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReservationWithBookRow joins the embedded book summary the API returns.
type ReservationWithBookRow struct {
	ReservationRow
	BookTitle  string
	BookAuthor string
	BookGenre  string
}

const reservationColumns = `r.id, r.user_id, r.book_id, r.status, r.reserved_at,
       r.expires_at, r.collected_at, r.created_at, r.updated_at`

type CreateReservationParams struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BookID     uuid.UUID
	Status     string
	ReservedAt time.Time
	ExpiresAt  time.Time
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO reservations (id, user_id, book_id, status, reserved_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		arg.ID, arg.UserID, arg.BookID, arg.Status, arg.ReservedAt, arg.ExpiresAt,
	).Scan(&id)
	return id, err
}

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (ReservationRow, error) {
	var r ReservationRow
	err := db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations r WHERE r.id = $1 FOR UPDATE`,
		id,
	).Scan(
		&r.ID, &r.UserID, &r.BookID, &r.Status, &r.ReservedAt,
		&r.ExpiresAt, &r.CollectedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) CountActiveReservationsByUser(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.QueryRow(ctx,
		`SELECT count(*) FROM reservations WHERE user_id = $1 AND status = 'active'`,
		userID,
	).Scan(&count)
	return count, err
}

// MarkReservationCancelled flips active -> cancelled. The status predicate
// keeps the statement idempotent under concurrent transitions.
func (q *Queries) MarkReservationCancelled(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE reservations
		    SET status = 'cancelled', updated_at = now()
		  WHERE id = $1 AND status = 'active'`,
		id,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) MarkReservationCollected(ctx context.Context, db DBTX, id uuid.UUID, collectedAt time.Time) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE reservations
		    SET status = 'collected', collected_at = $2, updated_at = now()
		  WHERE id = $1 AND status = 'active' AND expires_at > $2`,
		id, collectedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ExpireOverdueReservations transitions every lapsed active reservation to
// expired and returns each held copy to its book's available pool, all in
// one statement. The LEAST cap keeps the ledger inside
// 0 <= available <= stock even if a copy was already released elsewhere.
func (q *Queries) ExpireOverdueReservations(ctx context.Context, db DBTX, now time.Time) (int64, error) {
	var count int64
	err := db.QueryRow(ctx,
		`WITH expired AS (
		    UPDATE reservations
		       SET status = 'expired', updated_at = now()
		     WHERE status = 'active' AND expires_at < $1
		 RETURNING book_id
		 ), released AS (
		    UPDATE books b
		       SET available_quantity = LEAST(b.available_quantity + e.cnt, b.stock_quantity),
		           updated_at = now()
		      FROM (SELECT book_id, count(*) AS cnt FROM expired GROUP BY book_id) e
		     WHERE b.id = e.book_id
		 )
		 SELECT count(*) FROM expired`,
		now,
	).Scan(&count)
	return count, err
}

func (q *Queries) GetReservationWithBook(ctx context.Context, db DBTX, id uuid.UUID) (ReservationWithBookRow, error) {
	var r ReservationWithBookRow
	err := db.QueryRow(ctx,
		`SELECT `+reservationColumns+`, b.title, b.author, b.genre
		   FROM reservations r
		   JOIN books b ON b.id = r.book_id
		  WHERE r.id = $1`,
		id,
	).Scan(
		&r.ID, &r.UserID, &r.BookID, &r.Status, &r.ReservedAt,
		&r.ExpiresAt, &r.CollectedAt, &r.CreatedAt, &r.UpdatedAt,
		&r.BookTitle, &r.BookAuthor, &r.BookGenre,
	)
	return r, err
}

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]ReservationWithBookRow, error) {
	rows, err := db.Query(ctx,
		`SELECT `+reservationColumns+`, b.title, b.author, b.genre
		   FROM reservations r
		   JOIN books b ON b.id = r.book_id
		  WHERE r.user_id = $1
		  ORDER BY r.reserved_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ReservationWithBookRow
	for rows.Next() {
		var r ReservationWithBookRow
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.BookID, &r.Status, &r.ReservedAt,
			&r.ExpiresAt, &r.CollectedAt, &r.CreatedAt, &r.UpdatedAt,
			&r.BookTitle, &r.BookAuthor, &r.BookGenre,
		); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
