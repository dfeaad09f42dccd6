package shared

import (
	"context"
	"time"

	"libris/internal/domain/book"
	"libris/internal/domain/reservation"
	"libris/internal/infra/sqlq"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-committed transaction with retry on serialization
	// failures, for write operations.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlq.DBTX) error) error
}

// Tx exposes the write-side repositories bound to one transaction.
type Tx interface {
	Reservations() ReservationRepository
	Books() BookRepository
	Users() UserRepository
	DB() sqlq.DBTX
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	// FindForUpdate locks the reservation row for the transaction duration.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	// MarkCancelled / MarkCollected apply conditionally; false means the
	// row was no longer in a state the transition applies to.
	MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error)
	MarkCollected(ctx context.Context, id uuid.UUID, collectedAt time.Time) (bool, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type BookRepository interface {
	// LedgerForUpdate takes the per-book exclusive lock guarding the
	// check-then-decrement sequence.
	LedgerForUpdate(ctx context.Context, id uuid.UUID) (*book.Ledger, error)
	DecrementAvailability(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementAvailability(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserRepository interface {
	// Lock serializes same-user write operations for the tx duration.
	Lock(ctx context.Context, id uuid.UUID) error
	Create(ctx context.Context, arg sqlq.CreateUserParams) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	UpdateProfile(ctx context.Context, arg sqlq.UpdateUserProfileParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}
