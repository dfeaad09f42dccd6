package reservation

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// HoldPeriod is the fixed window a reserved copy is held for collection.
// expiresAt is pinned to reservedAt + HoldPeriod at creation and never
// changes afterwards.
const HoldPeriod = 7 * 24 * time.Hour

// Reservation is the engine-owned state machine:
// active -> {collected, expired, cancelled}, terminal states are final.
type Reservation struct {
	id          uuid.UUID
	userID      uuid.UUID
	bookID      uuid.UUID
	status      Status
	reservedAt  time.Time
	expiresAt   time.Time
	collectedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(userID, bookID uuid.UUID, now time.Time) *Reservation {
	return &Reservation{
		id:         uuid.New(),
		userID:     userID,
		bookID:     bookID,
		status:     StatusActive,
		reservedAt: now,
		expiresAt:  now.Add(HoldPeriod),
	}
}

func ReconstructReservation(
	id, userID, bookID uuid.UUID,
	status Status,
	reservedAt, expiresAt time.Time,
	collectedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		userID:      userID,
		bookID:      bookID,
		status:      status,
		reservedAt:  reservedAt,
		expiresAt:   expiresAt,
		collectedAt: collectedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsExpired(now time.Time) bool {
	return r.status == StatusExpired || now.After(r.expiresAt)
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// CanBeCollected: only an active reservation whose window has not lapsed.
func (r *Reservation) CanBeCollected(now time.Time) bool {
	return r.IsActive() && !r.IsExpired(now)
}

// Cancel transitions active -> cancelled. The released copy must be
// returned to the book ledger by the caller in the same transaction.
// Returns false when the transition is a no-op.
func (r *Reservation) Cancel() bool {
	if !r.IsActive() {
		return false
	}
	r.status = StatusCancelled
	return true
}

// Collect transitions active -> collected and stamps collectedAt. The held
// copy stays out of the available pool: availableQuantity tracks reservable
// copies, not physically present ones.
func (r *Reservation) Collect(now time.Time) bool {
	if !r.CanBeCollected(now) {
		return false
	}
	r.status = StatusCollected
	r.collectedAt = &now
	return true
}

// Expire transitions active -> expired. Used by the sweeper.
func (r *Reservation) Expire() bool {
	if !r.IsActive() {
		return false
	}
	r.status = StatusExpired
	return true
}

// DaysRemaining counts a started day as a full one, so a hold placed just
// now reads 7 and one lapsed an hour ago reads negative. Only meaningful
// while the reservation is active.
func (r *Reservation) DaysRemaining(now time.Time) int {
	return int(math.Ceil(r.expiresAt.Sub(now).Hours() / 24))
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) BookID() uuid.UUID       { return r.bookID }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) ReservedAt() time.Time   { return r.reservedAt }
func (r *Reservation) ExpiresAt() time.Time    { return r.expiresAt }
func (r *Reservation) CollectedAt() *time.Time { return r.collectedAt }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
