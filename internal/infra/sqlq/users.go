package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserRow struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserParams struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

const userColumns = `id, name, email, password_hash, role, is_active, last_login_at, created_at, updated_at`

func scanUserRow(row interface{ Scan(dest ...any) error }) (UserRow, error) {
	var u UserRow
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		arg.ID, arg.Name, arg.Email, arg.PasswordHash, arg.Role,
	).Scan(&id)
	return id, err
}

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (UserRow, error) {
	row := db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUserRow(row)
}

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (UserRow, error) {
	row := db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUserRow(row)
}

// LockUserRow serializes same-user operations. Reservation creation takes
// this lock before the per-user active check so two concurrent requests by
// one user cannot both pass the pre-check.
func (q *Queries) LockUserRow(ctx context.Context, db DBTX, id uuid.UUID) error {
	var locked uuid.UUID
	return db.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
}

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login_at = now(), updated_at = now() WHERE id = $1`,
		id,
	)
	return err
}

type UpdateUserProfileParams struct {
	ID           uuid.UUID
	Name         *string
	Email        *string
	PasswordHash *string
}

// UpdateUserProfile touches only the enumerated profile fields; COALESCE
// leaves unset ones unchanged.
func (q *Queries) UpdateUserProfile(ctx context.Context, db DBTX, arg UpdateUserProfileParams) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		    SET name = COALESCE($2, name),
		        email = COALESCE($3, email),
		        password_hash = COALESCE($4, password_hash),
		        updated_at = now()
		  WHERE id = $1`,
		arg.ID, arg.Name, arg.Email, arg.PasswordHash,
	)
	return err
}

func (q *Queries) DeleteUser(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type UserReservationStatsRow struct {
	ActiveCount    int64
	CollectedCount int64
}

func (q *Queries) GetUserReservationStats(ctx context.Context, db DBTX, userID uuid.UUID) (UserReservationStatsRow, error) {
	var s UserReservationStatsRow
	err := db.QueryRow(ctx,
		`SELECT count(*) FILTER (WHERE status = 'active'),
		        count(*) FILTER (WHERE status = 'collected')
		   FROM reservations WHERE user_id = $1`,
		userID,
	).Scan(&s.ActiveCount, &s.CollectedCount)
	return s, err
}
