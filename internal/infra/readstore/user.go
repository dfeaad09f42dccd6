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

type UserViewQueries interface {
	GetUserByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.UserRow, error)
	GetUserByEmail(ctx context.Context, db sqlq.DBTX, email string) (sqlq.UserRow, error)
	GetUserReservationStats(ctx context.Context, db sqlq.DBTX, userID uuid.UUID) (sqlq.UserReservationStatsRow, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      sqlq.DBTX
}

func NewUserReadStore(queries UserViewQueries, db sqlq.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return rowToUserView(row), nil
}

// FindByEmail also returns the password hash for credential verification.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, bool, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", false, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", false, infra.WrapRepoErr("failed to find user by email", err)
	}
	return rowToUserView(row), row.PasswordHash, row.IsActive, nil
}

// CredentialsByID returns the stored password hash for re-authentication
// checks on sensitive profile operations.
func (r *UserReadStore) CredentialsByID(ctx context.Context, id uuid.UUID) (string, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to load user credentials", err)
	}
	return row.PasswordHash, nil
}

func (r *UserReadStore) ReservationStats(ctx context.Context, userID uuid.UUID) (*queries.ProfileStats, error) {
	row, err := r.queries.GetUserReservationStats(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation stats", err)
	}
	return &queries.ProfileStats{
		ActiveReservations: row.ActiveCount,
		TotalBorrowed:      row.CollectedCount,
		AccountStatus:      "active",
	}, nil
}

func rowToUserView(row sqlq.UserRow) *queries.UserView {
	return &queries.UserView{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Role:  row.Role,
	}
}
