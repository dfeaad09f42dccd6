package repository

import (
	"context"
	"errors"

	"libris/internal/infra"
	"libris/internal/infra/sqlq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlq.DBTX, arg sqlq.CreateUserParams) (uuid.UUID, error)
	LockUserRow(ctx context.Context, db sqlq.DBTX, id uuid.UUID) error
	UpdateUserLastLogin(ctx context.Context, db sqlq.DBTX, id uuid.UUID) error
	UpdateUserProfile(ctx context.Context, db sqlq.DBTX, arg sqlq.UpdateUserProfileParams) error
	DeleteUser(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository struct {
	queries UserQueries
	db      sqlq.DBTX
}

func NewUserRepository(queries UserQueries, db sqlq.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, arg sqlq.CreateUserParams) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, r.db, arg)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) Lock(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.LockUserRow(ctx, r.db, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock user row", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, arg sqlq.UpdateUserProfileParams) error {
	if err := r.queries.UpdateUserProfile(ctx, r.db, arg); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update profile", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
