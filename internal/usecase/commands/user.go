package commands

import (
	"context"
	"log/slog"

	"libris/internal/domain/user"
	"libris/internal/infra"
	"libris/internal/infra/sqlq"
	"libris/internal/pkg/errs"
	"libris/internal/pkg/password"
	"libris/internal/usecase/queries"
	"libris/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrWrongCurrentPassword = errs.New("current password does not match")
	ErrActiveReservation    = errs.New("account has an active reservation")
)

// ProfileStore provides the read-side lookups profile commands need.
type ProfileStore interface {
	CredentialsByID(ctx context.Context, id uuid.UUID) (string, error)
}

type UpdateProfileInput struct {
	Name            *string
	Email           *string
	NewPassword     *string
	CurrentPassword string
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*queries.UserView, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, currentPassword string) error
}

type userCommandsImpl struct {
	uow     shared.UnitOfWork
	store   ProfileStore
	queries queries.UserQueries
}

func NewUserCommands(uow shared.UnitOfWork, store ProfileStore, userQueries queries.UserQueries) UserCommands {
	return &userCommandsImpl{
		uow:     uow,
		store:   store,
		queries: userQueries,
	}
}

// UpdateProfile requires the current password whenever email or password
// changes; a bare name change does not re-authenticate.
func (c *userCommandsImpl) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*queries.UserView, error) {
	params := sqlq.UpdateUserProfileParams{ID: id}

	if input.Name != nil {
		name, err := user.NewName(*input.Name)
		if err != nil {
			return nil, err
		}
		v := name.Value()
		params.Name = &v
	}

	sensitive := input.Email != nil || input.NewPassword != nil
	if sensitive {
		if err := c.verifyCurrentPassword(ctx, id, input.CurrentPassword); err != nil {
			return nil, err
		}
	}

	if input.Email != nil {
		email, err := user.NewEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		v := email.Value()
		params.Email = &v
	}

	if input.NewPassword != nil {
		pass, err := user.NewPassword(*input.NewPassword)
		if err != nil {
			return nil, err
		}
		hash, err := password.HashPassword(pass.Value())
		if err != nil {
			return nil, errs.Wrap(err, "failed to hash password")
		}
		params.PasswordHash = &hash
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Lock(ctx, id); err != nil {
			return err
		}
		if err := tx.Users().UpdateProfile(ctx, params); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.queries.GetCurrentUser(ctx, id)
}

// DeleteAccount removes the user after re-authentication. An active
// reservation blocks deletion so stock is never stranded.
func (c *userCommandsImpl) DeleteAccount(ctx context.Context, id uuid.UUID, currentPassword string) error {
	if err := c.verifyCurrentPassword(ctx, id, currentPassword); err != nil {
		return err
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Lock(ctx, id); err != nil {
			return err
		}
		active, err := tx.Reservations().CountActiveByUser(ctx, id)
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrActiveReservation
		}
		if err := tx.Users().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "account deleted", "user_id", id)
	return nil
}

func (c *userCommandsImpl) verifyCurrentPassword(ctx context.Context, id uuid.UUID, current string) error {
	hash, err := c.store.CredentialsByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := password.ComparePassword(hash, current); err != nil {
		return ErrWrongCurrentPassword
	}
	return nil
}
