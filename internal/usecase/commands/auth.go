package commands

import (
	"context"
	"log/slog"

	"libris/internal/domain/user"
	"libris/internal/infra"
	"libris/internal/infra/sqlq"
	"libris/internal/pkg/errs"
	"libris/internal/pkg/jwt"
	"libris/internal/pkg/password"
	"libris/internal/usecase/queries"
	"libris/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrAccountDisabled    = errs.New("account is disabled")
	ErrEmailTaken         = errs.New("email is already registered")
)

// CredentialStore resolves a login email to the stored credentials.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.UserView, string, bool, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	User  *queries.UserView
	Token string
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, creds user.Credentials) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow   shared.UnitOfWork
	store CredentialStore
	jwt   *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, store CredentialStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:   uow,
		store: store,
		jwt:   jwtService,
	}
}

func (c *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	name, err := user.NewName(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	pass, err := user.NewPassword(input.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewUser(name, email, hash, user.RoleMember)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().Create(ctx, sqlq.CreateUserParams{
			ID:           newUser.ID(),
			Name:         newUser.Name().Value(),
			Email:        newUser.Email().Value(),
			PasswordHash: newUser.PasswordHash(),
			Role:         newUser.Role().String(),
		})
		if err != nil {
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

	token, err := c.jwt.GenerateToken(newUser.ID(), newUser.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	slog.InfoContext(ctx, "user registered", "user_id", newUser.ID())

	return &AuthResult{
		User: &queries.UserView{
			ID:    newUser.ID(),
			Name:  newUser.Name().Value(),
			Email: newUser.Email().Value(),
			Role:  newUser.Role().String(),
		},
		Token: token,
	}, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, creds user.Credentials) (*AuthResult, error) {
	view, hash, isActive, err := c.store.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !isActive {
		return nil, ErrAccountDisabled
	}

	if err := password.ComparePassword(hash, creds.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, err
	}
	token, err := c.jwt.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	if err := c.recordLogin(ctx, view.ID); err != nil {
		// Login succeeds even when the timestamp write fails.
		slog.WarnContext(ctx, "failed to record last login", "user_id", view.ID, "error", err)
	}

	return &AuthResult{User: view, Token: token}, nil
}

func (c *authCommandsImpl) recordLogin(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, id)
	})
}
