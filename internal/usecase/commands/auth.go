package commands

import (
	"context"

	"wishkeeper/internal/domain/user"
	"wishkeeper/internal/infra"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/pkg/jwt"
	"wishkeeper/internal/pkg/password"
	"wishkeeper/internal/usecase/queries"
	"wishkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken = errs.New("email already registered")
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password; login must not reveal which one failed.
	ErrInvalidCredentials = errs.New("invalid email or password")
)

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type LoginOutput struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginOutput, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	userStore queries.UserReadStore
	jwtSvc    *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, userStore queries.UserReadStore, jwtSvc *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, userStore: userStore, jwtSvc: jwtSvc}
}

func (a *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (uuid.UUID, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return uuid.Nil, err
	}
	name, err := user.NewName(input.Name)
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return uuid.Nil, err
	}

	newUser := user.NewUser(email, name, hash)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, tx.DB(), newUser); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return newUser.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginOutput, error) {
	creds, err := user.NewCredentials(email, rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, hash, err := a.userStore.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(hash, creds.Password()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtSvc.GenerateToken(view.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Token: token, User: view}, nil
}
