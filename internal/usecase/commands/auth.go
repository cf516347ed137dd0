package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/infra"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/pkg/password"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clock,
	}
}

// Login checks the password before account standing so a blocked account
// is only revealed to someone who knows its password.
func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	var signedIn *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByEmail(ctx, credentials.Email())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return user.ErrInvalidCredentials
			}
			return err
		}
		if err := password.Compare(u.PasswordHash(), credentials.Password().Value()); err != nil {
			return user.ErrInvalidCredentials
		}
		if err := u.EnsureCanSignIn(); err != nil {
			return err
		}

		now := a.clock.Now()
		u.RecordLogin(now)
		if err := tx.Users().UpdateLastLogin(ctx, u.ID(), now); err != nil {
			return err
		}
		signedIn = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.tokens.GenerateToken(signedIn.ID(), signedIn.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("User signed in", "user_id", signedIn.ID().String(), "role", signedIn.Role().String())
	return &LoginResult{
		UserID:      signedIn.ID(),
		Role:        signedIn.Role(),
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}
