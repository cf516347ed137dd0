package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/infra"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMissingUserAction = errs.Kinded(errs.ErrInvalidArgument, "User ID and action are required")

type UpdateProfileInput struct {
	Name        *string
	Email       *string
	Phone       *string
	Addresses   []user.Address
	Preferences user.Preferences
}

type UserCommands interface {
	// UpdateStatus applies an admin action and returns its confirmation message.
	UpdateStatus(ctx context.Context, userID uuid.UUID, action string, actorID uuid.UUID) (string, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clock clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clock}
}

func (c *userCommandsImpl) UpdateStatus(ctx context.Context, userID uuid.UUID, action string, actorID uuid.UUID) (string, error) {
	if userID == uuid.Nil || action == "" {
		return "", ErrMissingUserAction
	}
	act, err := user.ParseAction(action)
	if err != nil {
		return "", err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := c.load(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := u.ApplyAction(act, actorID, c.clock.Now()); err != nil {
			return err
		}
		return c.save(ctx, tx, u)
	})
	if err != nil {
		return "", err
	}

	slog.Info("User status changed", "user_id", userID.String(), "action", string(act), "actor_id", actorID.String())
	return act.Message(), nil
}

func (c *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error {
	ch := user.ProfileChange{
		Name:        in.Name,
		Phone:       in.Phone,
		Addresses:   in.Addresses,
		Preferences: in.Preferences,
	}
	if in.Email != nil {
		email, err := user.NewEmail(*in.Email)
		if err != nil {
			return err
		}
		ch.Email = &email
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := c.load(ctx, tx, userID)
		if err != nil {
			return err
		}
		if u.EmailChanged(ch) {
			taken, err := tx.Users().EmailTaken(ctx, *ch.Email, userID)
			if err != nil {
				return err
			}
			if taken {
				return user.ErrEmailTaken
			}
		}
		if err := u.UpdateProfile(ch, c.clock.Now()); err != nil {
			return err
		}
		return c.save(ctx, tx, u)
	})
}

func (c *userCommandsImpl) load(ctx context.Context, tx shared.Tx, id uuid.UUID) (*user.User, error) {
	u, err := tx.Users().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (c *userCommandsImpl) save(ctx context.Context, tx shared.Tx, u *user.User) error {
	if err := tx.Users().Update(ctx, u); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return user.ErrEmailTaken
		case infra.IsKind(err, infra.KindNotFound):
			return user.ErrNotFound
		}
		return err
	}
	return nil
}
