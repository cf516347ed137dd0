package commands

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon_mock.go -package=commandsmock

import (
	"context"
	"strings"
	"time"

	"furnicraft/internal/domain/coupon"
	"furnicraft/internal/infra"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/queries"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrMissingCouponFields = errs.Kinded(errs.ErrInvalidArgument, "Code, name, type, value, validFrom, and validUntil are required")

type CreateCouponInput struct {
	Code             string
	Name             string
	Description      string
	Type             string
	Value            *decimal.Decimal
	MinimumAmount    *decimal.Decimal
	MaximumDiscount  *decimal.Decimal
	UsageLimit       *int32
	IsActive         *bool
	ValidFrom        *time.Time
	ValidUntil       *time.Time
	ApplicableTo     string
	Categories       []string
	Products         []uuid.UUID
	UserRestrictions string
	SpecificUsers    []uuid.UUID
}

// UpdateCouponInput is a partial update: nil fields and nil slices are left unchanged.
type UpdateCouponInput struct {
	Code             *string
	Name             *string
	Description      *string
	Type             *string
	Value            *decimal.Decimal
	MinimumAmount    *decimal.Decimal
	MaximumDiscount  *decimal.Decimal
	UsageLimit       *int32
	IsActive         *bool
	ValidFrom        *time.Time
	ValidUntil       *time.Time
	ApplicableTo     *string
	Categories       []string
	Products         []uuid.UUID
	UserRestrictions *string
	SpecificUsers    []uuid.UUID
}

type CouponCommands interface {
	Create(ctx context.Context, in CreateCouponInput, actorID uuid.UUID) (*queries.CouponView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateCouponInput) (*queries.CouponView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clock clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clock: clock}
}

func (c *couponCommandsImpl) Create(ctx context.Context, in CreateCouponInput, actorID uuid.UUID) (*queries.CouponView, error) {
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" || in.Type == "" ||
		in.Value == nil || in.ValidFrom == nil || in.ValidUntil == nil {
		return nil, ErrMissingCouponFields
	}

	d, err := in.toDetails()
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	created, err := coupon.New(d, &actorID, now)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Coupons().CodeExists(ctx, created.Code(), nil)
		if err != nil {
			return err
		}
		if taken {
			return coupon.ErrCodeTaken
		}
		if err := tx.Coupons().Create(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return coupon.ErrCodeTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewCouponView(created, now), nil
}

func (c *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateCouponInput) (*queries.CouponView, error) {
	rev, err := in.toRevision()
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	var updated *coupon.Coupon
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Coupons().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return coupon.ErrNotFound
			}
			return err
		}

		if rev.Code != nil && *rev.Code != current.Code() {
			taken, err := tx.Coupons().CodeExists(ctx, *rev.Code, &id)
			if err != nil {
				return err
			}
			if taken {
				return coupon.ErrCodeTaken
			}
		}

		if err := current.Revise(rev, now); err != nil {
			return err
		}
		if err := tx.Coupons().Update(ctx, current); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return coupon.ErrCodeTaken
			}
			if infra.IsKind(err, infra.KindNotFound) {
				return coupon.ErrNotFound
			}
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewCouponView(updated, now), nil
}

func (c *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Coupons().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return coupon.ErrNotFound
			}
			return err
		}
		if err := current.EnsureDeletable(); err != nil {
			return err
		}
		if err := tx.Coupons().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return coupon.ErrNotFound
			}
			return err
		}
		return nil
	})
}

func (in CreateCouponInput) toDetails() (coupon.Details, error) {
	code, err := coupon.NewCode(in.Code)
	if err != nil {
		return coupon.Details{}, err
	}
	typ, err := coupon.ParseType(in.Type)
	if err != nil {
		return coupon.Details{}, err
	}
	scope, err := coupon.ParseScope(in.ApplicableTo)
	if err != nil {
		return coupon.Details{}, err
	}
	audience, err := coupon.ParseAudience(in.UserRestrictions)
	if err != nil {
		return coupon.Details{}, err
	}

	d := coupon.Details{
		Code:             code,
		Name:             in.Name,
		Description:      in.Description,
		Type:             typ,
		Value:            *in.Value,
		MinimumAmount:    decimal.Zero,
		MaximumDiscount:  in.MaximumDiscount,
		UsageLimit:       in.UsageLimit,
		IsActive:         true,
		ValidFrom:        *in.ValidFrom,
		ValidUntil:       *in.ValidUntil,
		ApplicableTo:     scope,
		Categories:       in.Categories,
		Products:         in.Products,
		UserRestrictions: audience,
		SpecificUsers:    in.SpecificUsers,
	}
	if in.MinimumAmount != nil {
		d.MinimumAmount = *in.MinimumAmount
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	return d, nil
}

func (in UpdateCouponInput) toRevision() (coupon.Revision, error) {
	rev := coupon.Revision{
		Name:            in.Name,
		Description:     in.Description,
		Value:           in.Value,
		MinimumAmount:   in.MinimumAmount,
		MaximumDiscount: in.MaximumDiscount,
		UsageLimit:      in.UsageLimit,
		IsActive:        in.IsActive,
		ValidFrom:       in.ValidFrom,
		ValidUntil:      in.ValidUntil,
		Categories:      in.Categories,
		Products:        in.Products,
		SpecificUsers:   in.SpecificUsers,
	}
	if in.Code != nil {
		code, err := coupon.NewCode(*in.Code)
		if err != nil {
			return rev, err
		}
		rev.Code = &code
	}
	if in.Type != nil {
		typ, err := coupon.ParseType(*in.Type)
		if err != nil {
			return rev, err
		}
		rev.Type = &typ
	}
	if in.ApplicableTo != nil {
		scope, err := coupon.ParseScope(*in.ApplicableTo)
		if err != nil {
			return rev, err
		}
		rev.ApplicableTo = &scope
	}
	if in.UserRestrictions != nil {
		audience, err := coupon.ParseAudience(*in.UserRestrictions)
		if err != nil {
			return rev, err
		}
		rev.UserRestrictions = &audience
	}
	return rev, nil
}
