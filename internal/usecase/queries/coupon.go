package queries

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/queries/coupon_mock.go -package=queriesmock

import (
	"context"
	"strings"
	"time"

	"furnicraft/internal/domain/coupon"
	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponStatusFilter string

const (
	CouponStatusAll      CouponStatusFilter = "all"
	CouponStatusActive   CouponStatusFilter = "active"
	CouponStatusExpired  CouponStatusFilter = "expired"
	CouponStatusInactive CouponStatusFilter = "inactive"
	CouponStatusUpcoming CouponStatusFilter = "upcoming"
)

var (
	ErrInvalidCouponStatus = errs.Kinded(errs.ErrInvalidArgument, "Status must be all, active, expired, inactive or upcoming")
	ErrCouponCodeRequired  = errs.Kinded(errs.ErrInvalidArgument, "Coupon code is required")
)

func ParseCouponStatusFilter(raw string) (CouponStatusFilter, error) {
	switch s := CouponStatusFilter(strings.ToLower(strings.TrimSpace(raw))); s {
	case "":
		return CouponStatusAll, nil
	case CouponStatusAll, CouponStatusActive, CouponStatusExpired, CouponStatusInactive, CouponStatusUpcoming:
		return s, nil
	default:
		return "", ErrInvalidCouponStatus
	}
}

var CouponSortFields = []string{"createdAt", "code", "name", "value", "validFrom", "validUntil", "usedCount"}

func ParseCouponSort(raw string) string {
	return pickSort(raw, CouponSortFields, "createdAt")
}

type CouponFilter struct {
	Status    CouponStatusFilter
	Type      *coupon.Type
	Search    string
	SortBy    string
	SortOrder SortOrder
	Page      PageRequest
}

type CouponView struct {
	ID                uuid.UUID        `json:"id"`
	Code              string           `json:"code"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Type              coupon.Type      `json:"type"`
	Value             decimal.Decimal  `json:"value"`
	MinimumAmount     decimal.Decimal  `json:"minimumAmount"`
	MaximumDiscount   *decimal.Decimal `json:"maximumDiscount"`
	UsageLimit        *int32           `json:"usageLimit"`
	UsedCount         int32            `json:"usedCount"`
	IsActive          bool             `json:"isActive"`
	ValidFrom         time.Time        `json:"validFrom"`
	ValidUntil        time.Time        `json:"validUntil"`
	ApplicableTo      coupon.Scope     `json:"applicableTo"`
	Categories        []string         `json:"categories"`
	Products          []uuid.UUID      `json:"products"`
	UserRestrictions  coupon.Audience  `json:"userRestrictions"`
	SpecificUsers     []uuid.UUID      `json:"specificUsers"`
	CreatedBy         *uuid.UUID       `json:"createdBy"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	IsExpired         bool             `json:"isExpired"`
	IsUpcoming        bool             `json:"isUpcoming"`
	IsCurrentlyActive bool             `json:"isCurrentlyActive"`
	UsagePercentage   int              `json:"usagePercentage"`
	RemainingUses     *int32           `json:"remainingUses"`
}

// NewCouponView flattens a coupon and evaluates its time-dependent flags at now.
func NewCouponView(c *coupon.Coupon, now time.Time) *CouponView {
	d := c.Details()
	return &CouponView{
		ID:                c.ID(),
		Code:              d.Code.String(),
		Name:              d.Name,
		Description:       d.Description,
		Type:              d.Type,
		Value:             d.Value,
		MinimumAmount:     d.MinimumAmount,
		MaximumDiscount:   d.MaximumDiscount,
		UsageLimit:        d.UsageLimit,
		UsedCount:         c.UsedCount(),
		IsActive:          d.IsActive,
		ValidFrom:         d.ValidFrom,
		ValidUntil:        d.ValidUntil,
		ApplicableTo:      d.ApplicableTo,
		Categories:        d.Categories,
		Products:          d.Products,
		UserRestrictions:  d.UserRestrictions,
		SpecificUsers:     d.SpecificUsers,
		CreatedBy:         c.CreatedBy(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
		IsExpired:         c.IsExpired(now),
		IsUpcoming:        c.IsUpcoming(now),
		IsCurrentlyActive: c.IsLive(now),
		UsagePercentage:   c.UsagePercentage(),
		RemainingUses:     c.RemainingUses(),
	}
}

type CouponPage struct {
	Coupons    []*CouponView
	Pagination Pagination
}

type ValidateCouponInput struct {
	Code        string
	UserID      *uuid.UUID
	OrderAmount *decimal.Decimal
	// Items is nil when the caller sent no cart; an empty slice is an empty cart.
	Items []coupon.CartItem
}

type CouponValidation struct {
	ID             uuid.UUID       `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Type           coupon.Type     `json:"type"`
	Value          decimal.Decimal `json:"value"`
	Description    string          `json:"description"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

type CouponReadStore interface {
	List(ctx context.Context, db db.DBTX, f CouponFilter, now time.Time) ([]*coupon.Coupon, int64, error)
	FindActiveByCode(ctx context.Context, db db.DBTX, code string) (*coupon.Coupon, error)
	// CustomerStanding reports Found=false rather than an error for unknown users.
	CustomerStanding(ctx context.Context, db db.DBTX, userID uuid.UUID) (*coupon.Customer, error)
}

type ValidationRecorder interface {
	RecordCouponValidation(outcome string)
}

type CouponQueries interface {
	List(ctx context.Context, f CouponFilter) (*CouponPage, error)
	Validate(ctx context.Context, in ValidateCouponInput) (*CouponValidation, error)
}

type couponQueriesImpl struct {
	uow      shared.UnitOfWork
	store    CouponReadStore
	clock    clock.Clock
	recorder ValidationRecorder
}

func NewCouponQueries(uow shared.UnitOfWork, store CouponReadStore, clock clock.Clock, recorder ValidationRecorder) CouponQueries {
	return &couponQueriesImpl{
		uow:      uow,
		store:    store,
		clock:    clock,
		recorder: recorder,
	}
}

func (q *couponQueriesImpl) List(ctx context.Context, f CouponFilter) (*CouponPage, error) {
	now := q.clock.Now()
	var (
		rows  []*coupon.Coupon
		total int64
	)
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		rows, total, err = q.store.List(ctx, db, f, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	views := make([]*CouponView, 0, len(rows))
	for _, c := range rows {
		views = append(views, NewCouponView(c, now))
	}
	return &CouponPage{Coupons: views, Pagination: NewPagination(f.Page, total)}, nil
}

func (q *couponQueriesImpl) Validate(ctx context.Context, in ValidateCouponInput) (*CouponValidation, error) {
	res, err := q.validate(ctx, in)
	outcome := "valid"
	if err != nil {
		outcome = errs.KindName(err)
	}
	q.recorder.RecordCouponValidation(outcome)
	return res, err
}

func (q *couponQueriesImpl) validate(ctx context.Context, in ValidateCouponInput) (*CouponValidation, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" {
		return nil, ErrCouponCodeRequired
	}
	now := q.clock.Now()

	var res *CouponValidation
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		c, err := q.store.FindActiveByCode(ctx, db, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return coupon.ErrUnknownCode
			}
			return err
		}

		r := coupon.Redemption{OrderAmount: in.OrderAmount, Items: in.Items}
		if in.UserID != nil && c.Details().UserRestrictions != coupon.AudienceAll {
			r.Customer, err = q.store.CustomerStanding(ctx, db, *in.UserID)
			if err != nil {
				return err
			}
		}

		discount, err := c.Evaluate(now, r)
		if err != nil {
			return err
		}
		res = &CouponValidation{
			ID:             c.ID(),
			Code:           c.Code().String(),
			Name:           c.Name(),
			Type:           c.Type(),
			Value:          c.Value(),
			Description:    c.Description(),
			DiscountAmount: discount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
