package request

import (
	"time"

	"furnicraft/internal/domain/coupon"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ListCouponsQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	Status    string `form:"status"`
	Type      string `form:"type"`
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

func (q *ListCouponsQuery) ToFilter() (queries.CouponFilter, error) {
	status, err := queries.ParseCouponStatusFilter(q.Status)
	if err != nil {
		return queries.CouponFilter{}, err
	}
	f := queries.CouponFilter{
		Status:    status,
		Search:    q.Search,
		SortBy:    queries.ParseCouponSort(q.SortBy),
		SortOrder: queries.ParseSortOrder(q.SortOrder),
		Page:      queries.NewPageRequest(q.Page, q.Limit),
	}
	if q.Type != "" && q.Type != "all" {
		t, err := coupon.ParseType(q.Type)
		if err != nil {
			return queries.CouponFilter{}, err
		}
		f.Type = &t
	}
	return f, nil
}

// CreateCouponRequest leaves required-field checks to the use case so the
// client gets a single message naming every required field.
type CreateCouponRequest struct {
	Code             string           `json:"code"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Type             string           `json:"type"`
	Value            *decimal.Decimal `json:"value"`
	MinimumAmount    *decimal.Decimal `json:"minimumAmount"`
	MaximumDiscount  *decimal.Decimal `json:"maximumDiscount"`
	UsageLimit       *int32           `json:"usageLimit"`
	IsActive         *bool            `json:"isActive"`
	ValidFrom        *time.Time       `json:"validFrom"`
	ValidUntil       *time.Time       `json:"validUntil"`
	ApplicableTo     string           `json:"applicableTo"`
	Categories       []string         `json:"categories"`
	Products         []uuid.UUID      `json:"products"`
	UserRestrictions string           `json:"userRestrictions"`
	SpecificUsers    []uuid.UUID      `json:"specificUsers"`
}

func (r *CreateCouponRequest) ToInput() (commands.CreateCouponInput, error) {
	var in commands.CreateCouponInput
	err := copier.Copy(&in, r)
	return in, err
}

type UpdateCouponRequest struct {
	Code             *string          `json:"code"`
	Name             *string          `json:"name"`
	Description      *string          `json:"description"`
	Type             *string          `json:"type"`
	Value            *decimal.Decimal `json:"value"`
	MinimumAmount    *decimal.Decimal `json:"minimumAmount"`
	MaximumDiscount  *decimal.Decimal `json:"maximumDiscount"`
	UsageLimit       *int32           `json:"usageLimit"`
	IsActive         *bool            `json:"isActive"`
	ValidFrom        *time.Time       `json:"validFrom"`
	ValidUntil       *time.Time       `json:"validUntil"`
	ApplicableTo     *string          `json:"applicableTo"`
	Categories       []string         `json:"categories"`
	Products         []uuid.UUID      `json:"products"`
	UserRestrictions *string          `json:"userRestrictions"`
	SpecificUsers    []uuid.UUID      `json:"specificUsers"`
}

// ToInput copies only the fields the client sent; absent fields stay nil.
func (r *UpdateCouponRequest) ToInput() (commands.UpdateCouponInput, error) {
	var in commands.UpdateCouponInput
	err := copier.CopyWithOption(&in, r, copier.Option{IgnoreEmpty: true})
	return in, err
}

type CartItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Category  string    `json:"category"`
}

type ValidateCouponRequest struct {
	Code        string            `json:"code"`
	UserID      *uuid.UUID        `json:"userId"`
	OrderAmount *decimal.Decimal  `json:"orderAmount"`
	Products    []CartItemRequest `json:"products" binding:"omitempty,dive"`
}

// ToInput falls back to caller when the body names no user; caller may be nil.
func (r *ValidateCouponRequest) ToInput(caller *uuid.UUID) queries.ValidateCouponInput {
	in := queries.ValidateCouponInput{
		Code:        r.Code,
		UserID:      r.UserID,
		OrderAmount: r.OrderAmount,
	}
	if in.UserID == nil {
		in.UserID = caller
	}
	if r.Products != nil {
		in.Items = make([]coupon.CartItem, len(r.Products))
		for i, it := range r.Products {
			in.Items[i] = coupon.CartItem{ProductID: it.ProductID, Category: it.Category}
		}
	}
	return in
}
