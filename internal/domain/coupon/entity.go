package coupon

import (
	"slices"
	"strings"
	"time"

	"furnicraft/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUsageLimitBelowUsed = errs.Kinded(errs.ErrInvalidArgument, "Usage limit cannot be lower than the number of redemptions")

// Details holds every admin-editable attribute of a coupon.
type Details struct {
	Code             Code
	Name             string
	Description      string
	Type             Type
	Value            decimal.Decimal
	MinimumAmount    decimal.Decimal
	MaximumDiscount  *decimal.Decimal
	UsageLimit       *int32
	IsActive         bool
	ValidFrom        time.Time
	ValidUntil       time.Time
	ApplicableTo     Scope
	Categories       []string
	Products         []uuid.UUID
	UserRestrictions Audience
	SpecificUsers    []uuid.UUID
}

type Coupon struct {
	id        uuid.UUID
	details   Details
	usedCount int32
	createdBy *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func New(d Details, createdBy *uuid.UUID, now time.Time) (*Coupon, error) {
	d = normalize(d)
	if err := validateDetails(d); err != nil {
		return nil, err
	}
	return &Coupon{
		id:        uuid.New(),
		details:   d,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a persisted coupon without re-validating it.
func Reconstruct(id uuid.UUID, d Details, usedCount int32, createdBy *uuid.UUID, createdAt, updatedAt time.Time) *Coupon {
	return &Coupon{
		id:        id,
		details:   d,
		usedCount: usedCount,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Revision is a partial update; nil fields keep the stored value.
// A zero MaximumDiscount or UsageLimit removes the cap.
type Revision struct {
	Code             *Code
	Name             *string
	Description      *string
	Type             *Type
	Value            *decimal.Decimal
	MinimumAmount    *decimal.Decimal
	MaximumDiscount  *decimal.Decimal
	UsageLimit       *int32
	IsActive         *bool
	ValidFrom        *time.Time
	ValidUntil       *time.Time
	ApplicableTo     *Scope
	Categories       []string
	Products         []uuid.UUID
	UserRestrictions *Audience
	SpecificUsers    []uuid.UUID
}

func (c *Coupon) Revise(r Revision, now time.Time) error {
	d := c.details
	if r.Code != nil {
		d.Code = *r.Code
	}
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.Description != nil {
		d.Description = *r.Description
	}
	if r.Type != nil {
		d.Type = *r.Type
	}
	if r.Value != nil {
		d.Value = *r.Value
	}
	if r.MinimumAmount != nil {
		d.MinimumAmount = *r.MinimumAmount
	}
	if r.MaximumDiscount != nil {
		d.MaximumDiscount = r.MaximumDiscount
		if r.MaximumDiscount.IsZero() {
			d.MaximumDiscount = nil
		}
	}
	if r.UsageLimit != nil {
		d.UsageLimit = r.UsageLimit
		if *r.UsageLimit == 0 {
			d.UsageLimit = nil
		}
	}
	if r.IsActive != nil {
		d.IsActive = *r.IsActive
	}
	if r.ValidFrom != nil {
		d.ValidFrom = *r.ValidFrom
	}
	if r.ValidUntil != nil {
		d.ValidUntil = *r.ValidUntil
	}
	if r.ApplicableTo != nil {
		d.ApplicableTo = *r.ApplicableTo
	}
	if r.Categories != nil {
		d.Categories = r.Categories
	}
	if r.Products != nil {
		d.Products = r.Products
	}
	if r.UserRestrictions != nil {
		d.UserRestrictions = *r.UserRestrictions
	}
	if r.SpecificUsers != nil {
		d.SpecificUsers = r.SpecificUsers
	}

	d = normalize(d)
	if err := validateDetails(d); err != nil {
		return err
	}
	if d.UsageLimit != nil && *d.UsageLimit < c.usedCount {
		return ErrUsageLimitBelowUsed
	}

	c.details = d
	c.updatedAt = now
	return nil
}

func (c *Coupon) EnsureDeletable() error {
	if c.usedCount > 0 {
		return ErrAlreadyUsed
	}
	return nil
}

func (c *Coupon) IsExpired(now time.Time) bool {
	return now.After(c.details.ValidUntil)
}

func (c *Coupon) IsUpcoming(now time.Time) bool {
	return now.Before(c.details.ValidFrom)
}

// IsLive reports whether the coupon is switched on and inside its validity window.
func (c *Coupon) IsLive(now time.Time) bool {
	return c.details.IsActive && !c.IsExpired(now) && !c.IsUpcoming(now)
}

func (c *Coupon) UsagePercentage() int {
	if c.details.UsageLimit == nil || *c.details.UsageLimit <= 0 {
		return 0
	}
	return int(decimal.NewFromInt32(c.usedCount).
		Div(decimal.NewFromInt32(*c.details.UsageLimit)).
		Mul(hundred).
		Round(0).
		IntPart())
}

func (c *Coupon) RemainingUses() *int32 {
	if c.details.UsageLimit == nil {
		return nil
	}
	remaining := max(*c.details.UsageLimit-c.usedCount, 0)
	return &remaining
}

func (c *Coupon) ID() uuid.UUID          { return c.id }
func (c *Coupon) Code() Code             { return c.details.Code }
func (c *Coupon) Name() string           { return c.details.Name }
func (c *Coupon) Description() string    { return c.details.Description }
func (c *Coupon) Type() Type             { return c.details.Type }
func (c *Coupon) Value() decimal.Decimal { return c.details.Value }
func (c *Coupon) UsedCount() int32       { return c.usedCount }
func (c *Coupon) CreatedBy() *uuid.UUID  { return c.createdBy }
func (c *Coupon) CreatedAt() time.Time   { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time   { return c.updatedAt }

// Details returns a copy; mutating it does not affect the coupon.
func (c *Coupon) Details() Details {
	d := c.details
	d.Categories = slices.Clone(d.Categories)
	d.Products = slices.Clone(d.Products)
	d.SpecificUsers = slices.Clone(d.SpecificUsers)
	return d
}

func normalize(d Details) Details {
	if code, err := NewCode(d.Code.String()); err == nil {
		d.Code = code
	}
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	if d.ApplicableTo == "" {
		d.ApplicableTo = ScopeAll
	}
	if d.UserRestrictions == "" {
		d.UserRestrictions = AudienceAll
	}
	categories := make([]string, 0, len(d.Categories))
	for _, cat := range d.Categories {
		if cat = strings.TrimSpace(cat); cat != "" && !slices.Contains(categories, cat) {
			categories = append(categories, cat)
		}
	}
	d.Categories = categories
	if d.Products == nil {
		d.Products = []uuid.UUID{}
	}
	if d.SpecificUsers == nil {
		d.SpecificUsers = []uuid.UUID{}
	}
	return d
}

func validateDetails(d Details) error {
	if _, err := NewCode(d.Code.String()); err != nil {
		return err
	}
	if d.Name == "" {
		return ErrEmptyName
	}
	if !d.Type.IsValid() {
		return ErrInvalidType
	}
	if err := validateValue(d.Type, d.Value); err != nil {
		return err
	}
	if d.MinimumAmount.IsNegative() {
		return ErrNegativeMinimum
	}
	if d.MaximumDiscount != nil && d.MaximumDiscount.IsNegative() {
		return ErrNegativeMaxDisc
	}
	if d.UsageLimit != nil && *d.UsageLimit < 1 {
		return ErrInvalidUsageLimit
	}
	if !d.ValidUntil.After(d.ValidFrom) {
		return ErrInvalidDateRange
	}
	if !d.ApplicableTo.IsValid() {
		return ErrInvalidScope
	}
	if !d.UserRestrictions.IsValid() {
		return ErrInvalidAudience
	}
	return nil
}
