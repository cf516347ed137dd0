package coupon

import "furnicraft/internal/pkg/errs"

type Type string

const (
	TypePercentage   Type = "percentage"
	TypeFixed        Type = "fixed"
	TypeFreeShipping Type = "free_shipping"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePercentage, TypeFixed, TypeFreeShipping:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// Scope restricts which cart lines a coupon applies to.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeCategory Scope = "category"
	ScopeProduct  Scope = "product"
)

func (s Scope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeCategory, ScopeProduct:
		return true
	default:
		return false
	}
}

func ParseScope(s string) (Scope, error) {
	if s == "" {
		return ScopeAll, nil
	}
	sc := Scope(s)
	if !sc.IsValid() {
		return "", ErrInvalidScope
	}
	return sc, nil
}

// Audience restricts which customers may redeem a coupon.
type Audience string

const (
	AudienceAll           Audience = "all"
	AudienceNewUsers      Audience = "new_users"
	AudienceExistingUsers Audience = "existing_users"
	AudienceSpecificUsers Audience = "specific_users"
)

func (a Audience) IsValid() bool {
	switch a {
	case AudienceAll, AudienceNewUsers, AudienceExistingUsers, AudienceSpecificUsers:
		return true
	default:
		return false
	}
}

func ParseAudience(s string) (Audience, error) {
	if s == "" {
		return AudienceAll, nil
	}
	a := Audience(s)
	if !a.IsValid() {
		return "", ErrInvalidAudience
	}
	return a, nil
}

// Validation and redemption errors. Messages are shown to API clients as is.
var (
	ErrInvalidCode        = errs.Kinded(errs.ErrInvalidArgument, "Coupon code must be 3-30 letters, digits, dashes or underscores")
	ErrInvalidType        = errs.Kinded(errs.ErrInvalidArgument, "Coupon type must be percentage, fixed or free_shipping")
	ErrInvalidScope       = errs.Kinded(errs.ErrInvalidArgument, "applicableTo must be all, category or product")
	ErrInvalidAudience    = errs.Kinded(errs.ErrInvalidArgument, "userRestrictions must be all, new_users, existing_users or specific_users")
	ErrInvalidDateRange   = errs.Kinded(errs.ErrInvalidArgument, "Valid until date must be after valid from date")
	ErrPercentageRange    = errs.Kinded(errs.ErrInvalidArgument, "Percentage value must be between 0 and 100")
	ErrNegativeValue      = errs.Kinded(errs.ErrInvalidArgument, "Value cannot be negative")
	ErrNegativeMinimum    = errs.Kinded(errs.ErrInvalidArgument, "Minimum amount cannot be negative")
	ErrNegativeMaxDisc    = errs.Kinded(errs.ErrInvalidArgument, "Maximum discount cannot be negative")
	ErrInvalidUsageLimit  = errs.Kinded(errs.ErrInvalidArgument, "Usage limit must be at least 1")
	ErrEmptyName          = errs.Kinded(errs.ErrInvalidArgument, "Coupon name is required")
	ErrCodeTaken          = errs.Kinded(errs.ErrInvalidArgument, "Coupon code already exists")
	ErrNotFound           = errs.Kinded(errs.ErrNotFound, "Coupon not found")
	ErrUnknownCode        = errs.Kinded(errs.ErrNotFound, "Invalid coupon code")
	ErrAlreadyUsed        = errs.Kinded(errs.ErrInvalidState, "Cannot delete coupon that has been used. Deactivate it instead.")
	ErrOutsideWindow      = errs.Kinded(errs.ErrInvalidState, "Coupon is not valid at this time")
	ErrUsageLimitExceeded = errs.Kinded(errs.ErrLimitExceeded, "Coupon usage limit exceeded")
	ErrUnknownCustomer    = errs.Kinded(errs.ErrNotEligible, "User not found")
	ErrNewUsersOnly       = errs.Kinded(errs.ErrNotEligible, "This coupon is only for new users")
	ErrExistingUsersOnly  = errs.Kinded(errs.ErrNotEligible, "This coupon is only for existing users")
	ErrNotForCustomer     = errs.Kinded(errs.ErrNotEligible, "This coupon is not available for your account")
	ErrNoEligibleProduct  = errs.Kinded(errs.ErrNotApplicable, "This coupon is not applicable to any products in your cart")
	ErrNoEligibleCategory = errs.Kinded(errs.ErrNotApplicable, "This coupon is not applicable to any categories in your cart")
)
