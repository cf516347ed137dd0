package coupon

import (
	"slices"
	"time"

	"furnicraft/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartItem struct {
	ProductID uuid.UUID
	Category  string
}

// Customer is the redeeming user as seen by the audience rules.
// Found is false when the caller named a user that does not exist.
type Customer struct {
	ID          uuid.UUID
	Found       bool
	PriorOrders int64
}

// Redemption describes a prospective use of a coupon. A nil OrderAmount
// skips the minimum check and yields a zero discount; a nil Items slice
// skips the scope check.
type Redemption struct {
	OrderAmount *decimal.Decimal
	Customer    *Customer
	Items       []CartItem
}

// Evaluate runs the redemption rules in order and returns the discount.
// It never mutates the coupon.
func (c *Coupon) Evaluate(now time.Time, r Redemption) (decimal.Decimal, error) {
	d := c.details
	if !d.IsActive {
		return decimal.Zero, ErrUnknownCode
	}
	if now.Before(d.ValidFrom) || now.After(d.ValidUntil) {
		return decimal.Zero, ErrOutsideWindow
	}
	if d.UsageLimit != nil && c.usedCount >= *d.UsageLimit {
		return decimal.Zero, ErrUsageLimitExceeded
	}
	if r.OrderAmount != nil && d.MinimumAmount.GreaterThan(*r.OrderAmount) {
		return decimal.Zero, errs.Kindedf(errs.ErrBelowMinimum, "Minimum order amount of $%s required", d.MinimumAmount.String())
	}
	if err := c.checkAudience(r.Customer); err != nil {
		return decimal.Zero, err
	}
	if err := c.checkScope(r.Items); err != nil {
		return decimal.Zero, err
	}
	if r.OrderAmount == nil {
		return decimal.Zero, nil
	}
	return c.discountFor(*r.OrderAmount), nil
}

func (c *Coupon) checkAudience(cust *Customer) error {
	if cust == nil || c.details.UserRestrictions == AudienceAll {
		return nil
	}
	if !cust.Found {
		return ErrUnknownCustomer
	}
	switch c.details.UserRestrictions {
	case AudienceNewUsers:
		if cust.PriorOrders > 0 {
			return ErrNewUsersOnly
		}
	case AudienceExistingUsers:
		if cust.PriorOrders == 0 {
			return ErrExistingUsersOnly
		}
	case AudienceSpecificUsers:
		if !slices.Contains(c.details.SpecificUsers, cust.ID) {
			return ErrNotForCustomer
		}
	}
	return nil
}

func (c *Coupon) checkScope(items []CartItem) error {
	if items == nil {
		return nil
	}
	switch c.details.ApplicableTo {
	case ScopeProduct:
		for _, item := range items {
			if slices.Contains(c.details.Products, item.ProductID) {
				return nil
			}
		}
		return ErrNoEligibleProduct
	case ScopeCategory:
		for _, item := range items {
			if item.Category != "" && slices.Contains(c.details.Categories, item.Category) {
				return nil
			}
		}
		return ErrNoEligibleCategory
	}
	return nil
}

func (c *Coupon) discountFor(amount decimal.Decimal) decimal.Decimal {
	d := c.details
	var discount decimal.Decimal
	switch d.Type {
	case TypePercentage:
		discount = amount.Mul(d.Value).Div(hundred)
		if d.MaximumDiscount != nil && d.MaximumDiscount.IsPositive() && discount.GreaterThan(*d.MaximumDiscount) {
			discount = *d.MaximumDiscount
		}
	case TypeFixed:
		discount = decimal.Min(d.Value, amount)
	case TypeFreeShipping:
		// value stands in for the shipping cost
		discount = d.Value
	}
	return discount.Round(2)
}
