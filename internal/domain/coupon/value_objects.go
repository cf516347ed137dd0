package coupon

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,30}$`)

type Code string

// NewCode normalises to the stored form: trimmed and uppercase.
func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codeRegex.MatchString(s) {
		return "", ErrInvalidCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

var hundred = decimal.NewFromInt(100)

// validateValue enforces the per-type value range.
func validateValue(t Type, value decimal.Decimal) error {
	switch t {
	case TypePercentage:
		if value.IsNegative() || value.GreaterThan(hundred) {
			return ErrPercentageRange
		}
	case TypeFixed, TypeFreeShipping:
		if value.IsNegative() {
			return ErrNegativeValue
		}
	default:
		return ErrInvalidType
	}
	return nil
}
