package analytics

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPeriodDays = 30
	MaxPeriodDays     = 365
)

// Period is a trailing reporting window measured in whole days.
type Period struct {
	days int
}

// NewPeriod clamps anything outside 1..365 to the default.
func NewPeriod(days int) Period {
	if days < 1 || days > MaxPeriodDays {
		days = DefaultPeriodDays
	}
	return Period{days: days}
}

// ParsePeriod reads a query-string value; unparsable input gives the default.
func ParsePeriod(raw string) Period {
	days, err := strconv.Atoi(raw)
	if err != nil {
		return NewPeriod(DefaultPeriodDays)
	}
	return NewPeriod(days)
}

func (p Period) Days() int {
	return p.days
}

// Window returns [now - days, now).
func (p Period) Window(now time.Time) (start, end time.Time) {
	return now.AddDate(0, 0, -p.days), now
}

var hundred = decimal.NewFromInt(100)

// ConversionRate is purchasers as a percentage of all users, to two decimals.
func ConversionRate(purchasers, totalUsers int64) decimal.Decimal {
	if totalUsers <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(purchasers).
		Mul(hundred).
		Div(decimal.NewFromInt(totalUsers)).
		Round(2)
}

// Average divides total by count, giving zero for an empty set.
func Average(total decimal.Decimal, count int64) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(count)).Round(2)
}
