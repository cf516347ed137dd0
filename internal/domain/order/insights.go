package order

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DaysSince returns whole days elapsed since t.
func DaysSince(t, now time.Time) int {
	return int(now.Sub(t) / day)
}

// IsOverdue reports a shipped order whose estimated delivery has passed.
func IsOverdue(status Status, estimatedDelivery *time.Time, now time.Time) bool {
	return status == StatusShipped && estimatedDelivery != nil && now.After(*estimatedDelivery)
}

// EstimatedDeliveryDays rounds the remaining time up to whole days.
// It is negative once the estimate has passed and nil when unset.
func EstimatedDeliveryDays(estimatedDelivery *time.Time, now time.Time) *int {
	if estimatedDelivery == nil {
		return nil
	}
	days := int(math.Ceil(float64(estimatedDelivery.Sub(now)) / float64(day)))
	return &days
}
