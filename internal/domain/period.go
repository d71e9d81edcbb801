package domain

import (
	"fmt"
	"math"
	"time"
)

const periodLayout = "2006-01"

// Period returns the billing period (YYYY-MM) that t falls into.
func Period(t time.Time) string {
	return t.Format(periodLayout)
}

// ParsePeriod validates a YYYY-MM string and returns the first instant of that
// month in loc.
func ParsePeriod(period string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(periodLayout, period, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidArgument)
	}
	return t, nil
}

// IsLastDayOfMonth reports whether the day after t starts a new calendar month.
func IsLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}

// MonthlyDonationKey is the idempotency key of a subscription's donation for a period.
func MonthlyDonationKey(subscriptionID, period string) string {
	return "monthly:" + subscriptionID + ":" + period
}

// Progress is round(raised/goal*100). It is not clamped, so over-funded
// causes report more than 100. A non-positive goal has no progress.
func Progress(raised, goal int64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(float64(raised) * 100 / float64(goal)))
}
