// Package warranty holds the pure date arithmetic and classification rules
// for product warranties. Nothing here touches the store or the clock; the
// caller always supplies "now".
package warranty

import (
	"math"
	"time"

	"github.com/LuminLynx/ProductCareHub/models"
)

type Status string

const (
	StatusValid    Status = "valid"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
)

// TermYears is the statutory warranty term applied at registration.
const TermYears = 3

// ExpiringWindowDays is the inclusive threshold below which a still-valid
// warranty counts as expiring.
const ExpiringWindowDays = 90

const dayMillis = 24 * 60 * 60 * 1000

// ExpirationFromPurchase returns the warranty expiration for a purchase
// date: three calendar years later. A Feb 29 purchase normalizes to the
// nearest valid date in the target year.
func ExpirationFromPurchase(purchase time.Time) time.Time {
	return purchase.AddDate(TermYears, 0, 0)
}

// DaysRemaining counts whole days of protection left. The subtraction is
// done in milliseconds and ceiling-divided, so a partial final day still
// counts as a remaining day.
func DaysRemaining(expiration, now time.Time) int {
	ms := expiration.Sub(now).Milliseconds()
	return int(math.Ceil(float64(ms) / dayMillis))
}

// StatusFor classifies a days-remaining value. Zero days means the
// warranty expires today and is still treated as not-yet-expired.
func StatusFor(daysRemaining int) Status {
	switch {
	case daysRemaining < 0:
		return StatusExpired
	case daysRemaining <= ExpiringWindowDays:
		return StatusExpiring
	default:
		return StatusValid
	}
}

// StatusAt classifies a warranty directly from its expiration date.
func StatusAt(expiration, now time.Time) Status {
	return StatusFor(DaysRemaining(expiration, now))
}

// TotalDays is the whole-day length of the warranty term.
func TotalDays(purchase, expiration time.Time) int {
	ms := expiration.Sub(purchase).Milliseconds()
	return int(math.Ceil(float64(ms) / dayMillis))
}

// Progress returns how far through its warranty a product is, as a
// percentage. A zero-length term yields 0 rather than NaN.
func Progress(purchase, expiration, now time.Time) float64 {
	total := TotalDays(purchase, expiration)
	if total == 0 {
		return 0
	}
	remaining := DaysRemaining(expiration, now)
	if remaining < 0 {
		remaining = 0
	}
	passed := total - remaining
	return float64(passed) / float64(total) * 100
}

// AverageRating is the unweighted mean of the review ratings, 0 when there
// are no reviews.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
