package reports

import (
	"fmt"
	"math"
	"time"
)

// ExpiryStatus classifies how close a batch is to its expiration date
type ExpiryStatus string

const (
	ExpiryNone     ExpiryStatus = "none"
	ExpiryCritical ExpiryStatus = "critical"
	ExpiryWarning  ExpiryStatus = "warning"
	ExpiryGood     ExpiryStatus = "good"
)

// daysPerMonth is the average month length used for expiry math
const daysPerMonth = 30.5

// ClassifyExpiration buckets an expiration date relative to the given
// reference time. Batches within 12 months (inclusive) are critical, within
// 18 months warning, beyond that good. Already-expired batches fall in the
// critical bucket. The reference time is a parameter so the classification
// is deterministic under test.
func ClassifyExpiration(expirationDate *time.Time, now time.Time) ExpiryStatus {
	if expirationDate == nil || expirationDate.IsZero() {
		return ExpiryNone
	}

	months := expirationDate.Sub(now).Hours() / 24 / daysPerMonth

	switch {
	case months <= 12:
		return ExpiryCritical
	case months <= 18:
		return ExpiryWarning
	default:
		return ExpiryGood
	}
}

// ExpirationText renders a human-readable countdown to an expiration date.
// Whole days are counted by flooring, so a batch that expired half a day ago
// reads "Expired 1 day ago" rather than "Expires today!".
func ExpirationText(expirationDate *time.Time, now time.Time) string {
	if expirationDate == nil || expirationDate.IsZero() {
		return "No expiration date"
	}

	days := int(math.Floor(expirationDate.Sub(now).Hours() / 24))

	switch {
	case days < 0:
		n := -days
		return fmt.Sprintf("Expired %d %s ago", n, pluralize(n, "day"))
	case days == 0:
		return "Expires today!"
	case days <= 30:
		return fmt.Sprintf("Expires in %d %s", days, pluralize(days, "day"))
	case days <= 365:
		months := days / 30
		return fmt.Sprintf("Expires in %d %s", months, pluralize(months, "month"))
	default:
		years := days / 365
		months := (days % 365) / 30
		if months == 0 {
			return fmt.Sprintf("Expires in %d %s", years, pluralize(years, "year"))
		}
		return fmt.Sprintf("Expires in %d %s and %d %s",
			years, pluralize(years, "year"), months, pluralize(months, "month"))
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
