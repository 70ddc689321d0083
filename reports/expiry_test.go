package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func refNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func monthsFromNow(months float64) *time.Time {
	t := refNow().Add(time.Duration(months * daysPerMonth * 24 * float64(time.Hour)))
	return &t
}

func daysFromNow(days int) *time.Time {
	t := refNow().AddDate(0, 0, days)
	return &t
}

func TestClassifyExpiration_NoDate(t *testing.T) {
	assert.Equal(t, ExpiryNone, ClassifyExpiration(nil, refNow()))

	zero := time.Time{}
	assert.Equal(t, ExpiryNone, ClassifyExpiration(&zero, refNow()))
}

func TestClassifyExpiration_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		months float64
		want   ExpiryStatus
	}{
		{"exactly 12 months is critical", 12.0, ExpiryCritical},
		{"just past 12 months is warning", 12.01, ExpiryWarning},
		{"exactly 18 months is warning", 18.0, ExpiryWarning},
		{"just past 18 months is good", 18.01, ExpiryGood},
		{"6 months is critical", 6, ExpiryCritical},
		{"24 months is good", 24, ExpiryGood},
		{"already expired is critical", -2, ExpiryCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyExpiration(monthsFromNow(tt.months), refNow()))
		})
	}
}

func TestClassifyExpiration_Deterministic(t *testing.T) {
	// Same inputs, same answer: no hidden clock reads.
	exp := monthsFromNow(10)
	first := ClassifyExpiration(exp, refNow())
	second := ClassifyExpiration(exp, refNow())
	assert.Equal(t, first, second)
}

func TestExpirationText(t *testing.T) {
	tests := []struct {
		name string
		days int
		want string
	}{
		{"expired five days ago", -5, "Expired 5 days ago"},
		{"expired one day ago", -1, "Expired 1 day ago"},
		{"expires today", 0, "Expires today!"},
		{"one day left", 1, "Expires in 1 day"},
		{"thirty days left", 30, "Expires in 30 days"},
		{"thirty-one days rounds to one month", 31, "Expires in 1 month"},
		{"ninety days is three months", 90, "Expires in 3 months"},
		{"full year boundary stays in months", 365, "Expires in 12 months"},
		{"four hundred days is a year and a month", 400, "Expires in 1 year and 1 month"},
		{"exact year omits month clause", 366, "Expires in 1 year"},
		{"two years and two months", 795, "Expires in 2 years and 2 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpirationText(daysFromNow(tt.days), refNow()))
		})
	}
}

func TestExpirationText_NoDate(t *testing.T) {
	assert.Equal(t, "No expiration date", ExpirationText(nil, refNow()))
}
