// Package freshness derives the freshness status of an inventory entry
// from its expiry date. Status is never stored, always computed against
// an explicit reference date so results stay reproducible.
package freshness

import "time"

type Status string

const (
	StatusFresh        Status = "fresh"
	StatusConsumeSoon  Status = "consume_soon"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

const (
	// ExpiringSoonDays is the upper bound (inclusive) of the expiring_soon window.
	ExpiringSoonDays = 3
	// ConsumeSoonDays is the upper bound (inclusive) of the consume_soon window.
	ConsumeSoonDays = 7
)

// DaysUntil returns the whole number of calendar days from today until expiry.
// Both dates are truncated to midnight UTC first, so time-of-day never shifts
// the result. Negative means the expiry date has passed.
func DaysUntil(expiry, today time.Time) int {
	e := truncate(expiry)
	t := truncate(today)
	return int(e.Sub(t).Hours() / 24)
}

// Classify maps an expiry date to a Status relative to today.
func Classify(expiry, today time.Time) Status {
	days := DaysUntil(expiry, today)
	switch {
	case days < 0:
		return StatusExpired
	case days <= ExpiringSoonDays:
		return StatusExpiringSoon
	case days <= ConsumeSoonDays:
		return StatusConsumeSoon
	default:
		return StatusFresh
	}
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
