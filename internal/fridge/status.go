package fridge

import "time"

// ItemStatus is the freshness of an item derived from its expiry date.
// It is computed on read and never stored.
type ItemStatus string

const (
	StatusFresh   ItemStatus = "FRESH"
	StatusWarning ItemStatus = "WARNING"
	StatusExpired ItemStatus = "EXPIRED"

	// StatusNormal appears in historical backend payloads. It is accepted
	// on the wire but Status never produces it: the classifier contract is
	// the three-way FRESH/WARNING/EXPIRED split.
	StatusNormal ItemStatus = "NORMAL"
)

// warningWindowDays is the number of days before expiry during which an
// item counts as 임박 (imminent).
const warningWindowDays = 3

// Status derives the freshness of an item from its expiry date and "today".
// A nil expiry date means FRESH. Both dates are truncated to midnight so the
// time of day never shifts the classification: an item expiring today is
// WARNING regardless of the hour.
func Status(expireDate *time.Time, today time.Time) ItemStatus {
	if expireDate == nil {
		return StatusFresh
	}

	diffDays := DaysUntil(*expireDate, today)
	switch {
	case diffDays < 0:
		return StatusExpired
	case diffDays <= warningWindowDays:
		return StatusWarning
	default:
		return StatusFresh
	}
}

// DaysUntil returns the number of calendar days from today to date,
// negative when date is in the past. Each argument's wall-clock date is
// taken in its own location and the diff happens in UTC, so an expiry
// parsed in UTC compared against server-local "now" still counts whole
// days (and DST shifts never skew the quotient).
func DaysUntil(date, today time.Time) int {
	return int(midnight(date).Sub(midnight(today)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
