package utils

import "time"

// TruncateToDay normalizes a time to midnight UTC. Daily bars from the market
// data provider carry exchange-local timestamps; the forecast pipeline only
// cares about the calendar day.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextDay returns the day after t, at midnight UTC.
func NextDay(t time.Time) time.Time {
	return TruncateToDay(t).AddDate(0, 0, 1)
}
