package dateutil

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func NextDay(t time.Time) time.Time {
	return BeginningOfDay(t).AddDate(0, 0, 1)
}

// Date returns the calendar date of t as observed in loc, encoded as midnight
// UTC. Draw dates are stored in this form.
func Date(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a draw date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// SettlementCutoff returns yesterday's calendar date in loc. Only draws held
// strictly before the cutoff are eligible for settlement, so a draw is never
// settled on the day after it is held.
func SettlementCutoff(now time.Time, loc *time.Location) time.Time {
	return Date(now, loc).AddDate(0, 0, -1)
}
