package utils

import "time"

// DateFormat is the canonical wire format for calendar dates.
const DateFormat = "2006-01-02"

// DateOf strips the time-of-day from t and returns midnight UTC of the same
// calendar day. All date-keyed maps in the application use this normal form,
// so two timestamps on the same day always collide on the same key.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDate parses a YYYY-MM-DD string into a normalized date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
