package domain

import "time"

// hoursPerDay is used for the day-floor elapsed-time rule: an entry
// practiced 23 hours ago counts as 0 days since practice.
const hoursPerDay = 24

// DateOf truncates a timestamp to its calendar date, preserving location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysSince returns floor((now - then) / 24h). Negative elapsed time
// (clock skew, entries created "in the future") yields a negative count.
func DaysSince(then, now time.Time) int {
	return int(now.Sub(then).Hours() / hoursPerDay)
}

// CalendarDaysBetween counts whole calendar days from earlier to later,
// ignoring the time of day on both ends.
func CalendarDaysBetween(earlier, later time.Time) int {
	e := time.Date(earlier.Year(), earlier.Month(), earlier.Day(), 0, 0, 0, 0, time.UTC)
	l := time.Date(later.Year(), later.Month(), later.Day(), 0, 0, 0, 0, time.UTC)
	return int(l.Sub(e).Hours() / hoursPerDay)
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
