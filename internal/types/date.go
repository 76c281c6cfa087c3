package types

import (
	"time"
)

// DateOnly strips the time-of-day component, leaving midnight in the same
// location. All billing comparisons happen at day granularity: a service is
// due on a calendar day, not at an instant, and stripping the clock avoids
// time-of-day and DST flakiness.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameYearMonth reports whether both times fall in the same calendar month.
func SameYearMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// LastDayOfMonth returns the number of days in the month containing t.
func LastDayOfMonth(t time.Time) int {
	firstOfNextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	return firstOfNextMonth.Add(-24 * time.Hour).Day()
}

// AddClampedDate adds the given years, months and days to t using calendar
// arithmetic, clamping to the last valid day of the target month instead of
// overflowing the way time.AddDate does (one month from Jan 31 lands on
// Feb 28/29, not Mar 2/3).
func AddClampedDate(t time.Time, years, months, days int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	// Calculate the proposed year and month
	newY := y + years
	newM := time.Month(int(m) + months)

	// If we move beyond December, it adjusts correctly,
	// for example adding 2 months to November will land on January next year.
	for newM > 12 {
		newM -= 12
		newY++
	}
	for newM < 1 {
		newM += 12
		newY--
	}

	// Find the last valid day of the new month
	firstOfNextMonth := time.Date(newY, newM+1, 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfNextMonth.Add(-24 * time.Hour).Day()

	newD := d + days
	if newD > lastDay {
		// Clamp to last valid day
		newD = lastDay
	}

	return time.Date(newY, newM, newD, h, min, sec, t.Nanosecond(), t.Location())
}
