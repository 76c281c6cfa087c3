package billing

import (
	"time"

	ierr "github.com/billtrack/billtrack/internal/errors"
	"github.com/billtrack/billtrack/internal/types"
)

// Period is a covered date range derived from a payment.
type Period struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

// CoveredPeriod computes the date range a payment covers: monthsCovered
// calendar months from the start date, with end-of-month clamping (one
// month from Jan 31 lands on the last valid day of February). This uses
// calendar arithmetic, never fixed 30-day increments.
func CoveredPeriod(start time.Time, monthsCovered int) (Period, error) {
	if monthsCovered < 1 {
		return Period{}, ierr.NewError("invalid months covered").
			WithHintf("Months covered must be at least 1, got %d", monthsCovered).
			Mark(ierr.ErrValidation)
	}

	return Period{
		PeriodStart: start,
		PeriodEnd:   types.AddClampedDate(start, 0, monthsCovered, 0),
	}, nil
}

// NextDueDate returns the renewal day in the reference month if that date
// has not yet passed, otherwise the renewal day in the following month.
// When a month lacks the requested day (renewal day 30 in February), the
// result clamps to the last valid day of that month instead of overflowing
// into the next one.
func NextDueDate(renewalDay int, reference time.Time) (time.Time, error) {
	if renewalDay < 1 || renewalDay > 31 {
		return time.Time{}, ierr.NewError("invalid renewal day").
			WithHintf("Renewal day must be between 1 and 31, got %d", renewalDay).
			Mark(ierr.ErrValidation)
	}

	refDay := types.DateOnly(reference)

	candidate := dayInMonthClamped(refDay.Year(), refDay.Month(), renewalDay, refDay.Location())
	if !candidate.Before(refDay) {
		return candidate, nil
	}

	firstOfNextMonth := time.Date(refDay.Year(), refDay.Month()+1, 1, 0, 0, 0, 0, refDay.Location())
	return dayInMonthClamped(firstOfNextMonth.Year(), firstOfNextMonth.Month(), renewalDay, refDay.Location()), nil
}

func dayInMonthClamped(year int, month time.Month, day int, loc *time.Location) time.Time {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	if last := types.LastDayOfMonth(firstOfMonth); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
