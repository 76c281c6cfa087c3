package billing

import (
	"time"

	"github.com/billtrack/billtrack/internal/types"
)

// Classify decides the billing status of a single service from its
// expiration date, its grace and upcoming windows, and an optional
// prepayment horizon. It is the only place in the codebase allowed to make
// this decision; every consumer (client view, dashboard, write path) calls
// it rather than recomputing status on its own.
//
// The rules, first match wins:
//  1. prepaidUntil set and not yet passed: PAID, regardless of expiration.
//  2. expiration unknown: OVERDUE. An unknown due date must never be
//     reported as fine.
//  3. now past expiration + grace: OVERDUE.
//  4. now past expiration but still within grace: UPCOMING.
//  5. expiration within the upcoming window (today included): UPCOMING.
//  6. otherwise: PAID.
//
// All comparisons happen at day granularity. The grace boundary is
// inclusive: exactly gracePeriodDays past expiration is still UPCOMING, and
// only one day later flips to OVERDUE. That asymmetry is deliberate; nobody
// gets flagged overdue the instant grace ends.
func Classify(expiration, prepaidUntil *time.Time, gracePeriodDays, upcomingWindowDays int, now time.Time) types.BillingStatus {
	nowDay := types.DateOnly(now)

	if prepaidUntil != nil && !types.DateOnly(*prepaidUntil).Before(nowDay) {
		return types.BillingStatusPaid
	}

	if expiration == nil {
		return types.BillingStatusOverdue
	}

	expDay := types.DateOnly(*expiration)
	graceEnd := expDay.AddDate(0, 0, gracePeriodDays)

	if nowDay.After(graceEnd) {
		return types.BillingStatusOverdue
	}

	if nowDay.After(expDay) {
		// expired but still inside the grace window
		return types.BillingStatusUpcoming
	}

	if !expDay.After(nowDay.AddDate(0, 0, upcomingWindowDays)) {
		// due today or within the next upcomingWindowDays days
		return types.BillingStatusUpcoming
	}

	return types.BillingStatusPaid
}
