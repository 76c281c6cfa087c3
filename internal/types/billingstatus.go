package types

import (
	ierr "github.com/billtrack/billtrack/internal/errors"
)

// BillingStatus is the read-time projection of a service's payment standing.
// It is a closed three-value enum so that renderers can switch over it
// exhaustively; no code path may emit a fourth ad hoc value.
type BillingStatus string

const (
	// BillingStatusOverdue means the service has fully lapsed past its grace
	// period, or has no known expiration date at all.
	BillingStatusOverdue BillingStatus = "OVERDUE"
	// BillingStatusUpcoming means the service is either inside the grace
	// window after expiration or inside the upcoming window before it.
	BillingStatusUpcoming BillingStatus = "UPCOMING"
	// BillingStatusPaid means the service is comfortably covered.
	BillingStatusPaid BillingStatus = "PAID"
)

const (
	// DefaultGracePeriodDays is the number of days after expiration during
	// which a lapsed service is still shown as a soft warning.
	DefaultGracePeriodDays = 7
	// DefaultUpcomingWindowDays is the number of days before expiration
	// during which a service is already flagged for attention.
	DefaultUpcomingWindowDays = 3
)

func (s BillingStatus) String() string {
	return string(s)
}

func (s BillingStatus) Validate() error {
	allowed := []BillingStatus{
		BillingStatusOverdue,
		BillingStatusUpcoming,
		BillingStatusPaid,
	}
	for _, status := range allowed {
		if s == status {
			return nil
		}
	}
	return ierr.NewError("invalid billing status").
		WithHintf("Billing status must be one of %v", allowed).
		Mark(ierr.ErrValidation)
}

// Severity orders statuses for worst-wins reduction:
// OVERDUE > UPCOMING > PAID.
func (s BillingStatus) Severity() int {
	switch s {
	case BillingStatusOverdue:
		return 2
	case BillingStatusUpcoming:
		return 1
	default:
		return 0
	}
}

// Worst returns the more severe of the two statuses.
func (s BillingStatus) Worst(other BillingStatus) BillingStatus {
	if other.Severity() > s.Severity() {
		return other
	}
	return s
}
