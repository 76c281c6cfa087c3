package billing

import (
	"time"

	"github.com/billtrack/billtrack/internal/domain/service"
	"github.com/billtrack/billtrack/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ClientAggregate is the client-level rollup of a set of services.
type ClientAggregate struct {
	// Status is the worst status among the client's active services
	Status types.BillingStatus `json:"status"`
	// ActiveMonthlyTotal is the sum of effective prices of active services
	ActiveMonthlyTotal decimal.Decimal `json:"active_monthly_total"`
}

// AggregateClient reduces a client's services into one status and one
// monthly total. Only active services participate; a client with no active
// services has no obligations, so it reports PAID with a zero total.
//
// The reduction is worst-wins under the fixed ordering
// OVERDUE > UPCOMING > PAID, computed with the same Classify call that
// produces the per-service badges, so the rollup and the badges can never
// disagree.
func AggregateClient(services []*service.Service, gracePeriodDays, upcomingWindowDays int, now time.Time) ClientAggregate {
	active := lo.Filter(services, func(s *service.Service, _ int) bool {
		return s.IsActive()
	})

	result := ClientAggregate{
		Status:             types.BillingStatusPaid,
		ActiveMonthlyTotal: decimal.Zero,
	}

	for _, s := range active {
		result.ActiveMonthlyTotal = result.ActiveMonthlyTotal.Add(s.EffectivePrice())

		status := Classify(s.ExpirationDate, s.PrepaidUntil, gracePeriodDays, upcomingWindowDays, now)
		result.Status = result.Status.Worst(status)
	}

	return result
}
