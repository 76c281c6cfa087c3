package billing

import (
	"time"

	"github.com/billtrack/billtrack/internal/domain/payment"
	"github.com/billtrack/billtrack/internal/domain/service"
	"github.com/billtrack/billtrack/internal/types"
	"github.com/shopspring/decimal"
)

// PeriodSummary holds the dashboard-level totals for one captured "now".
// The first three figures are accrual-style projections over active
// services; RealizedIncomeThisMonth is a cash figure over settled payments.
type PeriodSummary struct {
	// OverdueTotal is the effective price of active services fully lapsed
	// past their grace period
	OverdueTotal decimal.Decimal `json:"overdue_total"`
	// PendingTotal is the effective price of active services that expired
	// but are still inside the grace window
	PendingTotal decimal.Decimal `json:"pending_total"`
	// UpcomingIncome is the effective price of active services due within
	// the upcoming window but not yet expired
	UpcomingIncome decimal.Decimal `json:"upcoming_income"`
	// RealizedIncomeThisMonth sums settled payments dated in now's
	// calendar month
	RealizedIncomeThisMonth decimal.Decimal `json:"realized_income_this_month"`
}

// Summarize scans the fleet of services and the payment log and accumulates
// the four dashboard figures. Each active service lands in exactly one of
// the overdue/pending/upcoming buckets, or in none of them when it is
// comfortably paid; inactive services contribute nothing. Empty collections
// yield all-zero totals.
//
// Amounts are summed raw: the caller is responsible for not mixing
// currencies within one aggregation call. The engine never converts.
func Summarize(services []*service.Service, payments []*payment.Payment, gracePeriodDays, upcomingWindowDays int, now time.Time) PeriodSummary {
	summary := PeriodSummary{
		OverdueTotal:            decimal.Zero,
		PendingTotal:            decimal.Zero,
		UpcomingIncome:          decimal.Zero,
		RealizedIncomeThisMonth: decimal.Zero,
	}

	nowDay := types.DateOnly(now)

	for _, s := range services {
		if !s.IsActive() {
			continue
		}

		price := s.EffectivePrice()
		status := Classify(s.ExpirationDate, s.PrepaidUntil, gracePeriodDays, upcomingWindowDays, now)

		switch status {
		case types.BillingStatusOverdue:
			summary.OverdueTotal = summary.OverdueTotal.Add(price)
		case types.BillingStatusUpcoming:
			// split the soft-warning bucket: already expired means grace,
			// not yet expired means imminent renewal
			if s.ExpirationDate != nil && types.DateOnly(*s.ExpirationDate).Before(nowDay) {
				summary.PendingTotal = summary.PendingTotal.Add(price)
			} else {
				summary.UpcomingIncome = summary.UpcomingIncome.Add(price)
			}
		case types.BillingStatusPaid:
			// paid services are excluded from the projection figures
		}
	}

	for _, p := range payments {
		if !p.IsSettled() {
			continue
		}
		if !types.SameYearMonth(p.PaymentDate, now) {
			continue
		}
		summary.RealizedIncomeThisMonth = summary.RealizedIncomeThisMonth.Add(p.Amount)
	}

	return summary
}
