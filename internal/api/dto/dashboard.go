package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse carries the dashboard cards: three accrual-style
// projections over active services plus the cash income realized in the
// current calendar month. AsOf is the single captured "now" every figure
// was computed against.
type DashboardSummaryResponse struct {
	OverdueTotal            decimal.Decimal `json:"overdue_total"`
	PendingTotal            decimal.Decimal `json:"pending_total"`
	UpcomingIncome          decimal.Decimal `json:"upcoming_income"`
	RealizedIncomeThisMonth decimal.Decimal `json:"realized_income_this_month"`
	AsOf                    time.Time       `json:"as_of"`
}
