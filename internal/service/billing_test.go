package service

import (
	"testing"
	"time"

	"github.com/billtrack/billtrack/internal/api/dto"
	"github.com/billtrack/billtrack/internal/billing"
	"github.com/billtrack/billtrack/internal/domain/client"
	"github.com/billtrack/billtrack/internal/domain/payment"
	domainservice "github.com/billtrack/billtrack/internal/domain/service"
	ierr "github.com/billtrack/billtrack/internal/errors"
	"github.com/billtrack/billtrack/internal/testutil"
	"github.com/billtrack/billtrack/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BillingServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  BillingService
	testData struct {
		client   *client.Client
		services struct {
			overdue  *domainservice.Service
			imminent *domainservice.Service
			paid     *domainservice.Service
			inactive *domainservice.Service
		}
		now time.Time
	}
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceSuite))
}

func (s *BillingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	// freeze the clock at a known day so every expectation is exact
	s.testData.now = time.Date(2026, time.January, 20, 10, 0, 0, 0, time.UTC)
	s.SetNow(s.testData.now)
	s.setupService()
	s.setupTestData()
}

func (s *BillingServiceSuite) setupService() {
	s.service = NewBillingService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		Clock:       s.GetClock(),
		ClientRepo:  s.GetStores().ClientRepo,
		ServiceRepo: s.GetStores().ServiceRepo,
		PaymentRepo: s.GetStores().PaymentRepo,
	})
}

func (s *BillingServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:        "client_123",
		Name:      "Test Client",
		Email:     "client@example.com",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))

	// 13 days past expiration, beyond the 7 day grace window
	s.testData.services.overdue = &domainservice.Service{
		ID:             "svc_overdue",
		ClientID:       s.testData.client.ID,
		Name:           "Hosting",
		Cost:           decimal.NewFromInt(30),
		Currency:       "usd",
		ExpirationDate: lo.ToPtr(time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC)),
		BaseModel:      types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ServiceRepo.Create(s.GetContext(), s.testData.services.overdue))

	// due in 2 days, special price supersedes cost
	s.testData.services.imminent = &domainservice.Service{
		ID:             "svc_imminent",
		ClientID:       s.testData.client.ID,
		Name:           "Domain",
		Cost:           decimal.NewFromInt(20),
		SpecialPrice:   lo.ToPtr(decimal.NewFromInt(15)),
		Currency:       "usd",
		ExpirationDate: lo.ToPtr(time.Date(2026, time.January, 22, 0, 0, 0, 0, time.UTC)),
		RenewalDay:     22,
		BaseModel:      types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ServiceRepo.Create(s.GetContext(), s.testData.services.imminent))

	// comfortably covered until June
	s.testData.services.paid = &domainservice.Service{
		ID:             "svc_paid",
		ClientID:       s.testData.client.ID,
		Name:           "Backups",
		Cost:           decimal.NewFromInt(10),
		Currency:       "usd",
		ExpirationDate: lo.ToPtr(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)),
		BaseModel:      types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ServiceRepo.Create(s.GetContext(), s.testData.services.paid))

	// cancelled long ago, must not influence anything
	s.testData.services.inactive = &domainservice.Service{
		ID:             "svc_inactive",
		ClientID:       s.testData.client.ID,
		Name:           "Old Plan",
		Cost:           decimal.NewFromInt(99),
		Currency:       "usd",
		ExpirationDate: lo.ToPtr(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)),
		BaseModel:      types.GetDefaultBaseModel(s.GetContext()),
	}
	s.testData.services.inactive.Status = types.StatusInactive
	s.NoError(s.GetStores().ServiceRepo.Create(s.GetContext(), s.testData.services.inactive))
}

func (s *BillingServiceSuite) recordSettledPayment(serviceID string, amount int64, paymentDate time.Time) {
	p := &payment.Payment{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		ClientID:      s.testData.client.ID,
		ServiceID:     lo.ToPtr(serviceID),
		Amount:        decimal.NewFromInt(amount),
		Currency:      "usd",
		PaymentDate:   paymentDate,
		MonthsCovered: 1,
		PeriodStart:   paymentDate,
		PeriodEnd:     types.AddClampedDate(paymentDate, 0, 1, 0),
		PaymentStatus: types.PaymentStatusPaid,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PaymentRepo.Create(s.GetContext(), p))
}

func (s *BillingServiceSuite) TestGetClientOverview() {
	resp, err := s.service.GetClientOverview(s.GetContext(), s.testData.client.ID)
	s.NoError(err)
	s.NotNil(resp)

	// worst-wins: the overdue service dominates the rollup
	s.Equal(types.BillingStatusOverdue, resp.BillingStatus)
	// 30 + 15 (special price) + 10; the inactive 99 is excluded
	s.True(resp.ActiveMonthlyTotal.Equal(decimal.NewFromInt(55)),
		"active monthly total: %s", resp.ActiveMonthlyTotal)
	s.Len(resp.Services, 3)

	// the rollup must equal the worst of the returned badges
	worst := types.BillingStatusPaid
	for _, badge := range resp.Services {
		worst = worst.Worst(badge.BillingStatus)
	}
	s.Equal(worst, resp.BillingStatus)
}

func (s *BillingServiceSuite) TestGetClientOverviewBadges() {
	resp, err := s.service.GetClientOverview(s.GetContext(), s.testData.client.ID)
	s.NoError(err)

	byID := lo.KeyBy(resp.Services, func(b *dto.ServiceStatusResponse) string { return b.ID })
	s.Equal(types.BillingStatusOverdue, byID["svc_overdue"].BillingStatus)
	s.Equal(types.BillingStatusUpcoming, byID["svc_imminent"].BillingStatus)
	s.Equal(types.BillingStatusPaid, byID["svc_paid"].BillingStatus)
	s.True(byID["svc_imminent"].EffectivePrice.Equal(decimal.NewFromInt(15)))
	s.Equal("$", byID["svc_imminent"].CurrencySymbol)

	// renewal day set: the badge carries the next due date
	s.NotNil(byID["svc_imminent"].NextDueDate)
	s.Equal(time.Date(2026, time.January, 22, 0, 0, 0, 0, time.UTC), *byID["svc_imminent"].NextDueDate)
	s.Nil(byID["svc_paid"].NextDueDate)
}

func (s *BillingServiceSuite) TestGetClientOverviewNoServices() {
	empty := &client.Client{
		ID:        "client_empty",
		Name:      "No Services",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), empty))

	resp, err := s.service.GetClientOverview(s.GetContext(), empty.ID)
	s.NoError(err)
	s.Equal(types.BillingStatusPaid, resp.BillingStatus)
	s.True(resp.ActiveMonthlyTotal.IsZero())
	s.Empty(resp.Services)
}

func (s *BillingServiceSuite) TestGetClientOverviewUnknownClient() {
	_, err := s.service.GetClientOverview(s.GetContext(), "client_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *BillingServiceSuite) TestGetDashboardSummary() {
	// seed one settled payment in the current month and one outside it
	s.recordSettledPayment("svc_paid", 100, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	s.recordSettledPayment("svc_paid", 75, time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC))

	resp, err := s.service.GetDashboardSummary(s.GetContext())
	s.NoError(err)

	s.True(resp.OverdueTotal.Equal(decimal.NewFromInt(30)), "overdue: %s", resp.OverdueTotal)
	s.True(resp.PendingTotal.IsZero(), "pending: %s", resp.PendingTotal)
	s.True(resp.UpcomingIncome.Equal(decimal.NewFromInt(15)), "upcoming: %s", resp.UpcomingIncome)
	s.True(resp.RealizedIncomeThisMonth.Equal(decimal.NewFromInt(100)),
		"realized: %s", resp.RealizedIncomeThisMonth)
	s.Equal(s.testData.now, resp.AsOf)
}

func (s *BillingServiceSuite) TestRecordPaymentAdvancesExpiration() {
	req := &dto.RecordPaymentRequest{
		ClientID:      s.testData.client.ID,
		ServiceID:     s.testData.services.overdue.ID,
		Amount:        decimal.NewFromInt(30),
		Currency:      "usd",
		PaymentDate:   time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
		MonthsCovered: 1,
		PaymentStatus: "PAID",
	}

	resp, err := s.service.RecordPayment(s.GetContext(), req)
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.NotEmpty(resp.ReceiptNumber)
	s.Equal(types.PaymentStatusPaid, resp.PaymentStatus)
	s.Equal(time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC), resp.PeriodEnd)
	s.NotNil(resp.NewExpirationDate)
	s.Equal(resp.PeriodEnd, *resp.NewExpirationDate)

	// the service must now classify as PAID on the same clock
	updated, err := s.GetStores().ServiceRepo.Get(s.GetContext(), s.testData.services.overdue.ID)
	s.NoError(err)
	status := billing.Classify(updated.ExpirationDate, updated.PrepaidUntil,
		s.GetConfig().Billing.GracePeriodDays, s.GetConfig().Billing.UpcomingWindowDays, s.GetNow())
	s.Equal(types.BillingStatusPaid, status)
}

func (s *BillingServiceSuite) TestRecordPaymentLegacyToken() {
	req := &dto.RecordPaymentRequest{
		ClientID:      s.testData.client.ID,
		ServiceID:     s.testData.services.imminent.ID,
		Amount:        decimal.NewFromInt(15),
		Currency:      "usd",
		PaymentDate:   time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
		MonthsCovered: 2,
		PaymentStatus: "PAGADO",
	}

	resp, err := s.service.RecordPayment(s.GetContext(), req)
	s.NoError(err)
	s.Equal(types.PaymentStatusPaid, resp.PaymentStatus)
	s.Equal(time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC), resp.PeriodEnd)
}

func (s *BillingServiceSuite) TestRecordPaymentPendingDoesNotAdvance() {
	before := *s.testData.services.imminent.ExpirationDate

	req := &dto.RecordPaymentRequest{
		ClientID:      s.testData.client.ID,
		ServiceID:     s.testData.services.imminent.ID,
		Amount:        decimal.NewFromInt(15),
		Currency:      "usd",
		PaymentDate:   time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
		MonthsCovered: 1,
		PaymentStatus: "PENDIENTE",
	}

	resp, err := s.service.RecordPayment(s.GetContext(), req)
	s.NoError(err)
	s.Equal(types.PaymentStatusPending, resp.PaymentStatus)
	s.Nil(resp.NewExpirationDate)

	updated, err := s.GetStores().ServiceRepo.Get(s.GetContext(), s.testData.services.imminent.ID)
	s.NoError(err)
	s.NotNil(updated.ExpirationDate)
	s.True(updated.ExpirationDate.Equal(before))
}

func (s *BillingServiceSuite) TestRecordPaymentValidation() {
	tests := []struct {
		name string
		req  *dto.RecordPaymentRequest
	}{
		{
			name: "zero months covered",
			req: &dto.RecordPaymentRequest{
				ClientID:      s.testData.client.ID,
				ServiceID:     s.testData.services.paid.ID,
				Amount:        decimal.NewFromInt(10),
				Currency:      "usd",
				PaymentDate:   time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
				MonthsCovered: 0,
				PaymentStatus: "PAID",
			},
		},
		{
			name: "missing client",
			req: &dto.RecordPaymentRequest{
				ServiceID:     s.testData.services.paid.ID,
				Amount:        decimal.NewFromInt(10),
				Currency:      "usd",
				PaymentDate:   time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
				MonthsCovered: 1,
				PaymentStatus: "PAID",
			},
		},
		{
			name: "unknown status token",
			req: &dto.RecordPaymentRequest{
				ClientID:      s.testData.client.ID,
				ServiceID:     s.testData.services.paid.ID,
				Amount:        decimal.NewFromInt(10),
				Currency:      "usd",
				PaymentDate:   time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
				MonthsCovered: 1,
				PaymentStatus: "SETTLED",
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.RecordPayment(s.GetContext(), tt.req)
			s.Error(err)
			s.True(ierr.IsValidation(err))
		})
	}
}

func (s *BillingServiceSuite) TestRecordPaymentWrongClient() {
	other := &client.Client{
		ID:        "client_other",
		Name:      "Someone Else",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), other))

	req := &dto.RecordPaymentRequest{
		ClientID:      other.ID,
		ServiceID:     s.testData.services.paid.ID,
		Amount:        decimal.NewFromInt(10),
		Currency:      "usd",
		PaymentDate:   time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
		MonthsCovered: 1,
		PaymentStatus: "PAID",
	}

	_, err := s.service.RecordPayment(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}
