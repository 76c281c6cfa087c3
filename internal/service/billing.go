package service

import (
	"context"

	"github.com/billtrack/billtrack/internal/api/dto"
	"github.com/billtrack/billtrack/internal/billing"
	"github.com/billtrack/billtrack/internal/domain/payment"
	domainservice "github.com/billtrack/billtrack/internal/domain/service"
	ierr "github.com/billtrack/billtrack/internal/errors"
	"github.com/billtrack/billtrack/internal/types"
	"github.com/billtrack/billtrack/internal/validator"
	"github.com/samber/lo"
)

const (
	billingDefaultGraceDays    = types.DefaultGracePeriodDays
	billingDefaultUpcomingDays = types.DefaultUpcomingWindowDays
)

// BillingService is the read and write surface over the billing status
// engine. Every operation captures the clock exactly once and threads that
// value through all engine calls it makes.
type BillingService interface {
	// GetClientOverview returns the client-level status rollup together
	// with the per-service badges it was reduced from
	GetClientOverview(ctx context.Context, clientID string) (*dto.ClientOverviewResponse, error)

	// GetDashboardSummary returns the fleet-wide dashboard figures
	GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)

	// RecordPayment posts a payment against a service, computes the covered
	// period and advances the service's expiration date
	RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
}

type billingService struct {
	ServiceParams
}

func NewBillingService(params ServiceParams) BillingService {
	return &billingService{
		ServiceParams: params,
	}
}

func (s *billingService) GetClientOverview(ctx context.Context, clientID string) (*dto.ClientOverviewResponse, error) {
	if clientID == "" {
		return nil, ierr.NewError("client id is required").
			WithHint("Client ID cannot be empty").
			Mark(ierr.ErrValidation)
	}

	c, err := s.ClientRepo.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}

	services, err := s.ServiceRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	// one clock capture for the whole overview
	now := s.Clock.Now()
	graceDays := s.graceDays()
	upcomingDays := s.upcomingDays()

	aggregate := billing.AggregateClient(services, graceDays, upcomingDays, now)

	active := lo.Filter(services, func(svc *domainservice.Service, _ int) bool {
		return svc.IsActive()
	})
	badges := lo.Map(active, func(svc *domainservice.Service, _ int) *dto.ServiceStatusResponse {
		badge := &dto.ServiceStatusResponse{
			ID:             svc.ID,
			Name:           svc.Name,
			EffectivePrice: svc.EffectivePrice(),
			Currency:       svc.Currency,
			CurrencySymbol: types.GetCurrencySymbol(svc.Currency),
			ExpirationDate: svc.ExpirationDate,
			BillingStatus:  billing.Classify(svc.ExpirationDate, svc.PrepaidUntil, graceDays, upcomingDays, now),
		}
		if svc.RenewalDay != 0 {
			if nextDue, err := billing.NextDueDate(svc.RenewalDay, now); err == nil {
				badge.NextDueDate = lo.ToPtr(nextDue)
			}
		}
		return badge
	})

	return &dto.ClientOverviewResponse{
		ClientID:           c.ID,
		Name:               c.Name,
		BillingStatus:      aggregate.Status,
		ActiveMonthlyTotal: aggregate.ActiveMonthlyTotal,
		Services:           badges,
	}, nil
}

func (s *billingService) GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	services, err := s.ServiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	summary := billing.Summarize(services, payments, s.graceDays(), s.upcomingDays(), now)

	return &dto.DashboardSummaryResponse{
		OverdueTotal:            summary.OverdueTotal,
		PendingTotal:            summary.PendingTotal,
		UpcomingIncome:          summary.UpcomingIncome,
		RealizedIncomeThisMonth: summary.RealizedIncomeThisMonth,
		AsOf:                    now,
	}, nil
}

func (s *billingService) RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	status, err := types.ParsePaymentStatus(req.PaymentStatus)
	if err != nil {
		return nil, err
	}

	svc, err := s.ServiceRepo.Get(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.ClientID != req.ClientID {
		return nil, ierr.NewError("service does not belong to client").
			WithHint("Payment must target a service owned by the same client").
			Mark(ierr.ErrInvalidOperation)
	}

	period, err := billing.CoveredPeriod(req.PaymentDate, req.MonthsCovered)
	if err != nil {
		return nil, err
	}

	p := &payment.Payment{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		ReceiptNumber: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_RECEIPT),
		ClientID:      req.ClientID,
		ServiceID:     lo.ToPtr(req.ServiceID),
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentDate:   req.PaymentDate,
		MonthsCovered: req.MonthsCovered,
		PeriodStart:   period.PeriodStart,
		PeriodEnd:     period.PeriodEnd,
		PaymentStatus: status,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.PaymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	response := dto.NewPaymentResponse(p)

	// only settled payments move the due date; a pending or failed payment
	// is recorded as a fact but does not buy any coverage
	if status.IsSettled() {
		svc.ExpirationDate = lo.ToPtr(period.PeriodEnd)
		svc.UpdatedBy = types.GetUserID(ctx)
		if err := s.ServiceRepo.Update(ctx, svc); err != nil {
			return nil, err
		}
		response.NewExpirationDate = svc.ExpirationDate

		s.Logger.Infow("payment recorded, expiration advanced",
			"payment_id", p.ID,
			"service_id", svc.ID,
			"client_id", p.ClientID,
			"new_expiration_date", period.PeriodEnd,
		)
	} else {
		s.Logger.Infow("payment recorded without coverage",
			"payment_id", p.ID,
			"service_id", svc.ID,
			"client_id", p.ClientID,
			"payment_status", status,
		)
	}

	return response, nil
}
