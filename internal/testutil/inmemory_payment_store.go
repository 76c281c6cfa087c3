package testutil

import (
	"context"
	"time"

	"github.com/billtrack/billtrack/internal/domain/payment"
	ierr "github.com/billtrack/billtrack/internal/errors"
	"github.com/billtrack/billtrack/internal/types"
)

// InMemoryPaymentStore implements payment.Repository
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Payment]
}

// NewInMemoryPaymentStore creates a new in-memory payment repository
func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.Payment](),
	}
}

func (m *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return ierr.NewError("payment cannot be nil").
			WithHint("Payment cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if p.ID == "" {
		return ierr.NewError("payment ID cannot be empty").
			WithHint("Payment ID cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return m.InMemoryStore.Create(ctx, p.ID, p)
}

func (m *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	p, err := m.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("payment not found").
			WithHintf("Payment with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (m *InMemoryPaymentStore) List(ctx context.Context) ([]*payment.Payment, error) {
	return m.InMemoryStore.List(ctx, nil, nil, paymentSort)
}

func (m *InMemoryPaymentStore) ListByClient(ctx context.Context, clientID string) ([]*payment.Payment, error) {
	filterFn := func(_ context.Context, p *payment.Payment, _ interface{}) bool {
		return p.ClientID == clientID
	}
	return m.InMemoryStore.List(ctx, nil, filterFn, paymentSort)
}

func (m *InMemoryPaymentStore) ListByPeriod(ctx context.Context, start, end time.Time) ([]*payment.Payment, error) {
	filterFn := func(_ context.Context, p *payment.Payment, _ interface{}) bool {
		day := types.DateOnly(p.PaymentDate)
		return !day.Before(types.DateOnly(start)) && !day.After(types.DateOnly(end))
	}
	return m.InMemoryStore.List(ctx, nil, filterFn, paymentSort)
}

func paymentSort(i, j *payment.Payment) bool {
	if i.PaymentDate.Equal(j.PaymentDate) {
		return i.ID < j.ID
	}
	return i.PaymentDate.Before(j.PaymentDate)
}
