package payment

import (
	"context"
	"time"
)

// Repository defines the interface for payment persistence
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context) ([]*Payment, error)
	ListByClient(ctx context.Context, clientID string) ([]*Payment, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]*Payment, error)
}
