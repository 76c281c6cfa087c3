package service

import (
	"context"
)

// Repository defines the interface for service persistence
type Repository interface {
	Create(ctx context.Context, service *Service) error
	Get(ctx context.Context, id string) (*Service, error)
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Service, error)
	ListByClient(ctx context.Context, clientID string) ([]*Service, error)
}
