package testutil

import (
	"context"

	"github.com/billtrack/billtrack/internal/domain/service"
	ierr "github.com/billtrack/billtrack/internal/errors"
)

// InMemoryServiceStore implements service.Repository
type InMemoryServiceStore struct {
	*InMemoryStore[*service.Service]
}

// NewInMemoryServiceStore creates a new in-memory service repository
func NewInMemoryServiceStore() *InMemoryServiceStore {
	return &InMemoryServiceStore{
		InMemoryStore: NewInMemoryStore[*service.Service](),
	}
}

func (m *InMemoryServiceStore) Create(ctx context.Context, s *service.Service) error {
	if s == nil {
		return ierr.NewError("service cannot be nil").
			WithHint("Service cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if s.ID == "" {
		return ierr.NewError("service ID cannot be empty").
			WithHint("Service ID cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return m.InMemoryStore.Create(ctx, s.ID, s)
}

func (m *InMemoryServiceStore) Get(ctx context.Context, id string) (*service.Service, error) {
	s, err := m.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("service not found").
			WithHintf("Service with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return s, nil
}

func (m *InMemoryServiceStore) Update(ctx context.Context, s *service.Service) error {
	if s == nil {
		return ierr.NewError("service cannot be nil").
			WithHint("Service cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return m.InMemoryStore.Update(ctx, s.ID, s)
}

func (m *InMemoryServiceStore) Delete(ctx context.Context, id string) error {
	return m.InMemoryStore.Delete(ctx, id)
}

func (m *InMemoryServiceStore) List(ctx context.Context) ([]*service.Service, error) {
	return m.InMemoryStore.List(ctx, nil, nil, func(i, j *service.Service) bool {
		return i.ID < j.ID
	})
}

func (m *InMemoryServiceStore) ListByClient(ctx context.Context, clientID string) ([]*service.Service, error) {
	filterFn := func(_ context.Context, s *service.Service, _ interface{}) bool {
		return s.ClientID == clientID
	}
	return m.InMemoryStore.List(ctx, nil, filterFn, func(i, j *service.Service) bool {
		return i.ID < j.ID
	})
}
