package testutil

import (
	"context"

	"github.com/billtrack/billtrack/internal/domain/client"
	ierr "github.com/billtrack/billtrack/internal/errors"
)

// InMemoryClientStore implements client.Repository
type InMemoryClientStore struct {
	*InMemoryStore[*client.Client]
}

// NewInMemoryClientStore creates a new in-memory client repository
func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		InMemoryStore: NewInMemoryStore[*client.Client](),
	}
}

func (m *InMemoryClientStore) Create(ctx context.Context, c *client.Client) error {
	if c == nil {
		return ierr.NewError("client cannot be nil").
			WithHint("Client cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if c.ID == "" {
		return ierr.NewError("client ID cannot be empty").
			WithHint("Client ID cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return m.InMemoryStore.Create(ctx, c.ID, c)
}

func (m *InMemoryClientStore) Get(ctx context.Context, id string) (*client.Client, error) {
	c, err := m.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("client not found").
			WithHintf("Client with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}

func (m *InMemoryClientStore) Update(ctx context.Context, c *client.Client) error {
	if c == nil {
		return ierr.NewError("client cannot be nil").
			WithHint("Client cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return m.InMemoryStore.Update(ctx, c.ID, c)
}

func (m *InMemoryClientStore) Delete(ctx context.Context, id string) error {
	return m.InMemoryStore.Delete(ctx, id)
}

func (m *InMemoryClientStore) List(ctx context.Context) ([]*client.Client, error) {
	return m.InMemoryStore.List(ctx, nil, nil, func(i, j *client.Client) bool {
		return i.ID < j.ID
	})
}
