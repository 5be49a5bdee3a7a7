package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Store persists one cart identity per browsing session.
// Consumers define this interface, not the Redis implementation.
type Store interface {
	Get(ctx context.Context, sessionKey string) (string, error)
	// PutIfAbsent stores id only when no identity exists yet and
	// returns whether the write won.
	PutIfAbsent(ctx context.Context, sessionKey, id string) (bool, error)
	Delete(ctx context.Context, sessionKey string) error
}

var ErrNotFound = errors.New("cart identity not found")

// Manager hands out the durable anonymous cart identity. An identity is
// generated at most once per session; once stored it is never
// regenerated.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// EnsureIdentity returns the persisted identity, creating and storing a
// fresh one only when none exists. Safe to call repeatedly; a lost
// create race falls back to the stored winner.
func (m *Manager) EnsureIdentity(ctx context.Context, sessionKey string) (string, error) {
	id, err := m.store.Get(ctx, sessionKey)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("load cart identity: %w", err)
	}

	fresh := "cart_" + uuid.NewString()
	won, err := m.store.PutIfAbsent(ctx, sessionKey, fresh)
	if err != nil {
		return "", fmt.Errorf("store cart identity: %w", err)
	}
	if won {
		return fresh, nil
	}

	id, err = m.store.Get(ctx, sessionKey)
	if err != nil {
		return "", fmt.Errorf("reload cart identity: %w", err)
	}
	return id, nil
}
