package mocks

import (
	"context"
	"slices"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// FavoritesStore is a mock implementation of ports.FavoritesStore.
type FavoritesStore struct {
	IDs []entities.EntityID
	Err error
}

// List returns the configured ids or error.
func (m *FavoritesStore) List(_ context.Context) ([]entities.EntityID, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return slices.Clone(m.IDs), nil
}

// Contains reports membership.
func (m *FavoritesStore) Contains(_ context.Context, id entities.EntityID) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return slices.Contains(m.IDs, id), nil
}

// Toggle adds or removes id.
func (m *FavoritesStore) Toggle(_ context.Context, id entities.EntityID) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if i := slices.Index(m.IDs, id); i >= 0 {
		m.IDs = slices.Delete(m.IDs, i, i+1)
		return false, nil
	}
	m.IDs = append(m.IDs, id)
	return true, nil
}

// Close is a no-op.
func (m *FavoritesStore) Close() error {
	return nil
}
