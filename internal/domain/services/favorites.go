package services

import (
	"context"
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// FavoritesService manages the local favorites set.
type FavoritesService struct {
	store ports.FavoritesStore
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(store ports.FavoritesStore) *FavoritesService {
	return &FavoritesService{store: store}
}

// Toggle flips membership of id and returns whether it is now a favorite.
func (s *FavoritesService) Toggle(ctx context.Context, id entities.EntityID) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: %d", entities.ErrInvalidID, id)
	}
	added, err := s.store.Toggle(ctx, id)
	if err != nil {
		return false, fmt.Errorf("toggling favorite: %w", err)
	}
	return added, nil
}

// List returns favorites in the order they were added.
func (s *FavoritesService) List(ctx context.Context) ([]entities.EntityID, error) {
	ids, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	return ids, nil
}

// IsFavorite reports whether id is in the favorites set.
func (s *FavoritesService) IsFavorite(ctx context.Context, id entities.EntityID) (bool, error) {
	ok, err := s.store.Contains(ctx, id)
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return ok, nil
}
