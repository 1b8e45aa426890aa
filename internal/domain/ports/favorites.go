package ports

import (
	"context"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// FavoritesStore is an ordered set of entity ids with persistence.
type FavoritesStore interface {
	// List returns favorites in insertion order.
	List(ctx context.Context) ([]entities.EntityID, error)

	// Contains reports whether id is a favorite.
	Contains(ctx context.Context, id entities.EntityID) (bool, error)

	// Toggle adds id at the end or removes it. It returns true if id is a favorite afterwards.
	Toggle(ctx context.Context, id entities.EntityID) (bool, error)

	// Close releases the underlying storage.
	Close() error
}
