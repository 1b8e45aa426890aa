// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// Catalog is the remote species catalog. Every call is independently fallible;
// implementations report entities.ErrNotFound for missing resources and
// entities.ErrUnavailable for transport or decoding failures.
type Catalog interface {
	// FetchEntity fetches a base entity by id, name, or resource URL.
	FetchEntity(ctx context.Context, ref string) (*entities.RawEntity, error)

	// FetchSpeciesMeta fetches species metadata by id, name, or resource URL.
	FetchSpeciesMeta(ctx context.Context, ref string) (*entities.RawSpecies, error)

	// FetchChain fetches the root of an evolution chain.
	FetchChain(ctx context.Context, ref string) (*entities.RawChainNode, error)

	// FetchNamed fetches any named resource (species, item, location) for name resolution.
	FetchNamed(ctx context.Context, ref string) (*entities.NamedRecord, error)

	// ListEntities returns one page of the entity listing.
	ListEntities(ctx context.Context, limit, offset int) (*entities.EntityPage, error)
}
