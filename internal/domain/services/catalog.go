package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

const (
	// DefaultListLimit covers the first six generations.
	DefaultListLimit = 721
	// DefaultListConcurrency bounds concurrent name lookups while listing.
	DefaultListConcurrency = 16
)

// CatalogOptions configures the listing service.
type CatalogOptions struct {
	Concurrency   int
	SpriteBaseURL string
}

// CatalogService lists and searches catalog entries with localized names.
type CatalogService struct {
	catalog  ports.Catalog
	resolver *Resolver
	opts     CatalogOptions
	logger   *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog ports.Catalog, resolver *Resolver, opts CatalogOptions, logger *zap.Logger) *CatalogService {
	if resolver == nil {
		resolver = NewResolver(DefaultLocale)
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultListConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		catalog:  catalog,
		resolver: resolver,
		opts:     opts,
		logger:   logger,
	}
}

// List returns the first limit entries with localized names.
// A failed name lookup falls back to the canonical name.
func (s *CatalogService) List(ctx context.Context, limit int) ([]entities.CatalogEntry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	page, err := s.catalog.ListEntities(ctx, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}

	entries := make([]entities.CatalogEntry, len(page.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, ref := range page.Results {
		id, ok := entities.IDFromRef(ref.URL)
		if !ok {
			id = entities.EntityID(i + 1)
		}
		entries[i] = entities.CatalogEntry{
			ID:            id,
			CanonicalName: ref.Name,
			Name:          s.resolver.Resolve(nil, ref.Name),
			SpriteRef:     s.spriteRef(id),
		}
		g.Go(func() error {
			record, err := s.catalog.FetchNamed(gctx, speciesRef(ref.URL, id))
			if err != nil {
				s.logger.Debug("Listing name lookup failed",
					zap.Int("entity_id", int(id)),
					zap.Error(err))
				return nil
			}
			entries[i].Name = s.resolver.Resolve(record.Translations, ref.Name)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	return entries, nil
}

// Search filters the listing by a case-insensitive substring of either name.
// A blank term returns the full listing.
func (s *CatalogService) Search(ctx context.Context, term string, limit int) ([]entities.CatalogEntry, error) {
	all, err := s.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return FilterEntries(all, term), nil
}

// FilterEntries keeps entries whose canonical or localized name contains term.
func FilterEntries(all []entities.CatalogEntry, term string) []entities.CatalogEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all
	}
	matched := make([]entities.CatalogEntry, 0, len(all))
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.CanonicalName), term) ||
			strings.Contains(strings.ToLower(string(e.Name)), term) {
			matched = append(matched, e)
		}
	}
	return matched
}

func (s *CatalogService) spriteRef(id entities.EntityID) string {
	if s.opts.SpriteBaseURL == "" {
		return ""
	}
	return strings.TrimRight(s.opts.SpriteBaseURL, "/") + "/" + id.String() + ".png"
}

// speciesRef maps an entity listing URL onto the matching species resource.
func speciesRef(entityURL string, id entities.EntityID) string {
	if i := strings.LastIndex(entityURL, "/pokemon/"); i >= 0 {
		return entityURL[:i] + "/pokemon-species/" + id.String() + "/"
	}
	return id.String()
}
