package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// SpeciesService assembles SpeciesAggregates from the catalog.
type SpeciesService struct {
	catalog  ports.Catalog
	resolver *Resolver
	forms    *FormAggregator
	chains   *ChainBuilder
	logger   *zap.Logger
}

// NewSpeciesService creates a new species service.
func NewSpeciesService(
	catalog ports.Catalog,
	resolver *Resolver,
	forms *FormAggregator,
	chains *ChainBuilder,
	logger *zap.Logger,
) *SpeciesService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if resolver == nil {
		resolver = NewResolver(DefaultLocale)
	}
	if forms == nil {
		forms = NewFormAggregator(catalog, nil, logger)
	}
	if chains == nil {
		chains = NewChainBuilder(catalog, resolver, logger)
	}
	return &SpeciesService{
		catalog:  catalog,
		resolver: resolver,
		forms:    forms,
		chains:   chains,
		logger:   logger,
	}
}

// Locale returns the preferred locale names are resolved against.
func (s *SpeciesService) Locale() string {
	return s.resolver.Locale()
}

// Assemble builds the complete aggregate for one entity.
// It fails with entities.ErrNotFound when the entity does not exist and with
// entities.ErrUnavailable when any of the base entity, species metadata, or
// evolution chain calls fail. Every other failure degrades the result instead.
func (s *SpeciesService) Assemble(ctx context.Context, id entities.EntityID) (*entities.SpeciesAggregate, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", entities.ErrInvalidID, id)
	}
	logger := s.logger.With(
		zap.String("request_id", uuid.New().String()),
		zap.Int("entity_id", int(id)))

	entity, err := s.catalog.FetchEntity(ctx, id.String())
	if err != nil {
		return nil, requiredCallError("fetching entity", err, true)
	}

	species, err := s.catalog.FetchSpeciesMeta(ctx, entity.SpeciesRef)
	if err != nil {
		return nil, requiredCallError("fetching species", err, false)
	}

	agg := &entities.SpeciesAggregate{
		ID:            entity.ID,
		CanonicalName: entity.Name,
		Types:         slices.Clone(entity.Types),
		Stats:         slices.Clone(entity.Stats),
		SpriteRef:     entity.SpriteRef,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		agg.Name = s.resolver.Resolve(species.Translations, entity.Name)
		return nil
	})
	g.Go(func() error {
		agg.Forms = s.forms.aggregate(gctx, logger, entity.Name, species.Variants)
		return nil
	})
	g.Go(func() error {
		tree, err := s.buildTree(gctx, logger, species, entity)
		if err != nil {
			return err
		}
		agg.EvolutionTree = tree
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("assembling %d: %w", id, err)
	}

	logger.Debug("Assembled species",
		zap.Int("forms", len(agg.Forms)),
		zap.Int("focus_nodes", agg.EvolutionTree.CountFocus()))

	return agg, nil
}

func (s *SpeciesService) buildTree(
	ctx context.Context,
	logger *zap.Logger,
	species *entities.RawSpecies,
	entity *entities.RawEntity,
) (*entities.EvolutionNode, error) {
	focus := species.ID
	if focus == 0 {
		focus = entity.ID
	}

	if species.ChainRef == "" {
		return &entities.EvolutionNode{
			ID:                 focus,
			Name:               s.resolver.Resolve(species.Translations, species.Name),
			IncomingConditions: []entities.EvolutionCondition{},
			Children:           []*entities.EvolutionNode{},
			IsFocus:            true,
		}, nil
	}

	root, err := s.catalog.FetchChain(ctx, species.ChainRef)
	if err != nil {
		return nil, requiredCallError("fetching evolution chain", err, false)
	}
	return s.chains.build(ctx, logger, root, focus), nil
}

// requiredCallError maps a failed required call onto the aggregation taxonomy.
// Only the base entity lookup may surface ErrNotFound; everything else is ErrUnavailable.
func requiredCallError(op string, err error, notFoundAllowed bool) error {
	if errors.Is(err, entities.ErrUnavailable) || (notFoundAllowed && errors.Is(err, entities.ErrNotFound)) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, entities.ErrUnavailable, err)
}
