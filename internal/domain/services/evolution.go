package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// errNoSpeciesID is returned when a chain node's species ref carries no numeric id.
var errNoSpeciesID = errors.New("species ref has no numeric id")

// ChainBuilder turns a raw evolution chain into an EvolutionNode tree.
type ChainBuilder struct {
	catalog  ports.Catalog
	resolver *Resolver
	logger   *zap.Logger
}

// NewChainBuilder creates a new chain builder.
func NewChainBuilder(catalog ports.Catalog, resolver *Resolver, logger *zap.Logger) *ChainBuilder {
	if resolver == nil {
		resolver = NewResolver(DefaultLocale)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChainBuilder{
		catalog:  catalog,
		resolver: resolver,
		logger:   logger,
	}
}

// Build resolves the whole chain rooted at root. Children whose species
// lookup fails are dropped from their parent; the root itself falls back to
// its canonical ref name. Exactly the node whose id equals focus is marked.
func (b *ChainBuilder) Build(ctx context.Context, root *entities.RawChainNode, focus entities.EntityID) *entities.EvolutionNode {
	return b.build(ctx, b.logger, root, focus)
}

func (b *ChainBuilder) build(ctx context.Context, logger *zap.Logger, root *entities.RawChainNode, focus entities.EntityID) *entities.EvolutionNode {
	if root == nil {
		return nil
	}
	node, err := b.buildNode(ctx, logger, root, focus, true)
	if err != nil {
		// Only reachable when the root's ref has no id; keep a bare node.
		logger.Warn("Evolution root unresolvable",
			zap.String("ref", root.Species.URL),
			zap.Error(err))
		return &entities.EvolutionNode{
			Name:               b.resolver.Resolve(nil, root.Species.Name),
			IncomingConditions: []entities.EvolutionCondition{},
			Children:           []*entities.EvolutionNode{},
		}
	}
	return node
}

func (b *ChainBuilder) buildNode(
	ctx context.Context,
	logger *zap.Logger,
	raw *entities.RawChainNode,
	focus entities.EntityID,
	isRoot bool,
) (*entities.EvolutionNode, error) {
	id, ok := entities.IDFromRef(raw.Species.URL)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errNoSpeciesID, raw.Species.URL)
	}

	var name entities.LocalizedName
	record, err := b.catalog.FetchNamed(ctx, raw.Species.URL)
	switch {
	case err == nil:
		name = b.resolver.Resolve(record.Translations, record.CanonicalName)
	case isRoot:
		logger.Warn("Evolution root name unavailable, using canonical name",
			zap.String("ref", raw.Species.URL),
			zap.Error(err))
		name = b.resolver.Resolve(nil, raw.Species.Name)
	default:
		return nil, fmt.Errorf("fetching species %s: %w", raw.Species.URL, err)
	}

	node := &entities.EvolutionNode{
		ID:      id,
		Name:    name,
		IsFocus: id == focus,
	}

	var g errgroup.Group
	g.Go(func() error {
		node.IncomingConditions = b.resolveConditions(ctx, logger, raw.Conditions)
		return nil
	})
	g.Go(func() error {
		node.Children = b.buildChildren(ctx, logger, raw.EvolvesTo, focus)
		return nil
	})
	_ = g.Wait()

	return node, nil
}

// buildChildren builds siblings concurrently; each goroutine owns one slot.
func (b *ChainBuilder) buildChildren(
	ctx context.Context,
	logger *zap.Logger,
	raws []entities.RawChainNode,
	focus entities.EntityID,
) []*entities.EvolutionNode {
	slots := make([]*entities.EvolutionNode, len(raws))
	var g errgroup.Group
	for i := range raws {
		g.Go(func() error {
			child, err := b.buildNode(ctx, logger, &raws[i], focus, false)
			if err != nil {
				logger.Warn("Dropping evolution branch",
					zap.String("species", raws[i].Species.Name),
					zap.Error(err))
				return nil
			}
			slots[i] = child
			return nil
		})
	}
	_ = g.Wait()

	children := make([]*entities.EvolutionNode, 0, len(slots))
	for _, c := range slots {
		if c != nil {
			children = append(children, c)
		}
	}
	return children
}

func (b *ChainBuilder) resolveConditions(ctx context.Context, logger *zap.Logger, raws []entities.RawCondition) []entities.EvolutionCondition {
	conditions := make([]entities.EvolutionCondition, len(raws))
	var g errgroup.Group
	for i := range raws {
		g.Go(func() error {
			raw := raws[i]
			conditions[i] = entities.EvolutionCondition{
				Trigger:      entities.ParseTrigger(raw.Trigger),
				MinLevel:     raw.MinLevel,
				Item:         b.resolveRef(ctx, logger, raw.Item),
				MinHappiness: raw.MinHappiness,
				TimeOfDay:    entities.ParseTimeOfDay(raw.TimeOfDay),
				Location:     b.resolveRef(ctx, logger, raw.Location),
			}
			return nil
		})
	}
	_ = g.Wait()
	return conditions
}

// resolveRef looks up an item or location name. Failures yield UnknownName.
func (b *ChainBuilder) resolveRef(ctx context.Context, logger *zap.Logger, ref *entities.NamedRef) *entities.ResolvedName {
	if ref == nil {
		return nil
	}
	record, err := b.catalog.FetchNamed(ctx, ref.URL)
	if err != nil {
		logger.Warn("Name lookup failed",
			zap.String("ref", ref.URL),
			zap.Error(err))
		return &entities.ResolvedName{Name: entities.UnknownName, Unresolved: true}
	}
	return &entities.ResolvedName{Name: b.resolver.Resolve(record.Translations, record.CanonicalName)}
}
