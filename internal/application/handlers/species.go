// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// SpeciesHandler handles the detail view of one entity.
type SpeciesHandler struct {
	speciesService   *services.SpeciesService
	favoritesService *services.FavoritesService
}

// NewSpeciesHandler creates a new species handler.
func NewSpeciesHandler(speciesService *services.SpeciesService, favoritesService *services.FavoritesService) *SpeciesHandler {
	return &SpeciesHandler{
		speciesService:   speciesService,
		favoritesService: favoritesService,
	}
}

// TreeLine is one node of the evolution tree flattened for display.
type TreeLine struct {
	Depth     int
	ID        entities.EntityID
	Name      entities.LocalizedName
	Condition string
	IsFocus   bool
}

// SpeciesResult contains the assembled aggregate and display data.
type SpeciesResult struct {
	Aggregate  *entities.SpeciesAggregate
	IsFavorite bool
	Tree       []TreeLine
	// Locale is the preferred locale the names were resolved against.
	Locale string
}

// Handle assembles the aggregate for id.
func (h *SpeciesHandler) Handle(ctx context.Context, id entities.EntityID) (*SpeciesResult, error) {
	agg, err := h.speciesService.Assemble(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("assembling species %d: %w", id, err)
	}

	result := &SpeciesResult{
		Aggregate: agg,
		Tree:      FlattenTree(agg.EvolutionTree),
		Locale:    h.speciesService.Locale(),
	}

	if h.favoritesService != nil {
		fav, err := h.favoritesService.IsFavorite(ctx, agg.ID)
		if err != nil {
			return nil, err
		}
		result.IsFavorite = fav
	}

	return result, nil
}

// FlattenTree lists the nodes of root in pre-order. The root line carries no condition.
func FlattenTree(root *entities.EvolutionNode) []TreeLine {
	var lines []TreeLine
	root.Walk(func(node *entities.EvolutionNode, depth int) {
		line := TreeLine{
			Depth:   depth,
			ID:      node.ID,
			Name:    node.Name,
			IsFocus: node.IsFocus,
		}
		if depth > 0 {
			line.Condition = services.FormatConditions(node.IncomingConditions)
		}
		lines = append(lines, line)
	})
	return lines
}
