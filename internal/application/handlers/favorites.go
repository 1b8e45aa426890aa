package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
	"github.com/ersonp/dex-core/internal/infrastructure/parsers"
)

// FavoritesHandler handles favorites commands.
type FavoritesHandler struct {
	favoritesService *services.FavoritesService
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(favoritesService *services.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
	}
}

// ToggleResult reports the membership of an id after a toggle.
type ToggleResult struct {
	ID         entities.EntityID
	IsFavorite bool
}

// Toggle flips the favorite status of id.
func (h *FavoritesHandler) Toggle(ctx context.Context, id entities.EntityID) (*ToggleResult, error) {
	fav, err := h.favoritesService.Toggle(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{ID: id, IsFavorite: fav}, nil
}

// List returns favorite ids in the order they were added.
func (h *FavoritesHandler) List(ctx context.Context) ([]entities.EntityID, error) {
	return h.favoritesService.List(ctx)
}

// Import parses favorites in the given format ("json" or "csv") and adds the new ones.
func (h *FavoritesHandler) Import(ctx context.Context, r io.Reader, format string, opts services.ImportOptions) (*services.ImportResult, error) {
	parser := parsers.ForFormat(format)
	if parser == nil {
		return nil, fmt.Errorf("unsupported format %q (use json or csv)", format)
	}

	raws, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing favorites: %w", err)
	}

	result, err := h.favoritesService.Import(ctx, raws, opts)
	if err != nil {
		return nil, fmt.Errorf("importing favorites: %w", err)
	}
	return result, nil
}
