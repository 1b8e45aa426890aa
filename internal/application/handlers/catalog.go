package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// CatalogHandler handles listing and searching the catalog.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// CatalogResult contains listing rows and the search term that produced them.
type CatalogResult struct {
	Term    string
	Entries []entities.CatalogEntry
}

// List returns the first limit entries of the catalog.
func (h *CatalogHandler) List(ctx context.Context, limit int) (*CatalogResult, error) {
	entries, err := h.catalogService.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	return &CatalogResult{Entries: entries}, nil
}

// Search returns entries among the first limit whose names contain term.
func (h *CatalogHandler) Search(ctx context.Context, term string, limit int) (*CatalogResult, error) {
	entries, err := h.catalogService.Search(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	return &CatalogResult{Term: term, Entries: entries}, nil
}
