package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/services"
	"github.com/ersonp/dex-core/internal/infrastructure/catalog/pokeapi"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
	"github.com/ersonp/dex-core/internal/infrastructure/logging"
	"github.com/ersonp/dex-core/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config           *config.Config
	Logger           *zap.Logger
	FavoritesPath    string
	SpeciesHandler   *handlers.SpeciesHandler
	CatalogHandler   *handlers.CatalogHandler
	FavoritesHandler *handlers.FavoritesHandler
}

// loadConfig loads config from the working directory and applies global flags.
func loadConfig() (*config.Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}

	if globalLocale != "" {
		cfg.Locale.Preferred = globalLocale
		if err := cfg.Validate(); err != nil {
			return nil, "", fmt.Errorf("invalid --locale: %w", err)
		}
	}

	return cfg, cwd, nil
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cfg, cwd, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, globalVerbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

	client, err := pokeapi.NewClient(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("creating catalog client: %w", err)
	}

	favoritesDB, err := sqlite.Open(ctx, config.FavoritesConfig{Path: cfg.FavoritesPath(cwd)})
	if err != nil {
		return fmt.Errorf("opening favorites database: %w", err)
	}
	defer favoritesDB.Close()

	resolver := services.NewResolver(cfg.Locale.Preferred)
	forms := services.NewFormAggregator(client, services.NewDefaultFormClassifier(), logger)
	chains := services.NewChainBuilder(client, resolver, logger)
	speciesService := services.NewSpeciesService(client, resolver, forms, chains, logger)
	catalogService := services.NewCatalogService(client, resolver, services.CatalogOptions{
		Concurrency:   cfg.Catalog.ListConcurrency,
		SpriteBaseURL: cfg.Catalog.SpriteBaseURL,
	}, logger)
	favoritesService := services.NewFavoritesService(favoritesDB)

	deps := &Deps{
		Config:           cfg,
		Logger:           logger,
		FavoritesPath:    favoritesDB.Path(),
		SpeciesHandler:   handlers.NewSpeciesHandler(speciesService, favoritesService),
		CatalogHandler:   handlers.NewCatalogHandler(catalogService),
		FavoritesHandler: handlers.NewFavoritesHandler(favoritesService),
	}

	return fn(deps)
}
