// Package sqlite provides a SQLite implementation of the FavoritesStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const memoryPath = ":memory:"

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.FavoritesStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository opens (creating if needed) the favorites database.
func NewRepository(cfg config.FavoritesConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if cfg.Path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Each pooled connection to :memory: would see its own database
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Open opens the repository and ensures its schema.
func Open(ctx context.Context, cfg config.FavoritesConfig) (*Repository, error) {
	repo, err := NewRepository(cfg)
	if err != nil {
		return nil, err
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		repo.Close()
		return nil, err
	}
	return repo, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Favorite entities, ordered by when they were added
	CREATE TABLE IF NOT EXISTS favorites (
		entity_id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_favorites_position ON favorites(position);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// List returns favorite ids in insertion order.
func (r *Repository) List(ctx context.Context) ([]entities.EntityID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT entity_id FROM favorites ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	ids := make([]entities.EntityID, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		ids = append(ids, entities.EntityID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating favorites: %w", err)
	}
	return ids, nil
}

// Contains reports whether id is a favorite.
func (r *Repository) Contains(ctx context.Context, id entities.EntityID) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites WHERE entity_id = ?`, int64(id)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return count > 0, nil
}

// Toggle removes id if present, otherwise appends it.
// It returns true if id is a favorite afterwards.
func (r *Repository) Toggle(ctx context.Context, id entities.EntityID) (added bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE entity_id = ?`, int64(id))
	if err != nil {
		return false, fmt.Errorf("removing favorite: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking removal: %w", err)
	}

	if removed == 0 {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO favorites (entity_id, position, created_at)
			VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM favorites), ?)`,
			int64(id), timeNow())
		if err != nil {
			return false, fmt.Errorf("adding favorite: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("committing favorite toggle: %w", err)
	}
	return removed == 0, nil
}
