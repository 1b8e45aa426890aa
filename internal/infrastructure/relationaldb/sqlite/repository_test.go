package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.FavoritesStore = (*Repository)(nil)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(context.Background(), config.FavoritesConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(config.FavoritesConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
		assert.Equal(t, ":memory:", repo.Path())
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(config.FavoritesConfig{Path: ""})
		require.Error(t, err)
	})

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "favorites.db")
		repo, err := NewRepository(config.FavoritesConfig{Path: path})
		require.NoError(t, err)
		defer repo.Close()
		assert.DirExists(t, filepath.Dir(path))
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	var count int
	err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, "favorites").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "table favorites should exist")
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	// Should not error when called again
	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_Toggle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		toggles []entities.EntityID
		want    []entities.EntityID
	}{
		{
			name: "empty",
			want: []entities.EntityID{},
		},
		{
			name:    "adds in order",
			toggles: []entities.EntityID{25, 1, 133},
			want:    []entities.EntityID{25, 1, 133},
		},
		{
			name:    "second toggle removes",
			toggles: []entities.EntityID{25, 1, 25},
			want:    []entities.EntityID{1},
		},
		{
			name:    "re-added id moves to the end",
			toggles: []entities.EntityID{25, 1, 25, 25},
			want:    []entities.EntityID{1, 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupTestRepo(t)
			for _, id := range tt.toggles {
				_, err := repo.Toggle(ctx, id)
				require.NoError(t, err)
			}

			got, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepository_ToggleResult(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	added, err := repo.Toggle(ctx, 6)
	require.NoError(t, err)
	assert.True(t, added)

	ok, err := repo.Contains(ctx, 6)
	require.NoError(t, err)
	assert.True(t, ok)

	added, err = repo.Toggle(ctx, 6)
	require.NoError(t, err)
	assert.False(t, added)

	ok, err = repo.Contains(ctx, 6)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "favorites.db")

	repo, err := Open(ctx, config.FavoritesConfig{Path: path})
	require.NoError(t, err)
	for _, id := range []entities.EntityID{150, 151} {
		_, err := repo.Toggle(ctx, id)
		require.NoError(t, err)
	}
	require.NoError(t, repo.Close())

	reopened, err := Open(ctx, config.FavoritesConfig{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.EntityID{150, 151}, got)
}

func TestRepository_ClosedDatabase(t *testing.T) {
	repo, err := Open(context.Background(), config.FavoritesConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = repo.List(context.Background())
	assert.Error(t, err)
	_, err = repo.Toggle(context.Background(), 1)
	assert.Error(t, err)
}
