package pokeapi

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
)

// liveClient returns a client against the public API; set INTEGRATION_TEST=1 to enable.
func liveClient(t *testing.T) *Client {
	t.Helper()
	if os.Getenv("INTEGRATION_TEST") != "1" {
		t.Skip("set INTEGRATION_TEST=1 to run against the live catalog")
	}
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	c, err := NewClient(config.Default().Catalog)
	require.NoError(t, err)
	return c
}

func TestLive_AssembleEevee(t *testing.T) {
	c := liveClient(t)

	svc := services.NewSpeciesService(c, services.NewResolver("ko"), nil, nil, nil)
	agg, err := svc.Assemble(t.Context(), 133)
	require.NoError(t, err)

	assert.Equal(t, entities.LocalizedName("이브이"), agg.Name)
	require.NotNil(t, agg.EvolutionTree)
	assert.Equal(t, entities.EntityID(133), agg.EvolutionTree.ID)
	assert.GreaterOrEqual(t, len(agg.EvolutionTree.Children), 8)
	assert.Equal(t, 1, agg.EvolutionTree.CountFocus())
}

func TestLive_CharizardForms(t *testing.T) {
	c := liveClient(t)

	svc := services.NewSpeciesService(c, services.NewResolver("ko"), nil, nil, nil)
	agg, err := svc.Assemble(t.Context(), 6)
	require.NoError(t, err)

	require.Len(t, agg.Forms, 2)
	for _, f := range agg.Forms {
		assert.Equal(t, "MEGA", f.Label)
		assert.NotEmpty(t, f.Types)
	}
}

func TestLive_NotFound(t *testing.T) {
	c := liveClient(t)

	_, err := c.FetchEntity(t.Context(), "999999")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
