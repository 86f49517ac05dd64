package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := DefaultGenerateConfig(5, 5)
	g, err := Generate(cfg, rng)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, 5, g.Rows())

	// terminal cells are never obstacles
	require.True(t, g.HasState(cfg.PosTerminal))
	require.True(t, g.HasState(cfg.NegTerminal))
	assert.Equal(t, 1.0, g.R(cfg.PosTerminal))
	assert.Equal(t, -1.0, g.R(cfg.NegTerminal))
	assert.True(t, g.IsTerminal(cfg.PosTerminal))
	assert.True(t, g.IsTerminal(cfg.NegTerminal))

	for _, s := range g.States() {
		if s != cfg.PosTerminal && s != cfg.NegTerminal {
			assert.Equal(t, cfg.StepReward, g.R(s))
		}
	}
	assert.Empty(t, g.CheckConsistency())
}

func TestGenerateSeedReproducible(t *testing.T) {
	cfg := DefaultGenerateConfig(10, 10)
	a, err := Generate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Generate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.States(), b.States())
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	_, err := Generate(GenerateConfig{Cols: 1, Rows: 5}, nil)
	assert.Error(t, err)

	cfg := DefaultGenerateConfig(3, 3)
	cfg.PosTerminal = Point{5, 5}
	_, err = Generate(cfg, nil)
	assert.Error(t, err)
}

func TestGenerateNoObstacles(t *testing.T) {
	cfg := DefaultGenerateConfig(4, 4)
	cfg.ObstacleProb = 0
	g, err := Generate(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, g.States(), 16)
}
