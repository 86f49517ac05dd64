package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	erand "golang.org/x/exp/rand"

	"github.com/zeu5/grid-mdp/core"
	"github.com/zeu5/grid-mdp/grid"
)

func TestRolloutReachesTerminal(t *testing.T) {
	g := twoByTwo(t)
	pi, _, err := NewPolicyIteration[grid.Point, core.Heading](0, rand.New(rand.NewSource(1))).Solve(g)
	require.NoError(t, err)

	src := erand.NewSource(9)
	for i := 0; i < 20; i++ {
		res, err := Rollout(g, pi, 1000, src)
		require.NoError(t, err)
		assert.True(t, res.Terminated)
		last := res.States[len(res.States)-1]
		assert.True(t, g.IsTerminal(last))
		assert.Equal(t, res.Steps, len(res.States)-1)
	}
}

func TestRolloutHorizonCutoff(t *testing.T) {
	// no terminals: the walk runs out the horizon
	g, err := grid.New(grid.Config{
		Rows: [][]grid.Cell{
			{grid.Reward(-0.04), grid.Reward(-0.04)},
			{grid.Reward(-0.04), grid.Reward(-0.04)},
		},
	})
	require.NoError(t, err)

	pi := make(map[grid.Point]core.Heading)
	for _, s := range g.States() {
		pi[s] = core.East
	}

	res, err := Rollout(g, pi, 25, erand.NewSource(3))
	require.NoError(t, err)
	assert.False(t, res.Terminated)
	assert.Equal(t, 25, res.Steps)
}

func TestRolloutDiscountsRewards(t *testing.T) {
	g := twoByTwo(t)
	pi, _, err := NewPolicyIteration[grid.Point, core.Heading](0, rand.New(rand.NewSource(2))).Solve(g)
	require.NoError(t, err)

	// (0,1) is one step west of the +1 terminal
	res, err := Rollout(g, pi, 100, erand.NewSource(1))
	require.NoError(t, err)
	require.True(t, res.Terminated)
	// return is bounded by stepping straight into +1 from the start
	assert.LessOrEqual(t, res.Return, -0.04+0.9*(-0.04)+0.9*0.9*1.0+1e-9)
}
