package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeu5/grid-mdp/core"
)

// the 4x3 world from AIMA figure 17.1
func fourByThree(t *testing.T) *GridMDP {
	t.Helper()
	g, err := New(Config{
		Rows: [][]Cell{
			{Reward(-0.04), Reward(-0.04), Reward(-0.04), Reward(1)},
			{Reward(-0.04), Obstacle(), Reward(-0.04), Reward(-1)},
			{Reward(-0.04), Reward(-0.04), Reward(-0.04), Reward(-0.04)},
		},
		Terminals: []Point{{3, 2}, {3, 1}},
	})
	require.NoError(t, err)
	return g
}

func TestNewRejectsEmptyGrid(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = New(Config{Rows: [][]Cell{{}}})
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestNewRejectsRaggedGrid(t *testing.T) {
	_, err := New(Config{
		Rows: [][]Cell{
			{Reward(1), Reward(1)},
			{Reward(1)},
		},
	})
	assert.Error(t, err)
}

func TestRowReversal(t *testing.T) {
	// top-left of the written grid is (0, rows-1)
	g, err := New(Config{
		Rows: [][]Cell{
			{Reward(3), Reward(4)},
			{Reward(1), Reward(2)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, g.R(Point{0, 0}))
	assert.Equal(t, 2.0, g.R(Point{1, 0}))
	assert.Equal(t, 3.0, g.R(Point{0, 1}))
	assert.Equal(t, 4.0, g.R(Point{1, 1}))
}

func TestObstaclesAreNotStates(t *testing.T) {
	g := fourByThree(t)

	assert.Len(t, g.States(), 11)
	assert.False(t, g.HasState(Point{1, 1}))

	for _, s := range g.States() {
		for _, a := range core.Orientations() {
			outcomes, err := g.T(s, a)
			require.NoError(t, err)
			for _, o := range outcomes {
				assert.NotEqual(t, Point{1, 1}, o.Next,
					"obstacle reachable from %v by %v", s, a)
			}
		}
	}
}

func TestOutcomeProbabilitiesSumToOne(t *testing.T) {
	g := fourByThree(t)
	for _, s := range g.States() {
		for _, a := range core.Orientations() {
			outcomes, err := g.T(s, a)
			require.NoError(t, err)
			require.Len(t, outcomes, 3)
			assert.Equal(t, 0.8, outcomes[0].Prob)
			assert.Equal(t, 0.1, outcomes[1].Prob)
			assert.Equal(t, 0.1, outcomes[2].Prob)

			sum := 0.0
			for _, o := range outcomes {
				sum += o.Prob
			}
			assert.InDelta(t, 1.0, sum, 1e-3)
		}
	}
}

func TestMoveBouncesBack(t *testing.T) {
	g := fourByThree(t)

	// off the west edge
	assert.Equal(t, Point{0, 0}, g.Move(Point{0, 0}, core.West))
	// off the south edge
	assert.Equal(t, Point{0, 0}, g.Move(Point{0, 0}, core.South))
	// into the obstacle at (1,1)
	assert.Equal(t, Point{1, 0}, g.Move(Point{1, 0}, core.North))
	assert.Equal(t, Point{1, 2}, g.Move(Point{1, 2}, core.South))
	// a legal move
	assert.Equal(t, Point{1, 0}, g.Move(Point{0, 0}, core.East))
}

func TestTerminalConvention(t *testing.T) {
	g := fourByThree(t)
	terminal := Point{3, 2}

	assert.Equal(t, []core.Heading{core.NoAction}, g.Actions(terminal))

	outcomes, err := g.T(terminal, core.NoAction)
	require.NoError(t, err)
	// zero-probability self loop, deliberately not a distribution
	assert.Equal(t, []core.Outcome[Point]{{Prob: 0.0, Next: terminal}}, outcomes)
}

func TestConsistency(t *testing.T) {
	g := fourByThree(t)
	assert.Empty(t, g.CheckConsistency())
}

func TestToArrows(t *testing.T) {
	g := fourByThree(t)

	policy := make(map[Point]core.Heading)
	for _, s := range g.States() {
		if g.IsTerminal(s) {
			policy[s] = core.NoAction
		} else {
			policy[s] = core.East
		}
	}

	arrows := g.ToArrows(policy)
	require.Len(t, arrows, 3)
	assert.Equal(t, []string{">", ">", ">", "."}, arrows[0])
	assert.Equal(t, []string{">", "", ">", "."}, arrows[1])
	assert.Equal(t, []string{">", ">", ">", ">"}, arrows[2])
}

func TestToGrid(t *testing.T) {
	g := fourByThree(t)
	u := make(map[Point]float64, len(g.States()))
	for _, s := range g.States() {
		u[s] = float64(s.X + s.Y)
	}

	rows := ToGrid(g, u)
	require.Len(t, rows, 3)
	// top row first: y = 2
	assert.Equal(t, []float64{2, 3, 4, 5}, rows[0])
	// obstacle stays at the zero value
	assert.Equal(t, 0.0, rows[1][1])
	assert.Equal(t, []float64{0, 1, 2, 3}, rows[2])
}
