package grid

import (
	"errors"
	"fmt"

	"github.com/zeu5/grid-mdp/core"
)

var ErrEmptyGrid = errors.New("grid has no rows")

// Point is a cell coordinate: x grows east, y grows north.
type Point struct {
	X int
	Y int
}

func (p Point) Add(h core.Heading) Point {
	return Point{p.X + h.X, p.Y + h.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is one grid square: a reward value or an obstacle. Obstacles are
// holes in the state space, not states with a penalty.
type Cell struct {
	reward   float64
	obstacle bool
}

func Reward(v float64) Cell {
	return Cell{reward: v}
}

func Obstacle() Cell {
	return Cell{obstacle: true}
}

func (c Cell) IsObstacle() bool {
	return c.obstacle
}

func (c Cell) Reward() float64 {
	return c.reward
}

// Config describes a gridworld. Rows are given top row first, the way a
// grid is written down; construction flips them once so y=0 is the
// bottom row.
type Config struct {
	Rows      [][]Cell
	Terminals []Point
	Init      Point
	Gamma     float64
}

// GridMDP specializes MDP to a two-dimensional grid with slippery
// movement: the intended heading is followed with probability 0.8, and
// with probability 0.1 each the agent slips to the heading 90 degrees
// clockwise or counter-clockwise. Moves into obstacles or off the grid
// bounce back to the current cell.
type GridMDP struct {
	*core.MDP[Point, core.Heading]

	rows  int
	cols  int
	cells [][]Cell // bottom row first
}

func New(cfg Config) (*GridMDP, error) {
	if len(cfg.Rows) == 0 || len(cfg.Rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	rows := len(cfg.Rows)
	cols := len(cfg.Rows[0])

	// flip so that row index grows upward
	cells := make([][]Cell, rows)
	for y := 0; y < rows; y++ {
		src := cfg.Rows[rows-1-y]
		if len(src) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", rows-1-y, len(src), cols)
		}
		cells[y] = make([]Cell, cols)
		copy(cells[y], src)
	}

	g := &GridMDP{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}

	states := make([]Point, 0, rows*cols)
	rewards := make(map[Point]float64)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			if cells[y][x].IsObstacle() {
				continue
			}
			s := Point{x, y}
			states = append(states, s)
			rewards[s] = cells[y][x].Reward()
		}
	}

	transitions := make(map[Point]map[core.Heading][]core.Outcome[Point], len(states))
	for _, s := range states {
		transitions[s] = make(map[core.Heading][]core.Outcome[Point], 4)
		for _, a := range core.Orientations() {
			transitions[s][a] = g.directionalOutcomes(s, a)
		}
	}

	mdp, err := core.New(core.Params[Point, core.Heading]{
		Init:        cfg.Init,
		Actions:     core.UniformActions[Point](core.Orientations()),
		Terminals:   cfg.Terminals,
		Transitions: transitions,
		Rewards:     rewards,
		States:      states,
		Gamma:       cfg.Gamma,
	})
	if err != nil {
		return nil, err
	}
	g.MDP = mdp
	return g, nil
}

// directionalOutcomes is the slippery movement model for one state and
// heading.
func (g *GridMDP) directionalOutcomes(s Point, a core.Heading) []core.Outcome[Point] {
	if a.IsNoAction() {
		return []core.Outcome[Point]{{Prob: 0.0, Next: s}}
	}
	return []core.Outcome[Point]{
		{Prob: 0.8, Next: g.Move(s, a)},
		{Prob: 0.1, Next: g.Move(s, a.TurnRight())},
		{Prob: 0.1, Next: g.Move(s, a.TurnLeft())},
	}
}

// T overrides the table lookup for the no-action case: terminal states
// get a zero-probability self loop so they contribute nothing to the
// expected utility of staying put. This is a deliberate convention, not
// a probability distribution; do not normalize it to 1.
func (g *GridMDP) T(s Point, a core.Heading) ([]core.Outcome[Point], error) {
	if a.IsNoAction() {
		return []core.Outcome[Point]{{Prob: 0.0, Next: s}}, nil
	}
	return g.MDP.T(s, a)
}

// Move returns the state one step in the given heading, or s itself
// when the step leads into an obstacle or off the grid.
func (g *GridMDP) Move(s Point, h core.Heading) Point {
	next := s.Add(h)
	if g.passable(next) {
		return next
	}
	return s
}

func (g *GridMDP) passable(p Point) bool {
	if p.X < 0 || p.X >= g.cols || p.Y < 0 || p.Y >= g.rows {
		return false
	}
	return !g.cells[p.Y][p.X].IsObstacle()
}

func (g *GridMDP) Rows() int {
	return g.rows
}

func (g *GridMDP) Cols() int {
	return g.cols
}

var _ core.Model[Point, core.Heading] = &GridMDP{}
