package grid

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateConfig describes a randomized environment: a Cols x Rows grid
// of step-reward cells, each independently turned into an obstacle with
// ObstacleProb, plus a +1 and a -1 terminal. Terminal cells are never
// obstacles.
type GenerateConfig struct {
	Cols         int
	Rows         int
	PosTerminal  Point
	NegTerminal  Point
	ObstacleProb float64
	StepReward   float64
	Gamma        float64
}

func DefaultGenerateConfig(cols, rows int) GenerateConfig {
	return GenerateConfig{
		Cols:         cols,
		Rows:         rows,
		PosTerminal:  Point{cols - 1, rows - 1},
		NegTerminal:  Point{cols - 1, rows - 2},
		ObstacleProb: 0.1,
		StepReward:   -0.04,
	}
}

// Generate builds a random GridMDP. A nil rng is seeded from the clock.
func Generate(cfg GenerateConfig, rng *rand.Rand) (*GridMDP, error) {
	if cfg.Cols < 2 || cfg.Rows < 2 {
		return nil, fmt.Errorf("grid must be at least 2x2, got %dx%d", cfg.Cols, cfg.Rows)
	}
	if !cfg.inBounds(cfg.PosTerminal) || !cfg.inBounds(cfg.NegTerminal) {
		return nil, fmt.Errorf("terminals %v, %v outside %dx%d grid", cfg.PosTerminal, cfg.NegTerminal, cfg.Cols, cfg.Rows)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rows := make([][]Cell, cfg.Rows)
	for r := 0; r < cfg.Rows; r++ {
		row := make([]Cell, cfg.Cols)
		for c := 0; c < cfg.Cols; c++ {
			if rng.Float64() < cfg.ObstacleProb {
				row[c] = Obstacle()
			} else {
				row[c] = Reward(cfg.StepReward)
			}
		}
		rows[r] = row
	}

	// rows are handed over top row first, so y maps to rows-1-y
	rows[cfg.Rows-1-cfg.PosTerminal.Y][cfg.PosTerminal.X] = Reward(1)
	rows[cfg.Rows-1-cfg.NegTerminal.Y][cfg.NegTerminal.X] = Reward(-1)

	// keep the initial cell (0,0) passable so rollouts have somewhere
	// to start
	if rows[cfg.Rows-1][0].IsObstacle() {
		rows[cfg.Rows-1][0] = Reward(cfg.StepReward)
	}

	return New(Config{
		Rows:      rows,
		Terminals: []Point{cfg.PosTerminal, cfg.NegTerminal},
		Gamma:     cfg.Gamma,
	})
}

func (cfg GenerateConfig) inBounds(p Point) bool {
	return p.X >= 0 && p.X < cfg.Cols && p.Y >= 0 && p.Y < cfg.Rows
}
