package gridworld

import (
	"context"
	"fmt"
	"math/rand"
	"path"
	"time"

	"github.com/sirupsen/logrus"
	erand "golang.org/x/exp/rand"

	"github.com/zeu5/grid-mdp/analysis"
	"github.com/zeu5/grid-mdp/benchmarks/common"
	"github.com/zeu5/grid-mdp/core"
	"github.com/zeu5/grid-mdp/grid"
	"github.com/zeu5/grid-mdp/solver"
	"github.com/zeu5/grid-mdp/util"
)

// RunSweep solves randomly generated square environments of increasing
// size, recording solve duration and the average expected utility of
// the improvement trace for each. The dataset is saved under the
// configured save path.
func RunSweep(ctx context.Context, flags *common.Flags, printer *util.ProgressPrinter) (*analysis.SweepDataset, error) {
	rng := newRand(flags.Seed)
	dataset := analysis.NewSweepDataset()

	for size := flags.MinSize; size < flags.MaxSize; size += flags.SizeStep {
		select {
		case <-ctx.Done():
			return dataset, ctx.Err()
		default:
		}

		env, err := generate(size, size, flags, rng)
		if err != nil {
			return dataset, fmt.Errorf("generating %dx%d environment: %w", size, size, err)
		}

		sol := solver.NewPolicyIteration[grid.Point, core.Heading](flags.Sweeps, rng)
		start := time.Now()
		_, trace, err := sol.Solve(env)
		if err != nil {
			return dataset, fmt.Errorf("solving %dx%d environment: %w", size, size, err)
		}
		elapsed := time.Since(start)

		dataset.Add(size, len(env.States()), elapsed, trace)
		if printer != nil {
			printer.Set(fmt.Sprintf("solved %dx%d (%d states) in %s, avg utility %.3f",
				size, size, len(env.States()), elapsed.Round(time.Microsecond), analysis.Summarize(trace).Mean))
		}
		logrus.WithFields(logrus.Fields{
			"size":    size,
			"states":  len(env.States()),
			"elapsed": elapsed,
		}).Debug("solved environment")
	}

	out := path.Join(flags.SavePath, "sweep.json")
	if err := dataset.Save(out); err != nil {
		return dataset, fmt.Errorf("saving dataset: %w", err)
	}
	return dataset, nil
}

// RunRollouts solves one generated environment and simulates the solved
// policy, reporting the average discounted return over the episodes.
func RunRollouts(flags *common.Flags) (float64, error) {
	rng := newRand(flags.Seed)
	env, err := generate(flags.Cols, flags.Rows, flags, rng)
	if err != nil {
		return 0, err
	}

	sol := solver.NewPolicyIteration[grid.Point, core.Heading](flags.Sweeps, rng)
	pi, _, err := sol.Solve(env)
	if err != nil {
		return 0, err
	}
	return RolloutAverage(env, pi, flags)
}

// RolloutAverage simulates pi on env flags.Rollouts times and returns
// the mean discounted return.
func RolloutAverage(env *grid.GridMDP, pi map[grid.Point]core.Heading, flags *common.Flags) (float64, error) {
	if flags.Rollouts <= 0 {
		return 0, fmt.Errorf("rollouts must be positive, got %d", flags.Rollouts)
	}
	src := erand.NewSource(uint64(newRand(flags.Seed).Int63()))
	total := 0.0
	for i := 0; i < flags.Rollouts; i++ {
		res, err := solver.Rollout(env, pi, flags.Horizon, src)
		if err != nil {
			return 0, err
		}
		total += res.Return
	}
	return total / float64(flags.Rollouts), nil
}

func generate(cols, rows int, flags *common.Flags, rng *rand.Rand) (*grid.GridMDP, error) {
	cfg := grid.DefaultGenerateConfig(cols, rows)
	cfg.ObstacleProb = flags.ObstacleProb
	cfg.StepReward = flags.StepReward
	cfg.Gamma = flags.Gamma
	return grid.Generate(cfg, rng)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
