package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/grid-mdp/benchmarks/common"
)

var (
	flags *common.Flags = common.DefaultFlags()

	savePath     string
	cols         int
	rows         int
	obstacleProb float64
	stepReward   float64
	gamma        float64

	minSize  int
	maxSize  int
	sizeStep int
	rollouts int
	horizon  int

	seed   int64
	sweeps int
	debug  bool
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().IntVar(&cols, "cols", flags.Cols, "Number of grid columns")
	cmd.PersistentFlags().IntVar(&rows, "rows", flags.Rows, "Number of grid rows")
	cmd.PersistentFlags().Float64Var(&obstacleProb, "obstacle-prob", flags.ObstacleProb, "Probability of a cell being an obstacle")
	cmd.PersistentFlags().Float64Var(&stepReward, "step-reward", flags.StepReward, "Reward of non-terminal cells")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", flags.Gamma, "Discount factor")

	cmd.PersistentFlags().IntVar(&minSize, "min-size", flags.MinSize, "Smallest environment size in the sweep")
	cmd.PersistentFlags().IntVar(&maxSize, "max-size", flags.MaxSize, "Environment size the sweep stops before")
	cmd.PersistentFlags().IntVar(&sizeStep, "size-step", flags.SizeStep, "Size increment between sweep environments")
	cmd.PersistentFlags().IntVar(&rollouts, "rollouts", flags.Rollouts, "Number of rollouts of the solved policy")
	cmd.PersistentFlags().IntVar(&horizon, "horizon", flags.Horizon, "Maximum steps per rollout")

	cmd.PersistentFlags().Int64Var(&seed, "seed", flags.Seed, "Random seed, 0 for time-based")
	cmd.PersistentFlags().IntVar(&sweeps, "sweeps", flags.Sweeps, "Evaluation sweeps per policy-iteration step")
	cmd.PersistentFlags().BoolVar(&debug, "debug", flags.Debug, "Enable debug logging")
}

func UpdateFlags() {
	flags.SavePath = savePath
	flags.Cols = cols
	flags.Rows = rows
	flags.ObstacleProb = obstacleProb
	flags.StepReward = stepReward
	flags.Gamma = gamma

	flags.MinSize = minSize
	flags.MaxSize = maxSize
	flags.SizeStep = sizeStep
	flags.Rollouts = rollouts
	flags.Horizon = horizon

	flags.Seed = seed
	flags.Sweeps = sweeps
	flags.Debug = debug
}
