package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeu5/grid-mdp/benchmarks/gridworld"
)

func RolloutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollout",
		Short: "Solve a generated environment and simulate the solved policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			avg, err := gridworld.RunRollouts(flags)
			if err != nil {
				return err
			}
			fmt.Printf("average return over %d rollouts of %d steps: %.3f\n",
				flags.Rollouts, flags.Horizon, avg)
			return nil
		},
	}
	return cmd
}
