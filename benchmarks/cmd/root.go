package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid-mdp",
		Short: "Solve gridworld MDPs with policy iteration",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
			if flags.Debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			flags.Record()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		SolveCommand(),
		BenchCommand(),
		RolloutCommand(),
	)

	return cmd
}
