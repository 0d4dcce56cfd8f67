package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fergus/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Precompile every template of the theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			jobs, _ := cmd.Flags().GetInt("jobs")

			_, err := c.app.Build(cmd.Context(), app.BuildOptions{
				Force: force,
				Jobs:  jobs,
			})
			return err
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Recompile templates even when their artifacts are fresh")
	cmd.Flags().IntP("jobs", "j", 0, "Number of parallel compiles (default: number of CPUs)")
	return cmd
}
