package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fergus/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a template with the host template engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataFile, _ := cmd.Flags().GetString("data")
			return c.app.Render(cmd.Context(), cmd.OutOrStdout(), args[0], app.RenderOptions{
				DataFile: dataFile,
			})
		},
	}
	cmd.Flags().StringP("data", "d", "", "YAML or JSON file with template data")
	return cmd
}
