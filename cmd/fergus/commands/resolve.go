package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <template>",
		Short: "Compile a template if needed and print its artifact path",
		Long: "Compile a template if needed and print its artifact path.\n\n" +
			"The template path is absolute or relative to the template root.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (c *CLI) newHookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hook <template>",
		Short: "Print the path the host should load for a template",
		Long: "Print the path the host should load for a template.\n\n" +
			"Templates without a markup source are printed unchanged, as are\n" +
			"templates that cannot be cached.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Hook(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
